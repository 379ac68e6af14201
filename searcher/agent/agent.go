package agent

import (
	"ur/experiments/metrics"
	"ur/game"
)

type Agent interface {
	// FindMove returns the move to play for a roll and performance metrics (if collected) from the search.
	// It is only called when at least one legal move exists.
	FindMove(b *game.Board, dice int) (game.Move, metrics.SearchMetric)
}
