package searcher

import (
	"ur/experiments/metrics"
	"ur/game"
)

// Searcher picks the move with the best expected outcome for a known roll.
type Searcher interface {
	BestMove(b *game.Board, dice, depth int) (game.Move, float64)
	Search(b *game.Board, dice, depth int) (game.Move, metrics.SearchMetric)
}
