package engine

import (
	"ur/experiments/metrics"
	"ur/meta"
)

const MaxTurns = meta.MAX_TURNS

type Engine interface {
	// Run plays a game till there's a winner or a max number of turns is reached.
	// The winner is the seat of the winning agent, or -1 when the game was abandoned.
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
