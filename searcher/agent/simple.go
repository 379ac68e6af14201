package agent

import (
	"golang.org/x/exp/rand"

	"ur/experiments/metrics"
	"ur/game"
)

type greedyAgent struct{}

// NewGreedyAgent returns an agent that captures when it can, otherwise lands on a rosetta when it can,
// otherwise plays the last legal move. Later pieces are preferred.
func NewGreedyAgent() Agent {
	return greedyAgent{}
}

func (greedyAgent) FindMove(b *game.Board, dice int) (game.Move, metrics.SearchMetric) {
	moves := b.LegalMoves(dice)
	opp := b.Turn.Opponent()
	for i := len(moves) - 1; i >= 0; i-- {
		dest := destination(moves[i], dice)
		if game.IsCentral(dest) && b.Cells[opp][dest] {
			return moves[i], metrics.SearchMetric{}
		}
	}
	for i := len(moves) - 1; i >= 0; i-- {
		if game.IsRosetta(destination(moves[i], dice)) {
			return moves[i], metrics.SearchMetric{}
		}
	}
	return moves[len(moves)-1], metrics.SearchMetric{}
}

// destination is the path index a move lands on, PathLength when bearing off.
func destination(m game.Move, dice int) int {
	if m == game.Enter {
		return dice - 1
	}
	return int(m) + dice
}

type lastAgent struct{}

// NewLastAgent returns an agent that always plays the last legal move, the most advanced piece.
func NewLastAgent() Agent {
	return lastAgent{}
}

func (lastAgent) FindMove(b *game.Board, dice int) (game.Move, metrics.SearchMetric) {
	moves := b.LegalMoves(dice)
	return moves[len(moves)-1], metrics.SearchMetric{}
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly among the legal moves.
// The agent owns rng and is not safe for concurrent use.
func NewRandomAgent(rng *rand.Rand) Agent {
	return &randomAgent{rng: rng}
}

func (a *randomAgent) FindMove(b *game.Board, dice int) (game.Move, metrics.SearchMetric) {
	moves := b.LegalMoves(dice)
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}
