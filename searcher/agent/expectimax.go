package agent

import (
	"ur/experiments/metrics"
	"ur/game"
	"ur/searcher"
)

type expectimaxAgent struct {
	searcher searcher.Searcher
	depth    int
}

// NewExpectimaxAgent returns an agent playing the best move of a fixed-depth expectimax search.
func NewExpectimaxAgent(s searcher.Searcher, depth int) Agent {
	if depth < 1 {
		panic("expectimax agent needs a depth of at least 1")
	}
	return expectimaxAgent{searcher: s, depth: depth}
}

func (a expectimaxAgent) FindMove(b *game.Board, dice int) (game.Move, metrics.SearchMetric) {
	return a.searcher.Search(b, dice, a.depth)
}
