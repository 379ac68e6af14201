package searcher

import (
	"fmt"

	"ur/experiments/metrics"
	"ur/game"
)

type Option func(e *Expectimax)

// Expectimax alternates chance nodes over the five dice outcomes with choice
// nodes over the legal moves, down to a fixed depth where the evaluator
// scores the position. Every value it returns is expressed from the point
// of view of the player to move in the board it was given.
//
// An Expectimax keeps no state between calls apart from its metrics.
type Expectimax struct {
	evaluator game.Evaluator
	metrics   metrics.Collector
}

func WithMetrics() Option {
	return func(e *Expectimax) {
		e.metrics = metrics.NewCollector()
	}
}

func NewExpectimax(evaluator game.Evaluator, options ...Option) *Expectimax {
	if evaluator == nil {
		panic("expectimax needs an evaluator")
	}
	e := &Expectimax{ // Default values
		evaluator: evaluator,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// ExpectedValue is the value of b before the dice are rolled.
func (e *Expectimax) ExpectedValue(b *game.Board, depth int) float64 {
	if depth < 0 {
		panic(fmt.Sprintf("negative search depth %d", depth))
	}
	if depth == 0 {
		e.metrics.AddLeaf()
		return e.evaluator.Evaluate(b)
	}

	e.metrics.AddChanceNode()
	value := 0.0
	for dice, proba := range game.Probabilities {
		moves := b.LegalMoves(dice)
		var best float64
		if len(moves) == 0 {
			best = e.evalNoMove(b, depth-1)
		} else {
			best = e.EvalMove(b, dice, moves[0], depth-1)
			for _, m := range moves[1:] {
				if v := e.EvalMove(b, dice, m, depth-1); v > best {
					best = v
				}
			}
		}
		value += proba * best
	}
	return value
}

// EvalMove is the value, for the player to move in b, of playing m with the
// given roll and then searching depth more chance layers.
func (e *Expectimax) EvalMove(b *game.Board, dice int, m game.Move, depth int) float64 {
	next := *b
	if next.Play(dice, m) {
		e.metrics.AddWin()
		return e.evaluator.Victory()
	}
	value := e.ExpectedValue(&next, depth)
	if next.Turn == b.Turn { // Bonus turn
		return value
	}
	return -value
}

// evalNoMove is the value of a roll that leaves no legal move: the turn
// passes to the opponent.
func (e *Expectimax) evalNoMove(b *game.Board, depth int) float64 {
	next := *b
	next.SwapTurn()
	return -e.ExpectedValue(&next, depth)
}

// BestMove returns the legal move with the highest value for a search of
// the given depth, counting the move itself as the first layer. Ties go to
// the move listed first by LegalMoves.
func (e *Expectimax) BestMove(b *game.Board, dice, depth int) (game.Move, float64) {
	if depth < 1 {
		panic(fmt.Sprintf("cannot choose a move with depth %d", depth))
	}
	moves := b.LegalMoves(dice)
	if len(moves) == 0 {
		panic(fmt.Sprintf("no legal move for dice %d", dice))
	}

	best := moves[0]
	bestValue := e.EvalMove(b, dice, best, depth-1)
	for _, m := range moves[1:] {
		if v := e.EvalMove(b, dice, m, depth-1); v > bestValue {
			best = m
			bestValue = v
		}
	}
	return best, bestValue
}

// Search is BestMove with the search metrics of the call.
func (e *Expectimax) Search(b *game.Board, dice, depth int) (game.Move, metrics.SearchMetric) {
	e.metrics.Start(depth)
	move, _ := e.BestMove(b, dice, depth)
	return move, e.metrics.Complete()
}
