package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"ur/game"
)

// constantEval scores every position the same, which makes the sign
// convention of the search directly observable.
type constantEval struct {
	value float64
}

func (c constantEval) Victory() float64               { return 1000 }
func (c constantEval) Evaluate(b *game.Board) float64 { return c.value }

func randomPositions(n int, seed uint64) []game.Board {
	rng := rand.New(rand.NewSource(seed))
	dice := game.NewDice(rng)
	var boards []game.Board
	b := game.NewBoard()
	for len(boards) < n {
		roll := dice.Roll()
		moves := b.LegalMoves(roll)
		if len(moves) == 0 {
			b.SwapTurn()
			continue
		}
		if b.Play(roll, moves[rng.Intn(len(moves))]) {
			b = game.NewBoard()
			continue
		}
		boards = append(boards, b)
	}
	return boards
}

func TestExpectedValue(t *testing.T) {
	t.Run("depth zero is the evaluation", func(t *testing.T) {
		h := game.Advancement{}
		e := NewExpectimax(h)
		for _, b := range randomPositions(50, 1) {
			require.Equal(t, h.Evaluate(&b), e.ExpectedValue(&b, 0))
		}
	})

	t.Run("sign flips on turn changes only", func(t *testing.T) {
		e := NewExpectimax(constantEval{value: 1})
		b := game.NewBoard()

		// Rolls 0 to 3 hand the turn over, a 4 enters on a rosetta
		got := e.ExpectedValue(&b, 1)

		require.InDelta(t, -15.0/16+1.0/16, got, 1e-12)
	})

	t.Run("depth one from the start", func(t *testing.T) {
		e := NewExpectimax(game.Advancement{})
		b := game.NewBoard()

		// 0 for a pass, k for entering on k-1, 4 for the rosetta bonus turn
		expected := (4*1.0 + 6*2.0 + 4*3.0 + 1*4.0) / 16

		require.InDelta(t, expected, e.ExpectedValue(&b, 1), 1e-12)
	})

	t.Run("does not mutate the board", func(t *testing.T) {
		e := NewExpectimax(game.Advancement{})
		for _, b := range randomPositions(5, 2) {
			before := b
			e.ExpectedValue(&b, 2)
			require.Equal(t, before, b)
		}
	})

	t.Run("negative depth panics", func(t *testing.T) {
		e := NewExpectimax(game.Advancement{})
		b := game.NewBoard()
		require.Panics(t, func() { e.ExpectedValue(&b, -1) })
	})
}

func TestEvalMove(t *testing.T) {
	t.Run("winning move is worth victory at any depth", func(t *testing.T) {
		e := NewExpectimax(game.Advancement{})
		b := nearlyWon()
		for depth := 0; depth < 3; depth++ {
			require.Equal(t, 105.0, e.EvalMove(&b, 2, game.Move(12), depth))
		}
	})

	t.Run("bonus turn keeps the sign", func(t *testing.T) {
		e := NewExpectimax(constantEval{value: 3})
		b := game.NewBoard()
		require.Equal(t, 3.0, e.EvalMove(&b, 4, game.Enter, 0))
	})

	t.Run("turn change flips the sign", func(t *testing.T) {
		e := NewExpectimax(constantEval{value: 3})
		b := game.NewBoard()
		require.Equal(t, -3.0, e.EvalMove(&b, 2, game.Enter, 0))
	})

	t.Run("depth zero matches evaluating the result", func(t *testing.T) {
		h := game.Advancement{}
		e := NewExpectimax(h)
		b := game.NewBoard()
		b.Ready = [2]int{6, 6}
		b.Cells[game.Light][5] = true
		b.Cells[game.Dark][6] = true

		next := b
		next.Play(1, game.Move(5))

		require.Equal(t, -h.Evaluate(&next), e.EvalMove(&b, 1, game.Move(5), 0))
	})
}

func TestEvalNoMove(t *testing.T) {
	e := NewExpectimax(game.Advancement{})
	b := game.NewBoard()
	b.Ready = [2]int{6, 7}
	b.Cells[game.Light][8] = true

	swapped := b
	swapped.SwapTurn()

	require.Equal(t, 9.0, e.evalNoMove(&b, 0))
	require.Equal(t, -e.ExpectedValue(&swapped, 1), e.evalNoMove(&b, 1))
}

// nearlyWon is a position where Light bears off its last piece with a 2.
func nearlyWon() game.Board {
	b := game.NewBoard()
	b.Ready = [2]int{0, 2}
	b.Out = [2]int{6, 0}
	b.Cells[game.Light][12] = true
	for _, i := range []int{4, 5, 8, 9, 13} {
		b.Cells[game.Dark][i] = true
	}
	return b
}

func TestBestMove(t *testing.T) {
	t.Run("winning move is worth victory", func(t *testing.T) {
		b := nearlyWon()
		for _, eval := range []game.Evaluator{game.Advancement{}, game.NewLinear(game.Weights{Out: 0.9})} {
			e := NewExpectimax(eval)
			for depth := 1; depth <= 3; depth++ {
				move, value := e.BestMove(&b, 2, depth)
				require.Equal(t, game.Move(12), move)
				require.Equal(t, eval.Victory(), value)
			}
		}
	})

	t.Run("other moves stay below victory", func(t *testing.T) {
		e := NewExpectimax(game.Advancement{})
		for _, b := range randomPositions(30, 4) {
			for dice := 1; dice <= 4; dice++ {
				for _, m := range b.LegalMoves(dice) {
					next := b
					if next.Play(dice, m) {
						continue
					}
					require.Less(t, e.EvalMove(&b, dice, m, 1), 105.0)
				}
			}
		}
	})

	t.Run("ties go to the first move", func(t *testing.T) {
		e := NewExpectimax(constantEval{value: 0})
		b := game.NewBoard()
		b.Ready[game.Light] = 5
		b.Cells[game.Light][4] = true
		b.Cells[game.Light][8] = true

		moves := b.LegalMoves(1)
		require.Equal(t, []game.Move{game.Enter, game.Move(4), game.Move(8)}, moves)

		move, value := e.BestMove(&b, 1, 1)
		require.Equal(t, game.Enter, move)
		require.Zero(t, value)
	})

	t.Run("prefers capturing", func(t *testing.T) {
		e := NewExpectimax(game.Advancement{})
		b := game.NewBoard()
		b.Ready = [2]int{5, 6}
		b.Cells[game.Light][1] = true
		b.Cells[game.Light][5] = true
		b.Cells[game.Dark][6] = true

		require.Equal(t, []game.Move{game.Enter, game.Move(1), game.Move(5)}, b.LegalMoves(1))
		move, value := e.BestMove(&b, 1, 1)

		require.Equal(t, game.Move(5), move)
		require.Equal(t, 9.0, value)
	})

	t.Run("no legal move panics", func(t *testing.T) {
		e := NewExpectimax(game.Advancement{})
		b := game.NewBoard()
		require.Panics(t, func() { e.BestMove(&b, 0, 2) })
	})

	t.Run("zero depth panics", func(t *testing.T) {
		e := NewExpectimax(game.Advancement{})
		b := game.NewBoard()
		require.Panics(t, func() { e.BestMove(&b, 1, 0) })
	})
}

func TestSearchMetrics(t *testing.T) {
	t.Run("counts nodes of a two layer search", func(t *testing.T) {
		e := NewExpectimax(game.Advancement{}, WithMetrics())
		b := game.NewBoard()

		// Dark answers the entry with either a pass or its own entry
		move, metric := e.Search(&b, 2, 2)

		require.Equal(t, game.Enter, move)
		require.Equal(t, 2, metric.Depth)
		require.Equal(t, 1, metric.ChanceNodes)
		require.Equal(t, 5, metric.Leaves)
		require.Zero(t, metric.Wins)
	})

	t.Run("counts terminal wins", func(t *testing.T) {
		e := NewExpectimax(game.Advancement{}, WithMetrics())
		b := nearlyWon()

		_, metric := e.Search(&b, 2, 1)

		require.Equal(t, 1, metric.Wins)
	})

	t.Run("dummy collector by default", func(t *testing.T) {
		e := NewExpectimax(game.Advancement{})
		b := game.NewBoard()

		_, metric := e.Search(&b, 4, 2)

		require.Zero(t, metric.Leaves)
	})

	t.Run("missing evaluator panics", func(t *testing.T) {
		require.Panics(t, func() { NewExpectimax(nil) })
	})
}
