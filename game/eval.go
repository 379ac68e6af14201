package game

// Evaluator scores a board from the perspective of the player about to move.
// The score of the same position for the other player is its opposite.
type Evaluator interface {
	// Victory is the value of a position reached by a winning move.
	Victory() float64
	Evaluate(b *Board) float64
}

// Advancement rewards pieces for how far they have travelled: a piece at
// path index i is worth i+1 and a piece borne off is worth 15.
type Advancement struct{}

const offValue = PathLength + 1

func (Advancement) Victory() float64 {
	return NumPieces * offValue
}

func (Advancement) Evaluate(b *Board) float64 {
	me := b.Turn
	opp := me.Opponent()

	score := offValue * (b.Out[me] - b.Out[opp])
	for i := 0; i < PathLength; i++ {
		if b.Cells[me][i] {
			score += i + 1
		}
		if b.Cells[opp][i] {
			score -= i + 1
		}
	}
	return float64(score)
}
