package game

import (
	"math/bits"

	"golang.org/x/exp/rand"
)

// Probabilities[k] is the chance of rolling k with four binary dice.
var Probabilities = [5]float64{1.0 / 16, 4.0 / 16, 6.0 / 16, 4.0 / 16, 1.0 / 16}

// Dice produces rolls in [0, 4], distributed as Probabilities.
type Dice interface {
	Roll() int
}

type binaryDice struct {
	rng *rand.Rand
}

// NewDice returns four fair binary dice driven by rng. The generator must
// not be shared with another goroutine.
func NewDice(rng *rand.Rand) Dice {
	return &binaryDice{rng: rng}
}

// Roll draws four fair bits at once and counts the set ones.
func (d *binaryDice) Roll() int {
	return bits.OnesCount(uint(d.rng.Intn(16)))
}
