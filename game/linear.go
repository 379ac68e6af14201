package game

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Weights parameterizes the Linear evaluator. Each weight multiplies the
// difference between the mover's and the opponent's value of one feature.
type Weights struct {
	Bias  float64             `yaml:"bias"`
	Ready float64             `yaml:"ready"`
	Cells [PathLength]float64 `yaml:"cells"`
	Out   float64             `yaml:"out"`
}

// Layout of the flat parameter and feature vectors.
const (
	biasIdx    = 0
	readyIdx   = 1
	cellsIdx   = 2
	outIdx     = cellsIdx + PathLength
	numWeights = outIdx + 1
)

func (w Weights) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "READY: %g\n", w.Ready)
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&sb, "A%[1]d-C%[1]d: %[2]g\n", 4-i, w.Cells[i])
	}
	for i := 4; i < 12; i++ {
		fmt.Fprintf(&sb, "B%d   : %g\n", i-3, w.Cells[i])
	}
	for i := 12; i < PathLength; i++ {
		fmt.Fprintf(&sb, "A%[1]d-C%[1]d: %[2]g\n", 20-i, w.Cells[i])
	}
	fmt.Fprintf(&sb, "OUT  : %g\n", w.Out)
	fmt.Fprintf(&sb, "BIAS : %g\n", w.Bias)
	return sb.String()
}

// Linear is an evaluator linear in the board features, trained online with
// Step. It is not safe to call Step concurrently with anything else; take a
// Snapshot for concurrent readers.
type Linear struct {
	theta []float64
}

func NewLinear(w Weights) *Linear {
	theta := make([]float64, numWeights)
	theta[biasIdx] = w.Bias
	theta[readyIdx] = w.Ready
	copy(theta[cellsIdx:outIdx], w.Cells[:])
	theta[outIdx] = w.Out
	return &Linear{theta: theta}
}

func (l *Linear) Weights() Weights {
	w := Weights{
		Bias:  l.theta[biasIdx],
		Ready: l.theta[readyIdx],
		Out:   l.theta[outIdx],
	}
	copy(w.Cells[:], l.theta[cellsIdx:outIdx])
	return w
}

// Snapshot returns an independent copy of the current weights.
func (l *Linear) Snapshot() *Linear {
	return NewLinear(l.Weights())
}

func (l *Linear) Victory() float64 {
	return 1
}

func (l *Linear) Evaluate(b *Board) float64 {
	var f [numWeights]float64
	features(b, &f)
	return floats.Dot(l.theta, f[:])
}

// Step moves the evaluation of b toward target by the fraction alpha of the
// error, following the gradient of Evaluate with respect to the weights.
func (l *Linear) Step(b *Board, target, alpha float64) {
	var f [numWeights]float64
	features(b, &f)
	delta := alpha * (target - floats.Dot(l.theta, f[:]))
	floats.AddScaled(l.theta, delta, f[:])
}

// features fills f with the mover-minus-opponent value of each feature.
func features(b *Board, f *[numWeights]float64) {
	me := b.Turn
	opp := me.Opponent()

	f[biasIdx] = 1
	f[readyIdx] = float64(b.Ready[me] - b.Ready[opp])
	for i := 0; i < PathLength; i++ {
		var v float64
		if b.Cells[me][i] {
			v++
		}
		if b.Cells[opp][i] {
			v--
		}
		f[cellsIdx+i] = v
	}
	f[outIdx] = float64(b.Out[me] - b.Out[opp])
}
