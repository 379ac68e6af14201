package utils

import (
	"math"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// NewRand returns a generator for the given seed, or for a fresh random seed
// when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = NewSeed()
	}
	return rand.New(rand.NewSource(seed))
}

// NewSeed draws a non-zero seed from a cryptographic source.
func NewSeed() uint64 {
	return frand.Uint64n(math.MaxUint64) + 1
}
