// Package random provides the uniform random source behind deck shuffling.
// It is the only nondeterministic dependency of the domain packages.
package random

import (
	"math"
	"math/rand/v2"
)

// Source produces uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

// InRange returns an integer uniformly distributed over [lo, hi],
// computed as floor(lo + U*(hi-lo+1)) for U drawn from src.
// Callers must ensure lo <= hi.
func InRange(src Source, lo, hi int) int {
	return int(math.Floor(float64(lo) + src.Float64()*float64(hi-lo+1)))
}

// stdSource delegates to the auto-seeded math/rand/v2 global generator.
type stdSource struct{}

func (stdSource) Float64() float64 { return rand.Float64() }

// New returns a Source backed by the math/rand/v2 global generator.
func New() Source {
	return stdSource{}
}

// NewSeeded returns a deterministic Source. Two sources built from the same
// seed produce the same sequence. The result must not be shared between
// goroutines.
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
