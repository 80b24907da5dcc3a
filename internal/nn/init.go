package nn

import "math/rand/v2"

// Initializer returns the initial value of one parameter per call.
type Initializer func() float64

// NewRand returns a deterministic generator for the given seed.
func NewRand(seed uint64) *rand.Rand {
	//nolint:gosec // Weight initialization is not security-critical.
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Uniform draws values from U(lo, hi).
//
// The classic setup for tanh neurons is Uniform(rng, -1, 1).
func Uniform(rng *rand.Rand, lo, hi float64) Initializer {
	return func() float64 {
		return lo + rng.Float64()*(hi-lo)
	}
}

// Constant always returns v. Useful for tests and bias initialization.
func Constant(v float64) Initializer {
	return func() float64 {
		return v
	}
}
