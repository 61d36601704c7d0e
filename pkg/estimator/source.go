package estimator

import "math/rand/v2"

// Source draws coordinates for samples.
//
// Uniform returns a value in the closed interval [lo, hi]. Implementations
// need not be cryptographically secure but must be statistically uniform.
// A Source is used by one run at a time and is not safe for concurrent use.
type Source interface {
	Uniform(lo, hi float64) float64
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(lo, hi float64) float64

// Uniform calls f(lo, hi).
func (f SourceFunc) Uniform(lo, hi float64) float64 {
	return f(lo, hi)
}

// ConstantSource always returns the same value, clamped to [lo, hi].
// It is meant for tests and demonstrations of boundary behaviour.
type ConstantSource float64

// Uniform returns the constant clamped into [lo, hi].
func (c ConstantSource) Uniform(lo, hi float64) float64 {
	return min(max(float64(c), lo), hi)
}

// pcgSource draws from a PCG generator.
type pcgSource struct {
	rng *rand.Rand
}

// NewSource returns a Source backed by a PCG generator seeded with seed.
// Two sources built from the same seed produce the same sequence.
func NewSource(seed uint64) Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomSource returns a Source seeded from the runtime's random seed.
func NewRandomSource() Source {
	return NewSource(rand.Uint64())
}

func (s *pcgSource) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}
