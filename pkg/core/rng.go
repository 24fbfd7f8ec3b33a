package core

import "math/rand/v2"

// RangeSource yields uniformly distributed integers in [min, max).
type RangeSource interface {
	UniformInt(min, max int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// UniformInt returns a random int in [min, max). An empty range returns min.
func (r *RNG) UniformInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.r.IntN(max-min)
}
