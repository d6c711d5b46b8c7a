package shapes

import "math/rand/v2"

// Source is the randomness consumed by random constructors and by
// [RandomColor]. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// Uint32 returns a uniformly distributed 32-bit value.
	Uint32() uint32
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewSource returns a PCG generator seeded with seed.
// Two sources built from the same seed yield the same drawings.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
