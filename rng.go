package ln

import "math/rand/v2"

// Rand is the minimal random source the texture generators need. It is
// satisfied by [*rand.Rand] from math/rand/v2.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a deterministic random source seeded from seed. Identical
// seeds produce identical sequences across runs and platforms: math/rand/v2's
// PCG generator is specified to be reproducible given its seed, independent
// of the host architecture.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
