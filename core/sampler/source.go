package sampler

import "math/rand/v2"

// NewSource returns a deterministic PCG source for the given seed.
// All MCGo samplers and the gonum distributions they draw from consume
// math/rand/v2 sources, so a single seed fixes an entire chain.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// DefaultSource returns a source seeded from the process-global generator.
// Used by constructors when the caller does not inject a source.
func DefaultSource() rand.Source {
	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}
