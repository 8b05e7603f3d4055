// Package sampler provides the shared interfaces and base types implemented
// by every MCGo sampling algorithm.
package sampler

// LogDensity is an unnormalized log-density over a scalar state.
// It may return math.Inf(-1) for zero-probability regions; NaN and +Inf
// are invalid values and cause samplers to fail with a DensityError.
type LogDensity func(x float64) float64

// VectorLogDensity is an unnormalized log-density over a vector state.
// The same finiteness convention as LogDensity applies.
type VectorLogDensity func(x []float64) float64

// Sampler is the interface for univariate Markov-chain samplers.
//
// Each call to Sample advances the chain by exactly one step and returns
// the new state. The state is owned by the sampler and must not be
// mutated between calls, otherwise the Markov property is lost.
type Sampler interface {
	// Sample draws the next state of the chain.
	Sample() (float64, error)

	// State returns the current state without advancing the chain.
	State() float64
}

// VectorSampler is the interface for multivariate Markov-chain samplers.
type VectorSampler interface {
	// Sample draws the next state of the chain. The returned slice is a
	// copy; callers may retain it across calls.
	Sample() ([]float64, error)

	// State returns a copy of the current state without advancing the chain.
	State() []float64
}

// Counted is implemented by samplers that track diagnostic counters.
type Counted interface {
	// Evals returns the number of log-density evaluations so far.
	Evals() int

	// Draws returns the number of samples drawn so far.
	Draws() int
}

// Factory builds a fresh univariate sampler for a restricted log-density
// at the given starting offset. Direction-set samplers use a Factory to
// scope a one-dimensional sampler to each direction of a sweep.
type Factory func(logp LogDensity, x0 float64) (Sampler, error)
