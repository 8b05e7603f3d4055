package slice

import (
	"math/rand/v2"

	"github.com/thanhuwe8/mcgo/core/sampler"
	"github.com/thanhuwe8/mcgo/pkg/log"
)

// Option configures a slice sampler.
type Option func(*config)

type config struct {
	width    float64
	maxSteps int
	src      rand.Source
	rng      *rand.Rand
	logger   log.Logger
	factory  sampler.Factory
}

func defaultConfig() *config {
	return &config{
		width:    1.0,
		maxSteps: 1000,
		logger:   log.GetLoggerWithName("slice"),
	}
}

func (c *config) random() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}
	if c.src == nil {
		c.src = sampler.DefaultSource()
	}
	return rand.New(c.src)
}

// WithWidth sets the step width w of the bracket placement and expansion.
// The width trades density evaluations for mixing: too small and step-out
// loops many times, too large and the shrink loop rejects many proposals.
func WithWidth(w float64) Option {
	return func(c *config) {
		c.width = w
	}
}

// WithMaxSteps caps the step-out and shrink loops. Exceeding the cap
// surfaces an ExpansionError instead of looping forever on an unbounded
// or degenerate target.
func WithMaxSteps(n int) Option {
	return func(c *config) {
		c.maxSteps = n
	}
}

// WithSource sets the random source driving the sampler. Injecting a
// seeded source makes the whole chain deterministic.
func WithSource(src rand.Source) Option {
	return func(c *config) {
		c.src = src
		c.rng = nil
	}
}

// WithLogger sets the structured logger used for progress diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithFactory sets the factory producing the per-direction univariate
// sampler of a DirectionalSampler. The default factory builds a fresh
// slice Sampler sharing the parent's width and random stream.
func WithFactory(f sampler.Factory) Option {
	return func(c *config) {
		c.factory = f
	}
}

// withSharedRand hands an already constructed generator to a child
// sampler so parent and child consume a single random stream.
func withSharedRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}
