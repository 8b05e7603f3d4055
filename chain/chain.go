// Package chain drives a sampler through a full Markov-chain run:
// burn-in, thinning, cancellation, progress logging, and collection of
// the resulting draws as gonum matrices.
package chain

import (
	"context"
	"time"

	"github.com/thanhuwe8/mcgo/core/sampler"
	"github.com/thanhuwe8/mcgo/pkg/errors"
	"github.com/thanhuwe8/mcgo/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// Result holds the draws collected from a finished run.
type Result struct {
	// Draws is the n×d matrix of collected states, one row per draw.
	Draws *mat.Dense
	// Evals is the number of log-density evaluations spent, when the
	// sampler exposes counters; zero otherwise.
	Evals int
	// Duration is the wall-clock time of the run including burn-in.
	Duration time.Duration
}

// Option configures a run.
type Option func(*config)

type config struct {
	burnIn      int
	thin        int
	reportEvery int
	logger      log.Logger
}

func defaultConfig() *config {
	return &config{
		thin:        1,
		reportEvery: 1000,
		logger:      log.GetLoggerWithName("chain"),
	}
}

// WithBurnIn discards the first n draws before collection starts.
func WithBurnIn(n int) Option {
	return func(c *config) {
		c.burnIn = n
	}
}

// WithThin keeps every k-th post-burn-in draw (k = 1 keeps all).
func WithThin(k int) Option {
	return func(c *config) {
		c.thin = k
	}
}

// WithReportEvery sets the iteration period of progress log lines.
func WithReportEvery(n int) Option {
	return func(c *config) {
		c.reportEvery = n
	}
}

// WithLogger sets the structured logger for run progress.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Run advances the sampler until n draws have been collected and returns
// them as an n×d matrix. Burn-in draws are taken and discarded first, and
// with thinning k only every k-th draw is kept. The context is checked
// between draws; cancellation abandons the run and returns the context's
// error — there are no partial results.
func Run(ctx context.Context, s sampler.VectorSampler, n int, opts ...Option) (*Result, error) {
	const op = "chain.Run"

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := validate(op, n, cfg); err != nil {
		return nil, err
	}

	dim := len(s.State())
	if dim == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, op+": sampler state")
	}

	cfg.logger.Info("starting run",
		log.OperationKey, log.OperationRun,
		log.ChainLengthKey, n,
		log.BurnInKey, cfg.burnIn,
		log.ThinKey, cfg.thin,
		log.DimKey, dim,
	)

	start := time.Now()
	draws := mat.NewDense(n, dim, nil)

	total := cfg.burnIn + n*cfg.thin
	collected := 0
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "%s: canceled at iteration %d", op, i)
		}

		x, err := s.Sample()
		if err != nil {
			return nil, errors.Wrapf(err, "%s: iteration %d", op, i)
		}

		if i >= cfg.burnIn && (i-cfg.burnIn)%cfg.thin == 0 {
			draws.SetRow(collected, x)
			collected++
		}

		if cfg.reportEvery > 0 && i > 0 && i%cfg.reportEvery == 0 {
			cfg.logger.Info("run progress",
				log.IterationKey, i,
				log.DrawsKey, collected,
			)
		}
	}

	res := &Result{
		Draws:    draws,
		Duration: time.Since(start),
	}
	if c, ok := s.(sampler.Counted); ok {
		res.Evals = c.Evals()
	}

	cfg.logger.Info("run finished",
		log.OperationKey, log.OperationRun,
		log.DrawsKey, collected,
		log.EvalsKey, res.Evals,
		log.DurationMsKey, res.Duration.Milliseconds(),
	)
	return res, nil
}

// RunUnivariate is Run for scalar samplers; it returns the collected
// draws as a plain slice.
func RunUnivariate(ctx context.Context, s sampler.Sampler, n int, opts ...Option) ([]float64, error) {
	res, err := Run(ctx, &univariateAdapter{s: s}, n, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	mat.Col(out, 0, res.Draws)
	return out, nil
}

type univariateAdapter struct {
	s sampler.Sampler
}

func (a *univariateAdapter) Sample() ([]float64, error) {
	x, err := a.s.Sample()
	if err != nil {
		return nil, err
	}
	return []float64{x}, nil
}

func (a *univariateAdapter) State() []float64 {
	return []float64{a.s.State()}
}

// Evals forwards the wrapped sampler's counter when present.
func (a *univariateAdapter) Evals() int {
	if c, ok := a.s.(sampler.Counted); ok {
		return c.Evals()
	}
	return 0
}

// Draws forwards the wrapped sampler's counter when present.
func (a *univariateAdapter) Draws() int {
	if c, ok := a.s.(sampler.Counted); ok {
		return c.Draws()
	}
	return 0
}

func validate(op string, n int, cfg *config) error {
	if n <= 0 {
		return errors.NewValidationError("n", "must be positive", n)
	}
	if cfg.burnIn < 0 {
		return errors.NewValidationError("burnIn", "must be non-negative", cfg.burnIn)
	}
	if cfg.thin < 1 {
		return errors.NewValidationError("thin", "must be at least 1", cfg.thin)
	}
	return nil
}
