package slice

import (
	"math"
	"math/rand/v2"

	"github.com/thanhuwe8/mcgo/core/sampler"
	"github.com/thanhuwe8/mcgo/pkg/errors"
	"github.com/thanhuwe8/mcgo/pkg/log"
	"gonum.org/v1/gonum/floats"
)

// DirectionalSampler lifts a univariate sampler to a multivariate state by
// sampling along a fixed, ordered set of direction vectors, one direction
// at a time. Each direction's draw updates the state before the next
// direction is processed, so a full call is a sequential composition of
// target-invariant univariate kernels and is itself target-invariant.
//
// Directions need not be axis-aligned, orthonormal, or even span the
// space; coverage and mixing quality are the caller's responsibility.
type DirectionalSampler struct {
	sampler.BaseSampler

	logp    sampler.VectorLogDensity
	x       []float64
	dirs    [][]float64
	factory sampler.Factory
	rng     *rand.Rand
	logger  log.Logger
}

// NewDirectional creates a multivariate sampler over the given directions.
//
// The initial state x0 and every direction must share one dimension.
// By default each direction is handled by a fresh univariate slice Sampler
// scoped to the restricted density u -> logp(x + u*d), starting at offset
// u = 0 and sharing this sampler's random stream; WithFactory overrides
// the construction.
func NewDirectional(logp sampler.VectorLogDensity, x0 []float64, dirs [][]float64, opts ...Option) (*DirectionalSampler, error) {
	const op = "slice.NewDirectional"

	if logp == nil {
		return nil, errors.NewValueError(op, "log-density must not be nil")
	}
	if len(x0) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, op+": initial state")
	}
	if len(dirs) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, op+": direction set")
	}
	if err := errors.CheckNumericalStability(op, x0, 0); err != nil {
		return nil, err
	}
	for k, d := range dirs {
		if len(d) != len(x0) {
			return nil, errors.NewDimensionError(op, len(x0), len(d), k)
		}
		if floats.Norm(d, 2) == 0 {
			return nil, errors.NewValidationError("dirs", "direction must be non-zero", k)
		}
	}

	cfg := defaultConfig()
	cfg.logger = log.GetLoggerWithName("slice.directional")
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.width <= 0 || math.IsNaN(cfg.width) || math.IsInf(cfg.width, 0) {
		return nil, errors.NewValidationError("width", "must be positive and finite", cfg.width)
	}

	ds := &DirectionalSampler{
		logp:   logp,
		x:      append([]float64(nil), x0...),
		dirs:   cloneDirs(dirs),
		rng:    cfg.random(),
		logger: cfg.logger,
	}

	if cfg.factory != nil {
		ds.factory = cfg.factory
	} else {
		width := cfg.width
		maxSteps := cfg.maxSteps
		ds.factory = func(logp1d sampler.LogDensity, u0 float64) (sampler.Sampler, error) {
			return NewSampler(logp1d, u0,
				WithWidth(width),
				WithMaxSteps(maxSteps),
				withSharedRand(ds.rng),
				WithLogger(ds.logger),
			)
		}
	}

	return ds, nil
}

// Dim returns the dimension of the sampled state.
func (ds *DirectionalSampler) Dim() int {
	return len(ds.x)
}

// State returns a copy of the current state without advancing the chain.
func (ds *DirectionalSampler) State() []float64 {
	return append([]float64(nil), ds.x...)
}

// Sample runs one full sweep over the direction set and returns the
// updated state. For each direction d the restricted univariate density
// u -> logp(x + u*d) is sampled once at starting offset 0 and the state
// moves to x + u'*d before the next direction is processed.
func (ds *DirectionalSampler) Sample() (x []float64, err error) {
	defer errors.Recover(&err, "slice.DirectionalSampler.Sample")

	work := make([]float64, len(ds.x))
	for _, d := range ds.dirs {
		restricted := func(u float64) float64 {
			copy(work, ds.x)
			floats.AddScaled(work, u, d)
			return ds.logp(work)
		}

		line, err := ds.factory(restricted, 0)
		if err != nil {
			return nil, err
		}

		u, err := line.Sample()
		if err != nil {
			return nil, err
		}
		if c, ok := line.(sampler.Counted); ok {
			ds.AddEvals(c.Evals())
		}

		floats.AddScaled(ds.x, u, d)
	}

	ds.CountDraw()
	return ds.State(), nil
}

func cloneDirs(dirs [][]float64) [][]float64 {
	out := make([][]float64, len(dirs))
	for i, d := range dirs {
		out[i] = append([]float64(nil), d...)
	}
	return out
}
