package slice

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanhuwe8/mcgo/core/sampler"
	"github.com/thanhuwe8/mcgo/pkg/errors"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func gauss2D(x []float64) float64 {
	return -0.5 * (x[0]*x[0] + x[1]*x[1])
}

func TestNewDirectionalValidation(t *testing.T) {
	tests := []struct {
		name    string
		logp    func([]float64) float64
		x0      []float64
		dirs    [][]float64
		wantErr bool
	}{
		{
			name: "valid axis directions",
			logp: gauss2D,
			x0:   []float64{0, 0},
			dirs: [][]float64{{1, 0}, {0, 1}},
		},
		{
			name:    "nil log-density",
			logp:    nil,
			x0:      []float64{0, 0},
			dirs:    [][]float64{{1, 0}},
			wantErr: true,
		},
		{
			name:    "empty state",
			logp:    gauss2D,
			x0:      nil,
			dirs:    [][]float64{{1, 0}},
			wantErr: true,
		},
		{
			name:    "empty direction set",
			logp:    gauss2D,
			x0:      []float64{0, 0},
			dirs:    nil,
			wantErr: true,
		},
		{
			name:    "direction dimension mismatch",
			logp:    gauss2D,
			x0:      []float64{0, 0},
			dirs:    [][]float64{{1, 0, 0}},
			wantErr: true,
		},
		{
			name:    "zero direction",
			logp:    gauss2D,
			x0:      []float64{0, 0},
			dirs:    [][]float64{{0, 0}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDirectional(tt.logp, tt.x0, tt.dirs)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewDirectional() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDirectionalDimensionMismatchError(t *testing.T) {
	_, err := NewDirectional(gauss2D, []float64{0, 0}, [][]float64{{1, 0}, {1}})
	require.Error(t, err)

	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr), "expected DimensionError, got %v", err)
	assert.Equal(t, 1, dimErr.Index, "the offending direction index")
}

func TestDirectionalDeterminism(t *testing.T) {
	makeChain := func() [][]float64 {
		ds, err := NewDirectional(gauss2D, []float64{0, 0},
			[][]float64{{1, 0}, {0, 1}},
			WithWidth(1.5),
			WithSource(rand.NewPCG(21, 22)),
		)
		require.NoError(t, err)

		draws := make([][]float64, 100)
		for i := range draws {
			draws[i], err = ds.Sample()
			require.NoError(t, err)
		}
		return draws
	}

	assert.Equal(t, makeChain(), makeChain())
}

func TestDirectionalAxisAlignedGaussian(t *testing.T) {
	ds, err := NewDirectional(gauss2D, []float64{0, 0},
		[][]float64{{1, 0}, {0, 1}},
		WithWidth(2.0),
		WithSource(rand.NewPCG(31, 32)),
	)
	require.NoError(t, err)

	const (
		burnIn = 200
		keep   = 4000
	)
	for i := 0; i < burnIn; i++ {
		_, err := ds.Sample()
		require.NoError(t, err)
	}

	xs := make([]float64, keep)
	ys := make([]float64, keep)
	for i := 0; i < keep; i++ {
		x, err := ds.Sample()
		require.NoError(t, err)
		xs[i], ys[i] = x[0], x[1]
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1}
	for name, marginal := range map[string][]float64{"x": xs, "y": ys} {
		assert.InDelta(t, 0.0, stat.Mean(marginal, nil), 0.1, "%s mean", name)
		assert.InDelta(t, 1.0, stat.StdDev(marginal, nil), 0.1, "%s std", name)
		assert.Less(t, ksStat(marginal, normal.CDF), 0.06, "%s KS distance", name)
	}
}

func TestDirectionalObliqueDirections(t *testing.T) {
	// Diagonal directions also leave an isotropic Gaussian invariant;
	// only the sweep geometry changes.
	ds, err := NewDirectional(gauss2D, []float64{2, -2},
		[][]float64{{1, 1}, {1, -1}},
		WithWidth(2.0),
		WithSource(rand.NewPCG(41, 42)),
	)
	require.NoError(t, err)

	const (
		burnIn = 200
		keep   = 4000
	)
	for i := 0; i < burnIn; i++ {
		_, err := ds.Sample()
		require.NoError(t, err)
	}

	xs := make([]float64, keep)
	for i := 0; i < keep; i++ {
		x, err := ds.Sample()
		require.NoError(t, err)
		xs[i] = x[0]
	}

	assert.InDelta(t, 0.0, stat.Mean(xs, nil), 0.12)
	assert.InDelta(t, 1.0, stat.StdDev(xs, nil), 0.12)
}

func TestDirectionalCountersAggregate(t *testing.T) {
	ds, err := NewDirectional(gauss2D, []float64{0, 0},
		[][]float64{{1, 0}, {0, 1}},
		WithSource(rand.NewPCG(51, 52)),
	)
	require.NoError(t, err)

	const n = 50
	for i := 0; i < n; i++ {
		_, err := ds.Sample()
		require.NoError(t, err)
	}

	assert.Equal(t, n, ds.Draws())
	// Two directions per sweep, at least four evaluations each.
	assert.GreaterOrEqual(t, ds.Evals(), 8*n)
}

func TestDirectionalStateIsCopied(t *testing.T) {
	ds, err := NewDirectional(gauss2D, []float64{1, 1},
		[][]float64{{1, 0}, {0, 1}},
		WithSource(rand.NewPCG(61, 62)),
	)
	require.NoError(t, err)

	state := ds.State()
	state[0] = math.Inf(1)

	got := ds.State()
	assert.False(t, math.IsInf(got[0], 1), "mutating a returned state must not corrupt the sampler")
}

func TestDirectionalCustomFactoryError(t *testing.T) {
	factoryErr := errors.New("factory failed")
	ds, err := NewDirectional(gauss2D, []float64{0, 0},
		[][]float64{{1, 0}},
		WithFactory(func(logp sampler.LogDensity, x0 float64) (sampler.Sampler, error) {
			return nil, factoryErr
		}),
	)
	require.NoError(t, err)

	_, err = ds.Sample()
	require.Error(t, err)
	assert.True(t, errors.Is(err, factoryErr))
}
