package viz

import (
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanhuwe8/mcgo/pkg/errors"
)

func normalSamples(t *testing.T, n int) []float64 {
	t.Helper()
	rng := rand.New(rand.NewPCG(11, 13))
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = rng.NormFloat64()
	}
	return samples
}

func requireNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestHistogram(t *testing.T) {
	samples := normalSamples(t, 500)
	path := filepath.Join(t.TempDir(), "hist.png")

	pdf := func(x float64) float64 {
		return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
	}
	require.NoError(t, Histogram(samples, 30, pdf, path))
	requireNonEmptyFile(t, path)
}

func TestHistogramWithoutOverlay(t *testing.T) {
	samples := normalSamples(t, 200)
	path := filepath.Join(t.TempDir(), "hist.svg")

	require.NoError(t, Histogram(samples, 20, nil, path))
	requireNonEmptyFile(t, path)
}

func TestHistogramValidation(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		bins    int
		path    string
	}{
		{"empty samples", nil, 10, "out.png"},
		{"zero bins", []float64{1, 2}, 0, "out.png"},
		{"negative bins", []float64{1, 2}, -3, "out.png"},
		{"empty path", []float64{1, 2}, 10, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Histogram(tt.samples, tt.bins, nil, tt.path)
			assert.Error(t, err)
		})
	}

	err := Histogram(nil, 10, nil, "out.png")
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

func TestTrace(t *testing.T) {
	samples := normalSamples(t, 300)
	path := filepath.Join(t.TempDir(), "trace.png")

	require.NoError(t, Trace(samples, path))
	requireNonEmptyFile(t, path)
}

func TestTraceValidation(t *testing.T) {
	err := Trace(nil, "out.png")
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	err = Trace([]float64{1, 2, 3}, "")
	assert.Error(t, err)
}
