package chain

import (
	"sort"

	"github.com/thanhuwe8/mcgo/diagnostics"
	"github.com/thanhuwe8/mcgo/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// mixingThreshold is the ESS fraction below which a finished chain is
// flagged with a MixingWarning.
const mixingThreshold = 0.05

// Summary holds per-dimension statistics of a finished chain.
type Summary struct {
	// N is the number of draws summarized.
	N int
	// Mean, Std are per-dimension moments.
	Mean, Std []float64
	// Q05, Median, Q95 are per-dimension empirical quantiles.
	Q05, Median, Q95 []float64
	// ESS is the per-dimension effective sample size.
	ESS []float64
}

// Summarize computes per-dimension statistics of the collected draws.
// A dimension whose effective sample size falls below 5% of the draw
// count raises a MixingWarning through the package-wide warning handler.
func Summarize(draws *mat.Dense) (*Summary, error) {
	const op = "chain.Summarize"

	if draws == nil {
		return nil, errors.Wrap(errors.ErrEmptyData, op)
	}
	n, d := draws.Dims()
	if n == 0 || d == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, op)
	}

	s := &Summary{
		N:      n,
		Mean:   make([]float64, d),
		Std:    make([]float64, d),
		Q05:    make([]float64, d),
		Median: make([]float64, d),
		Q95:    make([]float64, d),
		ESS:    make([]float64, d),
	}

	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, draws)

		s.Mean[j] = stat.Mean(col, nil)
		s.Std[j] = stat.StdDev(col, nil)

		ess, err := diagnostics.EffectiveSampleSize(col)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: dimension %d", op, j)
		}
		s.ESS[j] = ess
		if ess < mixingThreshold*float64(n) {
			errors.Warn(errors.NewMixingWarning("chain", ess, n))
		}

		sorted := append([]float64(nil), col...)
		sort.Float64s(sorted)
		s.Q05[j] = stat.Quantile(0.05, stat.Empirical, sorted, nil)
		s.Median[j] = stat.Quantile(0.5, stat.Empirical, sorted, nil)
		s.Q95[j] = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	}

	return s, nil
}
