// Package diagnostics provides convergence and goodness-of-fit checks for
// Markov chains: Kolmogorov-Smirnov distance against a reference CDF,
// lag autocorrelation, and effective sample size.
package diagnostics

import (
	"math"
	"sort"

	"github.com/thanhuwe8/mcgo/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// KolmogorovSmirnov は経験分布と参照CDFとのKolmogorov-Smirnov統計量を計算する
//
// パラメータ:
//   - samples: チェーンから収集したサンプル列
//   - cdf: 参照分布の累積分布関数
//
// 戻り値は sup_x |F_n(x) - F(x)| で、値が小さいほど分布が近い
func KolmogorovSmirnov(samples []float64, cdf func(float64) float64) (float64, error) {
	const op = "diagnostics.KolmogorovSmirnov"

	n := len(samples)
	if n == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, op)
	}
	if cdf == nil {
		return 0, errors.NewValueError(op, "reference CDF must not be nil")
	}
	if err := errors.CheckNumericalStability(op, samples, 0); err != nil {
		return 0, err
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	// 経験CDFは各標本点で階段状にジャンプするため、
	// ジャンプの前後両方との差を取る
	var d float64
	for i, x := range sorted {
		f := cdf(x)
		lower := f - float64(i)/float64(n)
		upper := float64(i+1)/float64(n) - f
		d = math.Max(d, math.Max(lower, upper))
	}
	return d, nil
}

// Autocorrelation はラグkの標本自己相関を計算する
//
// 分散がゼロの退化した系列には ValueError を返す
func Autocorrelation(samples []float64, lag int) (float64, error) {
	const op = "diagnostics.Autocorrelation"

	n := len(samples)
	if n == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, op)
	}
	if lag < 0 {
		return 0, errors.NewValidationError("lag", "must be non-negative", lag)
	}
	if lag >= n {
		return 0, errors.NewValidationError("lag", "must be smaller than the sample count", lag)
	}

	mean := stat.Mean(samples, nil)

	var denom float64
	for _, x := range samples {
		denom += (x - mean) * (x - mean)
	}
	if denom == 0 {
		return 0, errors.NewValueError(op, "series has zero variance")
	}

	var num float64
	for i := 0; i+lag < n; i++ {
		num += (samples[i] - mean) * (samples[i+lag] - mean)
	}
	return num / denom, nil
}

// EffectiveSampleSize は実効サンプルサイズ n / (1 + 2 Σ ρ_k) を計算する
//
// 自己相関の和は最初に非正になったラグで打ち切る（initial positive
// sequence truncation）。独立な系列ではnに近い値、混合の悪いチェーン
// では大幅に小さい値になる
func EffectiveSampleSize(samples []float64) (float64, error) {
	const op = "diagnostics.EffectiveSampleSize"

	n := len(samples)
	if n == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, op)
	}
	if n == 1 {
		return 1, nil
	}

	mean := stat.Mean(samples, nil)
	var denom float64
	for _, x := range samples {
		denom += (x - mean) * (x - mean)
	}
	if denom == 0 {
		// 定数列は情報量ゼロとして扱う
		return 1, nil
	}

	var acSum float64
	for lag := 1; lag < n/2; lag++ {
		var num float64
		for i := 0; i+lag < n; i++ {
			num += (samples[i] - mean) * (samples[i+lag] - mean)
		}
		rho := num / denom
		if rho <= 0 {
			break
		}
		acSum += rho
	}

	ess := float64(n) / (1 + 2*acSum)
	if ess > float64(n) {
		ess = float64(n)
	}
	return ess, nil
}
