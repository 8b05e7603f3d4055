// Package slice implements slice sampling: a univariate sampler with
// adaptive step-out/shrink brackets, and a multivariate sampler that
// composes univariate draws along a fixed set of direction vectors.
package slice

import (
	"math"
	"math/rand/v2"

	"github.com/thanhuwe8/mcgo/core/sampler"
	"github.com/thanhuwe8/mcgo/pkg/errors"
	"github.com/thanhuwe8/mcgo/pkg/log"
)

// shrinkWarnThreshold is the rejection count at which a ShrinkWarning is
// emitted; with a well chosen width the shrink loop accepts within a few
// proposals.
const shrinkWarnThreshold = 20

// Sampler はステップアウト・縮小法による1次元スライスサンプラー
// 非正規化対数密度のみを通じてターゲット分布からサンプルを生成する
type Sampler struct {
	sampler.BaseSampler

	logp     sampler.LogDensity
	x        float64
	width    float64
	maxSteps int
	rng      *rand.Rand
	logger   log.Logger
}

// NewSampler は新しいスライスサンプラーを作成する
//
// パラメータ:
//   - logp: 非正規化対数密度（ゼロ確率領域では -Inf を返してよい）
//   - x0: チェーンの初期状態
//
// 使用例:
//
//	s, err := slice.NewSampler(logp, 0, slice.WithWidth(2.0))
func NewSampler(logp sampler.LogDensity, x0 float64, opts ...Option) (*Sampler, error) {
	if logp == nil {
		return nil, errors.NewValueError("slice.NewSampler", "log-density must not be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.width <= 0 || math.IsNaN(cfg.width) || math.IsInf(cfg.width, 0) {
		return nil, errors.NewValidationError("width", "must be positive and finite", cfg.width)
	}
	if cfg.maxSteps <= 0 {
		return nil, errors.NewValidationError("maxSteps", "must be positive", cfg.maxSteps)
	}
	if err := errors.CheckScalar("slice.NewSampler", x0, 0); err != nil {
		return nil, err
	}

	return &Sampler{
		logp:     logp,
		x:        x0,
		width:    cfg.width,
		maxSteps: cfg.maxSteps,
		rng:      cfg.random(),
		logger:   cfg.logger,
	}, nil
}

// State はチェーンを進めずに現在の状態を返す
func (s *Sampler) State() float64 {
	return s.x
}

// Width は設定されたステップ幅を返す
func (s *Sampler) Width() float64 {
	return s.width
}

// Sample はチェーンを1ステップ進めて新しいサンプルを返す
//
// アルゴリズム:
//  1. 現在位置の対数密度から補助スライスレベル log_u を引く（対数領域で計算）
//  2. 幅wのブラケットをランダムな位置に置く
//  3. ステップアウト: 両端がスライスレベルを下回るまでwずつ拡張する
//  4. 縮小: ブラケット内の一様な提案を棄却のたびに現在位置へ縮めながら、
//     スライスレベルを超える点が出るまで繰り返す
//
// ステップアウトと縮小はいずれも maxSteps で打ち切られ、
// 超過時は ExpansionError を返す
func (s *Sampler) Sample() (x float64, err error) {
	defer errors.Recover(&err, "slice.Sample")

	const op = "slice.Sample"

	logPx := s.eval(s.x)
	if err := errors.CheckLogDensity(op, []float64{s.x}, logPx); err != nil {
		return 0, err
	}
	if math.IsInf(logPx, -1) {
		return 0, errors.NewValueError(op, "current state has zero probability under the target")
	}

	// log(u) = log_p(x) + log(v), v ~ U(0,1]; exp(log_p(x)) is never formed
	logU := logPx + math.Log(1-s.rng.Float64())

	// Randomized bracket placement around x avoids bias from a fixed origin.
	r := s.rng.Float64()
	xl := s.x - r*s.width
	xr := s.x + (1-r)*s.width

	xl, err = s.stepOut(xl, -s.width, logU)
	if err != nil {
		return 0, err
	}
	xr, err = s.stepOut(xr, s.width, logU)
	if err != nil {
		return 0, err
	}

	s.logger.Debug("bracket established",
		"left", xl,
		"right", xr,
		"level", logU,
	)

	for i := 0; i < s.maxSteps; i++ {
		x := xl + s.rng.Float64()*(xr-xl)
		v := s.eval(x)
		if err := errors.CheckLogDensity(op, []float64{x}, v); err != nil {
			return 0, err
		}
		if v > logU {
			if i >= shrinkWarnThreshold {
				errors.Warn(errors.NewShrinkWarning("UnivariateSlice", i, s.width))
			}
			s.x = x
			s.CountDraw()
			return x, nil
		}
		// Shrink toward the current state; the accepted region keeps
		// nonzero measure so this terminates almost surely.
		if x > s.x {
			xr = x
		} else {
			xl = x
		}
	}

	return 0, errors.NewExpansionError(op, "shrink", s.maxSteps, s.width)
}

// stepOut extends one bracket endpoint by `step` until the density at the
// endpoint falls below the slice level or the iteration cap is hit.
func (s *Sampler) stepOut(x0, step, logU float64) (float64, error) {
	const op = "slice.Sample"

	x := x0
	for i := 0; ; i++ {
		v := s.eval(x)
		if err := errors.CheckLogDensity(op, []float64{x}, v); err != nil {
			return 0, err
		}
		if v <= logU {
			return x, nil
		}
		if i >= s.maxSteps {
			return 0, errors.NewExpansionError(op, "step-out", s.maxSteps, s.width)
		}
		x += step
	}
}

func (s *Sampler) eval(x float64) float64 {
	s.CountEval()
	return s.logp(x)
}
