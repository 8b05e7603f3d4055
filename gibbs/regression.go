package gibbs

import (
	"math/rand/v2"

	"github.com/thanhuwe8/mcgo/core/sampler"
	"github.com/thanhuwe8/mcgo/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// RegressionModel is a Bayesian linear regression with conjugate priors,
//
//	t | w, τ ~ N(Xw, τ⁻¹ I)
//	w        ~ N(0, Σ₀)        (parameterized by its precision Σ₀⁻¹)
//	τ        ~ Gamma(α₀, β₀)
//
// whose full conditionals are closed-form: the weights are multivariate
// normal and the noise precision is Gamma. The model carries all shared
// data explicitly instead of capturing it in closures, so the transitions
// it produces have no hidden mutable state.
type RegressionModel struct {
	// X is the n×d design matrix.
	X *mat.Dense
	// T is the n-vector of observed targets.
	T *mat.VecDense
	// PriorPrecision is Σ₀⁻¹, the d×d precision of the zero-mean weight prior.
	PriorPrecision *mat.SymDense
	// Alpha0 and Beta0 are the Gamma hyperparameters of the precision prior.
	Alpha0, Beta0 float64

	src rand.Source
}

// NewRegressionModel validates the model inputs and fixes the random
// source used by both conditional transitions.
func NewRegressionModel(X *mat.Dense, t *mat.VecDense, priorPrecision *mat.SymDense, alpha0, beta0 float64, src rand.Source) (*RegressionModel, error) {
	const op = "gibbs.NewRegressionModel"

	if X == nil || t == nil || priorPrecision == nil {
		return nil, errors.NewValueError(op, "design matrix, targets, and prior precision are required")
	}
	n, d := X.Dims()
	if n == 0 || d == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, op)
	}
	if t.Len() != n {
		return nil, errors.NewDimensionError(op, n, t.Len(), 0)
	}
	if pd, _ := priorPrecision.Dims(); pd != d {
		return nil, errors.NewDimensionError(op, d, pd, 1)
	}
	if alpha0 <= 0 {
		return nil, errors.NewValidationError("alpha0", "must be positive", alpha0)
	}
	if beta0 <= 0 {
		return nil, errors.NewValidationError("beta0", "must be positive", beta0)
	}
	if err := errors.CheckMatrix(op, X, n, d, 0); err != nil {
		return nil, err
	}
	if src == nil {
		src = sampler.DefaultSource()
	}

	return &RegressionModel{
		X:              X,
		T:              t,
		PriorPrecision: priorPrecision,
		Alpha0:         alpha0,
		Beta0:          beta0,
		src:            src,
	}, nil
}

// InitialState returns the conventional chain start: zero weights and
// unit noise precision. Block 0 is w (length d), block 1 is τ (length 1).
func (m *RegressionModel) InitialState() []*mat.VecDense {
	_, d := m.X.Dims()
	return []*mat.VecDense{
		mat.NewVecDense(d, nil),
		mat.NewVecDense(1, []float64{1}),
	}
}

// Transitions returns the systematic-scan conditionals in block order
// (weights, then precision), ready to drive a gibbs.Sampler.
func (m *RegressionModel) Transitions() []Transition {
	return []Transition{m.weightTransition, m.precisionTransition}
}

// weightTransition draws w | τ, t from N(μ, A⁻¹) with
//
//	A = Σ₀⁻¹ + τ XᵀX,  μ = A⁻¹ (τ Xᵀ t).
func (m *RegressionModel) weightTransition(state []*mat.VecDense) (*mat.VecDense, error) {
	const op = "gibbs.weightTransition"

	tau := state[1].AtVec(0)
	if err := errors.CheckScalar(op, tau, 0); err != nil {
		return nil, err
	}

	_, d := m.X.Dims()

	var xtx mat.Dense
	xtx.Mul(m.X.T(), m.X)

	precision := mat.NewSymDense(d, nil)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			precision.SetSym(i, j, m.PriorPrecision.At(i, j)+tau*xtx.At(i, j))
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(precision); !ok {
		return nil, errors.Wrap(errors.ErrSingularMatrix, op+": posterior precision is not positive definite")
	}

	var xtt mat.VecDense
	xtt.MulVec(m.X.T(), m.T)
	xtt.ScaleVec(tau, &xtt)

	var mu mat.VecDense
	if err := chol.SolveVecTo(&mu, &xtt); err != nil {
		return nil, errors.Wrap(err, op)
	}

	posterior, ok := distmv.NewNormalPrecision(mu.RawVector().Data, precision, m.src)
	if !ok {
		return nil, errors.Wrap(errors.ErrSingularMatrix, op+": cannot sample posterior")
	}

	return mat.NewVecDense(d, posterior.Rand(nil)), nil
}

// precisionTransition draws τ | w, t from Gamma(α₀ + n/2, β₀ + SSE/2)
// where SSE is the squared residual norm at the current weights.
func (m *RegressionModel) precisionTransition(state []*mat.VecDense) (*mat.VecDense, error) {
	const op = "gibbs.precisionTransition"

	w := state[0]
	n, _ := m.X.Dims()

	var resid mat.VecDense
	resid.MulVec(m.X, w)
	resid.SubVec(m.T, &resid)
	sse := mat.Dot(&resid, &resid)
	if err := errors.CheckScalar(op, sse, 0); err != nil {
		return nil, err
	}

	gamma := distuv.Gamma{
		Alpha: m.Alpha0 + float64(n)/2,
		Beta:  m.Beta0 + sse/2,
		Src:   m.src,
	}

	return mat.NewVecDense(1, []float64{gamma.Rand()}), nil
}

// SyntheticRegressionData builds a design matrix with an intercept column
// and uniformly spread inputs, plus targets generated from the given true
// weights with Gaussian noise of the given scale. Used by the examples
// and the posterior-recovery tests.
func SyntheticRegressionData(n int, trueWeights []float64, noise float64, src rand.Source) (*mat.Dense, *mat.VecDense, error) {
	const op = "gibbs.SyntheticRegressionData"

	if n <= 0 {
		return nil, nil, errors.NewValidationError("n", "must be positive", n)
	}
	d := len(trueWeights)
	if d == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, op+": trueWeights")
	}
	if noise < 0 {
		return nil, nil, errors.NewValidationError("noise", "must be non-negative", noise)
	}
	if src == nil {
		src = sampler.DefaultSource()
	}

	rng := rand.New(src)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	X := mat.NewDense(n, d, nil)
	t := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, 1)
		for j := 1; j < d; j++ {
			X.Set(i, j, rng.Float64()*10-5)
		}
		y := 0.0
		for j := 0; j < d; j++ {
			y += X.At(i, j) * trueWeights[j]
		}
		t.SetVec(i, y+noise*normal.Rand())
	}
	return X, t, nil
}
