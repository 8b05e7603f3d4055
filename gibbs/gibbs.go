// Package gibbs implements systematic-scan Gibbs sampling over a vector
// of heterogeneous state blocks, together with a conjugate Bayesian
// linear-regression model whose closed-form conditionals serve as the
// worked example and the reference test target.
package gibbs

import (
	"github.com/thanhuwe8/mcgo/core/sampler"
	"github.com/thanhuwe8/mcgo/pkg/errors"
	"github.com/thanhuwe8/mcgo/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// Transition computes a new value for one state block given the full
// state. During a sweep the state passed in reflects blocks before the
// transition's own index already updated in this pass, and later blocks
// still holding the previous sweep's values.
//
// A transition must only read blocks it is not responsible for writing;
// this is a caller contract, not a runtime-checked invariant.
type Transition func(state []*mat.VecDense) (*mat.VecDense, error)

// Sampler は系統的スキャンのギブスサンプラー
// 各ブロックの条件付きサンプリング関数を固定順で適用して状態を更新する
type Sampler struct {
	sampler.BaseSampler

	state       []*mat.VecDense
	transitions []Transition
	logger      log.Logger
}

// Option configures a Gibbs sampler.
type Option func(*Sampler)

// WithLogger sets the structured logger used for sweep diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(s *Sampler) {
		s.logger = logger
	}
}

// NewSampler は新しいギブスサンプラーを作成する
//
// パラメータ:
//   - transitions: ブロックごとの条件付きサンプリング関数（ブロックと同数）
//   - initial: 初期状態ブロック（スカラーはサイズ1のベクトルとして表す）
func NewSampler(transitions []Transition, initial []*mat.VecDense, opts ...Option) (*Sampler, error) {
	const op = "gibbs.NewSampler"

	if len(transitions) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, op+": transitions")
	}
	if len(initial) != len(transitions) {
		return nil, errors.NewDimensionError(op, len(transitions), len(initial), 0)
	}
	for i, b := range initial {
		if b == nil || b.Len() == 0 {
			return nil, errors.NewValueError(op, "initial state blocks must be non-empty")
		}
		if transitions[i] == nil {
			return nil, errors.NewValueError(op, "transitions must not be nil")
		}
	}

	s := &Sampler{
		state:       cloneBlocks(initial),
		transitions: transitions,
		logger:      log.GetLoggerWithName("gibbs"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Blocks returns the number of state blocks.
func (s *Sampler) Blocks() int {
	return len(s.state)
}

// State returns a copy of the current state blocks without advancing the chain.
func (s *Sampler) State() []*mat.VecDense {
	return cloneBlocks(s.state)
}

// Sample はブロック全体を一巡する1スイープを実行して更新後の状態を返す
//
// スイープ中の各遷移は「自分より前のブロックは今回の値、後のブロックは
// 前回の値」を持つ部分更新済みの状態を受け取る。各遷移が返すブロックは
// 置き換え対象と同じ長さでなければならない（DimensionError）。
// 返される状態は呼び出し側が保持してよいコピーである。
func (s *Sampler) Sample() (state []*mat.VecDense, err error) {
	defer errors.Recover(&err, "gibbs.Sample")

	const op = "gibbs.Sample"

	// Shallow copy of the top-level sequence: transitions replace whole
	// blocks, they never mutate a block in place.
	work := make([]*mat.VecDense, len(s.state))
	copy(work, s.state)

	for i, transition := range s.transitions {
		block, err := transition(work)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: transition %d", op, i)
		}
		if block == nil {
			return nil, errors.NewValueError(op, "transition returned nil block")
		}
		if block.Len() != work[i].Len() {
			return nil, errors.NewDimensionError(op, work[i].Len(), block.Len(), i)
		}
		work[i] = block
	}

	s.state = work
	s.CountDraw()
	return cloneBlocks(work), nil
}

// AsVector adapts the sampler to the flat VectorSampler interface used by
// the chain driver: state blocks are concatenated in order.
func (s *Sampler) AsVector() sampler.VectorSampler {
	return &flatAdapter{s: s}
}

type flatAdapter struct {
	s *Sampler
}

func (a *flatAdapter) Sample() ([]float64, error) {
	state, err := a.s.Sample()
	if err != nil {
		return nil, err
	}
	return Flatten(state), nil
}

func (a *flatAdapter) State() []float64 {
	return Flatten(a.s.state)
}

func (a *flatAdapter) Evals() int { return a.s.Evals() }
func (a *flatAdapter) Draws() int { return a.s.Draws() }

// Flatten concatenates state blocks into a single vector, in block order.
func Flatten(state []*mat.VecDense) []float64 {
	n := 0
	for _, b := range state {
		n += b.Len()
	}
	out := make([]float64, 0, n)
	for _, b := range state {
		for i := 0; i < b.Len(); i++ {
			out = append(out, b.AtVec(i))
		}
	}
	return out
}

func cloneBlocks(blocks []*mat.VecDense) []*mat.VecDense {
	out := make([]*mat.VecDense, len(blocks))
	for i, b := range blocks {
		out[i] = mat.VecDenseCopyOf(b)
	}
	return out
}
