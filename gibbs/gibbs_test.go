package gibbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanhuwe8/mcgo/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func TestNewSamplerValidation(t *testing.T) {
	identity := func(state []*mat.VecDense) (*mat.VecDense, error) {
		return mat.VecDenseCopyOf(state[0]), nil
	}
	block := mat.NewVecDense(1, []float64{0})

	tests := []struct {
		name        string
		transitions []Transition
		initial     []*mat.VecDense
		wantErr     bool
	}{
		{
			name:        "valid single block",
			transitions: []Transition{identity},
			initial:     []*mat.VecDense{block},
		},
		{
			name:        "no transitions",
			transitions: nil,
			initial:     []*mat.VecDense{block},
			wantErr:     true,
		},
		{
			name:        "block count mismatch",
			transitions: []Transition{identity, identity},
			initial:     []*mat.VecDense{block},
			wantErr:     true,
		},
		{
			name:        "nil transition",
			transitions: []Transition{nil},
			initial:     []*mat.VecDense{block},
			wantErr:     true,
		},
		{
			name:        "nil block",
			transitions: []Transition{identity},
			initial:     []*mat.VecDense{nil},
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSampler(tt.transitions, tt.initial)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSampler() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSystematicScanOrdering(t *testing.T) {
	// Block 0 reads block 1's previous value; block 1 reads block 0's
	// value from the current sweep. The resulting sequence pins down the
	// partially-updated-state semantics exactly.
	transitions := []Transition{
		func(state []*mat.VecDense) (*mat.VecDense, error) {
			return mat.NewVecDense(1, []float64{state[1].AtVec(0) + 1}), nil
		},
		func(state []*mat.VecDense) (*mat.VecDense, error) {
			return mat.NewVecDense(1, []float64{state[0].AtVec(0) * 2}), nil
		},
	}
	initial := []*mat.VecDense{
		mat.NewVecDense(1, []float64{0}),
		mat.NewVecDense(1, []float64{0}),
	}

	s, err := NewSampler(transitions, initial)
	require.NoError(t, err)

	// Sweep 1: a = 0+1 = 1,  b = 1*2 = 2
	state, err := s.Sample()
	require.NoError(t, err)
	assert.Equal(t, 1.0, state[0].AtVec(0))
	assert.Equal(t, 2.0, state[1].AtVec(0))

	// Sweep 2: a = 2+1 = 3,  b = 3*2 = 6
	state, err = s.Sample()
	require.NoError(t, err)
	assert.Equal(t, 3.0, state[0].AtVec(0))
	assert.Equal(t, 6.0, state[1].AtVec(0))

	assert.Equal(t, 2, s.Draws())
}

func TestTransitionDimensionMismatch(t *testing.T) {
	transitions := []Transition{
		func(state []*mat.VecDense) (*mat.VecDense, error) {
			return mat.NewVecDense(3, nil), nil // wrong length
		},
	}
	initial := []*mat.VecDense{mat.NewVecDense(2, nil)}

	s, err := NewSampler(transitions, initial)
	require.NoError(t, err)

	_, err = s.Sample()
	require.Error(t, err)

	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr), "expected DimensionError, got %v", err)
}

func TestTransitionErrorIsWrapped(t *testing.T) {
	sentinel := errors.New("conditional failed")
	transitions := []Transition{
		func(state []*mat.VecDense) (*mat.VecDense, error) {
			return nil, sentinel
		},
	}
	initial := []*mat.VecDense{mat.NewVecDense(1, nil)}

	s, err := NewSampler(transitions, initial)
	require.NoError(t, err)

	_, err = s.Sample()
	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel))
}

func TestTransitionPanicIsRecovered(t *testing.T) {
	transitions := []Transition{
		func(state []*mat.VecDense) (*mat.VecDense, error) {
			panic("bad conditional")
		},
	}
	initial := []*mat.VecDense{mat.NewVecDense(1, nil)}

	s, err := NewSampler(transitions, initial)
	require.NoError(t, err)

	_, err = s.Sample()
	require.Error(t, err)

	var panicErr *errors.PanicError
	assert.True(t, errors.As(err, &panicErr), "expected PanicError, got %v", err)
}

func TestFailedSweepLeavesStateUntouched(t *testing.T) {
	calls := 0
	transitions := []Transition{
		func(state []*mat.VecDense) (*mat.VecDense, error) {
			return mat.NewVecDense(1, []float64{42}), nil
		},
		func(state []*mat.VecDense) (*mat.VecDense, error) {
			calls++
			return nil, errors.New("boom")
		},
	}
	initial := []*mat.VecDense{
		mat.NewVecDense(1, []float64{7}),
		mat.NewVecDense(1, []float64{8}),
	}

	s, err := NewSampler(transitions, initial)
	require.NoError(t, err)

	_, err = s.Sample()
	require.Error(t, err)
	require.Equal(t, 1, calls)

	// The stored state still holds the pre-sweep values.
	state := s.State()
	assert.Equal(t, 7.0, state[0].AtVec(0))
	assert.Equal(t, 8.0, state[1].AtVec(0))
	assert.Equal(t, 0, s.Draws())
}

func TestStateReturnsCopies(t *testing.T) {
	identity := func(state []*mat.VecDense) (*mat.VecDense, error) {
		return mat.VecDenseCopyOf(state[0]), nil
	}
	initial := []*mat.VecDense{mat.NewVecDense(1, []float64{5})}

	s, err := NewSampler([]Transition{identity}, initial)
	require.NoError(t, err)

	got := s.State()
	got[0].SetVec(0, -1)
	assert.Equal(t, 5.0, s.State()[0].AtVec(0), "mutating a returned block must not corrupt the sampler")
}

func TestAsVectorFlattensInBlockOrder(t *testing.T) {
	transitions := []Transition{
		func(state []*mat.VecDense) (*mat.VecDense, error) {
			return mat.NewVecDense(2, []float64{1, 2}), nil
		},
		func(state []*mat.VecDense) (*mat.VecDense, error) {
			return mat.NewVecDense(1, []float64{3}), nil
		},
	}
	initial := []*mat.VecDense{
		mat.NewVecDense(2, nil),
		mat.NewVecDense(1, nil),
	}

	s, err := NewSampler(transitions, initial)
	require.NoError(t, err)

	vs := s.AsVector()
	assert.Equal(t, []float64{0, 0, 0}, vs.State())

	x, err := vs.Sample()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, x)
}
