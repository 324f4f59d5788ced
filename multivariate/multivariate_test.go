package multivariate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/btracey/descent/common"
)

const bowlTolerance = 1e-10

// Bowl is sum_i w_i (x_i - c_i)^2
type Bowl struct {
	Center  []float64
	Weights []float64
}

func (b Bowl) ObjGrad(x []float64, grad []float64) (loss float64) {
	for i := range x {
		d := x[i] - b.Center[i]
		loss += b.Weights[i] * d * d
		grad[i] = 2 * b.Weights[i] * d
	}
	return loss
}

func newSettings(iterations int) *Settings {
	s := DefaultSettings()
	s.MaximumIterations = iterations
	return s
}

func TestGradientDescentBowl(t *testing.T) {
	b := Bowl{Center: []float64{1, -2, 3}, Weights: []float64{1, 2, 0.5}}
	init := []float64{10, 10, 10}

	result, err := OptimizeGrad(b, init, newSettings(500), &GradientDescent{StepSize: 0.1})
	require.NoError(t, err)
	if !floats.EqualApprox(result.Loc, b.Center, bowlTolerance) {
		t.Errorf("location doesn't match. Expected: %v, Found %v", b.Center, result.Loc)
	}
	assert.InDelta(t, 0, result.Obj, bowlTolerance)
	assert.InDelta(t, 0, result.GradNorm, bowlTolerance)
	assert.Equal(t, 500, result.Iterations)
	assert.Equal(t, common.IterationLimit, result.Status)
	assert.Equal(t, []float64{10, 10, 10}, init, "initial location must not be modified")
}

func TestGradientDescentSingleStep(t *testing.T) {
	b := Bowl{Center: []float64{0, 0}, Weights: []float64{1, 1}}
	result, err := OptimizeGrad(b, []float64{4, -2}, newSettings(1), &GradientDescent{StepSize: 0.25})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, -1}, result.Loc)
	assert.Equal(t, []float64{4, -2}, result.Grad)
	assert.Equal(t, 5.0, result.Obj)
}

func TestGradientDescentRerunStartsFresh(t *testing.T) {
	b := Bowl{Center: []float64{1, 1}, Weights: []float64{1, 1}}
	gd := &GradientDescent{StepSize: 0.1}
	first, err := OptimizeGrad(b, []float64{0, 0}, newSettings(7), gd)
	require.NoError(t, err)
	second, err := OptimizeGrad(b, []float64{0, 0}, newSettings(7), gd)
	require.NoError(t, err)
	assert.Equal(t, first.Loc, second.Loc)
	assert.Equal(t, first.Obj, second.Obj)
}

func TestOptimizeGradRecorder(t *testing.T) {
	b := Bowl{Center: []float64{0}, Weights: []float64{1}}
	var got [][]float64
	s := newSettings(3)
	s.Recorder = func(iter int, loc []float64, obj float64) {
		assert.Equal(t, len(got), iter)
		got = append(got, append([]float64(nil), loc...))
	}
	_, err := OptimizeGrad(b, []float64{8}, s, &GradientDescent{StepSize: 0.25})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{4}, {2}, {1}}, got)
}

func TestOptimizeGradErrors(t *testing.T) {
	b := Bowl{Center: []float64{0}, Weights: []float64{1}}

	_, err := OptimizeGrad(b, []float64{1}, newSettings(-3), &GradientDescent{StepSize: 0.1})
	assert.True(t, errors.Is(err, common.ErrInvalidParameter))

	_, err = OptimizeGrad(b, nil, newSettings(1), &GradientDescent{StepSize: 0.1})
	assert.Error(t, err)

	_, err = OptimizeGrad(b, []float64{1}, newSettings(1), nil)
	assert.Error(t, err)
}
