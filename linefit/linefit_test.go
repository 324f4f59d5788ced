package linefit

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"

	"github.com/btracey/descent/common"
)

func linePoints(m, k float64, xs ...float64) []Point {
	points := make([]Point, len(xs))
	for i, x := range xs {
		points[i] = Point{X: x, Y: m*x + k}
	}
	return points
}

func TestLeastSquaresExact(t *testing.T) {
	for _, test := range []struct {
		name string
		m, k float64
		xs   []float64
	}{
		{name: "two points", m: 2, k: 1, xs: []float64{0, 1}},
		{name: "integers", m: -3.5, k: 12, xs: []float64{1, 2, 3, 4, 5, 6}},
		{name: "unsorted", m: 0.25, k: -4, xs: []float64{7, -2, 3.5, 0, 11}},
		{name: "flat", m: 0, k: 3, xs: []float64{-1, 0, 1}},
		{name: "offset", m: 1.5, k: 0.5, xs: []float64{100, 101, 102, 103}},
		{name: "far offset", m: 1.5, k: 0.5, xs: []float64{1e8, 1e8 + 1, 1e8 + 2, 1e8 + 3}},
	} {
		t.Run(test.name, func(t *testing.T) {
			rep, err := LeastSquares{}.Fit(linePoints(test.m, test.k, test.xs...))
			require.NoError(t, err)
			assert.InDelta(t, test.m, rep.Line.Slope, 1e-9)
			assert.InDelta(t, test.k, rep.Line.Intercept, 1e-9)
			assert.Empty(t, rep.History)
			assert.Zero(t, rep.Iterations)
			assert.InDelta(t, 0, rep.RMSE, 1e-9)
		})
	}
}

func TestLeastSquaresMatchesGonum(t *testing.T) {
	points := []Point{{1, 2.1}, {2, 3.9}, {3, 6.2}, {4, 7.8}, {5, 10.1}, {6, 12.2}}
	xs, ys := split(points)
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	rep, err := LeastSquares{}.Fit(points)
	require.NoError(t, err)
	if !scalar.EqualWithinAbsOrRel(rep.Line.Slope, beta, 1e-12, 1e-12) {
		t.Errorf("slope mismatch: want %v, got %v", beta, rep.Line.Slope)
	}
	if !scalar.EqualWithinAbsOrRel(rep.Line.Intercept, alpha, 1e-12, 1e-12) {
		t.Errorf("intercept mismatch: want %v, got %v", alpha, rep.Line.Intercept)
	}
	assert.InDelta(t, stat.RSquared(xs, ys, nil, alpha, beta), rep.RSquared, 1e-12)
	assert.Less(t, rep.RSquared, 1.0)
	assert.Greater(t, rep.RSquared, 0.99)
}

func TestLeastSquaresDegenerate(t *testing.T) {
	for _, points := range [][]Point{
		{{X: 2, Y: 1}},
		{{X: 2, Y: 1}, {X: 2, Y: 5}},
		{{X: 0.1, Y: 1}, {X: 0.1, Y: 2}, {X: 0.1, Y: 3}},
	} {
		_, err := LeastSquares{}.Fit(points)
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrDegenerateInput), "got %v", err)
	}
}

func TestFitEmpty(t *testing.T) {
	for _, f := range []Fitter{
		LeastSquares{},
		GradientDescent{LearningRate: 0.01, Iterations: 10},
	} {
		_, err := f.Fit(nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrInsufficientData))

		_, err = f.Fit([]Point{})
		assert.True(t, errors.Is(err, common.ErrInsufficientData))
	}
}

func TestGradientDescentConverges(t *testing.T) {
	points := linePoints(2, 1, 0, 1, 2, 3, 4)
	ls, err := LeastSquares{}.Fit(points)
	require.NoError(t, err)

	gd, err := GradientDescent{LearningRate: 0.01, Iterations: 10000}.Fit(points)
	require.NoError(t, err)
	assert.InDelta(t, ls.Line.Slope, gd.Line.Slope, 1e-2)
	assert.InDelta(t, ls.Line.Intercept, gd.Line.Intercept, 1e-2)
	assert.Equal(t, 10000, gd.Iterations)
	assert.True(t, gd.Finite())
}

func TestGradientDescentHistory(t *testing.T) {
	points := linePoints(2, 1, 0, 1, 2, 3, 4)
	rep, err := GradientDescent{LearningRate: 0.01, Iterations: 10000}.Fit(points)
	require.NoError(t, err)

	require.Len(t, rep.History, 20)
	for i, snap := range rep.History {
		assert.Equal(t, i*500, snap.Iteration)
	}
	assert.Len(t, rep.History.Lines(), 20)

	for _, test := range []struct {
		iterations, stride, want int
	}{
		{iterations: 0, want: 0},
		{iterations: 1, want: 1},
		{iterations: 500, want: 1},
		{iterations: 501, want: 2},
		{iterations: 10, stride: 3, want: 4},
	} {
		rep, err := GradientDescent{LearningRate: 0.01, Iterations: test.iterations, Stride: test.stride}.Fit(points)
		require.NoError(t, err)
		assert.Len(t, rep.History, test.want, "iterations %d stride %d", test.iterations, test.stride)
	}
}

func TestGradientDescentFirstStep(t *testing.T) {
	// From the zero line the first step is -lr * (-2/n) * (Σxy, Σy).
	points := []Point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	rep, err := GradientDescent{LearningRate: 0.1, Iterations: 1}.Fit(points)
	require.NoError(t, err)
	assert.InDelta(t, 0.1*(2+12), rep.Line.Slope, 1e-15)
	assert.InDelta(t, 0.1*(2+4), rep.Line.Intercept, 1e-15)
	require.Len(t, rep.History, 1)
	assert.Equal(t, rep.Line, rep.History[0].Line)
}

func TestGradientDescentZeroIterations(t *testing.T) {
	rep, err := GradientDescent{LearningRate: 0.01}.Fit(linePoints(1, 1, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, Line{}, rep.Line)
	assert.Empty(t, rep.History)
}

func TestGradientDescentRepeatable(t *testing.T) {
	points := linePoints(-1, 4, 0, 0.5, 1, 1.5, 2)
	before := append([]Point(nil), points...)
	g := GradientDescent{LearningRate: 0.05, Iterations: 1234}

	first, err := g.Fit(points)
	require.NoError(t, err)
	second, err := g.Fit(points)
	require.NoError(t, err)
	assert.Equal(t, first.Line, second.Line)
	assert.Equal(t, first.History, second.History)
	assert.Equal(t, before, points)
}

func TestGradientDescentInvalidParameters(t *testing.T) {
	points := linePoints(1, 0, 0, 1)
	for _, g := range []GradientDescent{
		{LearningRate: 0.01, Iterations: -1},
		{LearningRate: 0, Iterations: 10},
		{LearningRate: -0.1, Iterations: 10},
		{LearningRate: math.NaN(), Iterations: 10},
	} {
		_, err := g.Fit(points)
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrInvalidParameter), "got %v", err)
	}
}

func TestGradientDescentDiverges(t *testing.T) {
	points := linePoints(3, 0, 10, 20, 30, 40)
	rep, err := GradientDescent{LearningRate: 0.5, Iterations: 1000}.Fit(points)
	require.NoError(t, err)
	assert.False(t, rep.Finite())
}

func TestLineString(t *testing.T) {
	assert.Equal(t, "y = 2x + -1", Line{Slope: 2, Intercept: -1}.String())
	assert.Equal(t, 7.0, Line{Slope: 2, Intercept: 1}.At(3))
}
