package linefit

import (
	"fmt"
	"math"

	"github.com/btracey/descent/common"
	"github.com/btracey/descent/multivariate"
	"github.com/btracey/descent/write"
)

// DefaultStride is the snapshot stride used when GradientDescent.Stride is
// not positive.
const DefaultStride = 500

// GradientDescent fits the line by batch gradient descent on the mean
// squared error, starting from the zero line and running exactly Iterations
// steps. Each step computes the gradient over every point, divides it by the
// number of points and moves against it by LearningRate.
//
// LearningRate must be positive. It is not checked against the scale of the
// data: a rate that is too large makes the fit diverge, which shows up as
// an infinite or NaN line (see Report.Finite) rather than as an error.
type GradientDescent struct {
	LearningRate float64
	Iterations   int

	// Stride is the interval between history snapshots. The line after
	// iterations 0, Stride, 2*Stride, ... is recorded.
	Stride int

	// Write optionally traces the iterations.
	Write *write.WriteSettings
}

func (g GradientDescent) Fit(points []Point) (*Report, error) {
	hyper := common.Hyperparameters{LearningRate: g.LearningRate, Iterations: g.Iterations}
	if err := hyper.Validate(); err != nil {
		return nil, fmt.Errorf("linefit: %w", err)
	}
	if !(g.LearningRate > 0) || math.IsInf(g.LearningRate, 1) {
		return nil, fmt.Errorf("linefit: %w: learning rate must be a positive number, got %g",
			common.ErrInvalidParameter, g.LearningRate)
	}
	if err := checkPoints(points); err != nil {
		return nil, err
	}

	stride := g.Stride
	if stride <= 0 {
		stride = DefaultStride
	}
	history := make(History, 0, (g.Iterations+stride-1)/stride)

	settings := multivariate.DefaultSettings()
	settings.MaximumIterations = g.Iterations
	if g.Write != nil {
		settings.WriteSettings = g.Write
	}
	settings.Recorder = func(iter int, loc []float64, _ float64) {
		if iter%stride == 0 {
			history = append(history, Snapshot{Iteration: iter, Line: Line{Slope: loc[0], Intercept: loc[1]}})
		}
	}

	mse := &meanSquaredError{points: points}
	result, err := multivariate.OptimizeGrad(mse, []float64{0, 0}, settings, &multivariate.GradientDescent{StepSize: g.LearningRate})
	if err != nil {
		return nil, fmt.Errorf("linefit: gradient descent: %w", err)
	}
	line := Line{Slope: result.Loc[0], Intercept: result.Loc[1]}
	return newReport("gradient descent", points, line, history, result.Iterations), nil
}

// meanSquaredError is (1/n) Σ (y - (slope·x + intercept))² as a function of
// (slope, intercept).
type meanSquaredError struct {
	points []Point
	last   Line
}

func (m *meanSquaredError) ObjGrad(x []float64, grad []float64) float64 {
	slope, intercept := x[0], x[1]
	var sumSq, slopeGrad, interceptGrad float64
	for _, p := range m.points {
		r := p.Y - (slope*p.X + intercept)
		slopeGrad += -2 * p.X * r
		interceptGrad += -2 * r
		sumSq += r * r
	}
	n := float64(len(m.points))
	grad[0] = slopeGrad / n
	grad[1] = interceptGrad / n
	m.last = Line{Slope: slope, Intercept: intercept}
	return sumSq / n
}

func (m *meanSquaredError) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Slope", Value: m.last.Slope})
	v = append(v, &write.Value{Heading: "Intercept", Value: m.last.Intercept})
	return v
}
