// Package minimize finds a local minimum of a scalar function by fixed-step
// gradient descent.
package minimize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btracey/descent/common"
	"github.com/btracey/descent/univariate"
	"github.com/btracey/descent/write"
)

// Defaults of Minimize when run from the command line.
const (
	DefaultStart      = 6.0
	DefaultIterations = 1000
	DefaultAlpha      = 0.1
)

// State is the final position and function value of a run. The iterates
// are computed in float64 and only the final point is narrowed to float32,
// so the last digits can differ from a run carried out entirely in float32.
// Report.Result keeps the float64 values.
type State struct {
	X, Y float32
}

// Step is a point of the trajectory after the iteration with zero-based
// index Iteration.
type Step struct {
	Iteration int
	X, Y      float64
}

// Report is the outcome of one minimization.
type Report struct {
	State      State
	Start      float64
	Parameters common.Hyperparameters
	Trajectory []Step // Empty unless the Minimizer has a positive Stride
	Result     *univariate.Result
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "x0 = %g\n", r.Start)
	fmt.Fprintf(&b, "iteration = %d\n", r.Parameters.Iterations)
	fmt.Fprintf(&b, "alpha = %g\n", r.Parameters.LearningRate)
	fmt.Fprintf(&b, "minimum = (%g, %g)", r.State.X, r.State.Y)
	return b.String()
}

// Minimizer runs gradient descent on F using its derivative Deriv.
type Minimizer struct {
	F     func(x float64) float64
	Deriv func(x float64) float64

	// Stride, if positive, records the trajectory every Stride iterations.
	Stride int

	// Write optionally traces the iterations.
	Write *write.WriteSettings
}

// New returns a Minimizer for f with derivative df.
func New(f, df func(float64) float64) *Minimizer {
	return &Minimizer{F: f, Deriv: df}
}

// Default returns a Minimizer for Curve.
func Default() *Minimizer {
	return New(Curve, CurveDeriv)
}

// Minimize starts at x0 and takes exactly iterations steps
// x ← x − alpha·f'(x), then reports x and f(x). alpha is not validated: a
// step too large for the curvature makes x oscillate or diverge, and the
// resulting state is returned as is. Each call starts again from x0.
func (m *Minimizer) Minimize(x0 float64, iterations int, alpha float64) (*Report, error) {
	if m.F == nil || m.Deriv == nil {
		return nil, errors.New("minimize: function and derivative are required")
	}
	hyper := common.Hyperparameters{LearningRate: alpha, Iterations: iterations}
	if err := hyper.Validate(); err != nil {
		return nil, fmt.Errorf("minimize: %w", err)
	}

	var trajectory []Step
	settings := univariate.DefaultSettings()
	settings.MaximumIterations = iterations
	if m.Write != nil {
		settings.WriteSettings = m.Write
	}
	if m.Stride > 0 {
		settings.Recorder = func(iter int, loc, obj float64) {
			if iter%m.Stride == 0 {
				trajectory = append(trajectory, Step{Iteration: iter, X: loc, Y: obj})
			}
		}
	}

	fn := univariate.Func{F: m.F, Deriv: m.Deriv}
	result, err := univariate.OptimizeGrad(fn, x0, settings, &univariate.GradientDescent{StepSize: alpha})
	if err != nil {
		return nil, fmt.Errorf("minimize: %w", err)
	}
	return &Report{
		State:      State{X: float32(result.Loc), Y: float32(result.Obj)},
		Start:      x0,
		Parameters: hyper,
		Trajectory: trajectory,
		Result:     result,
	}, nil
}
