package linefit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/btracey/descent/common"
)

// Fitter computes the line that best fits points under its own objective.
type Fitter interface {
	Fit(points []Point) (*Report, error)
}

// Report is the outcome of one fit.
type Report struct {
	Method     string
	Line       Line
	History    History // Empty for closed-form fits
	Iterations int     // Zero for closed-form fits

	// Goodness of fit of Line against the fitted points. RSquared is NaN
	// when every y is identical.
	RSquared float64
	RMSE     float64
}

func (r *Report) String() string {
	return fmt.Sprintf("%s: %v (R² = %.6f, RMSE = %.6g)", r.Method, r.Line, r.RSquared, r.RMSE)
}

// Finite reports whether the fitted slope and intercept are finite numbers.
// A non-finite line is the symptom of a learning rate too large for the data.
func (r *Report) Finite() bool {
	return !math.IsNaN(r.Line.Slope) && !math.IsInf(r.Line.Slope, 0) &&
		!math.IsNaN(r.Line.Intercept) && !math.IsInf(r.Line.Intercept, 0)
}

func newReport(method string, points []Point, line Line, history History, iterations int) *Report {
	xs, ys := split(points)
	residuals := make([]float64, len(points))
	for i := range points {
		residuals[i] = ys[i] - line.At(xs[i])
	}
	return &Report{
		Method:     method,
		Line:       line,
		History:    history,
		Iterations: iterations,
		RSquared:   stat.RSquared(xs, ys, nil, line.Intercept, line.Slope),
		RMSE:       floats.Norm(residuals, 2) / math.Sqrt(float64(len(points))),
	}
}

func split(points []Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

func checkPoints(points []Point) error {
	if len(points) == 0 {
		return fmt.Errorf("linefit: %w: no points to fit", common.ErrInsufficientData)
	}
	return nil
}
