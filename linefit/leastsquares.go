package linefit

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/btracey/descent/common"
)

// LeastSquares fits the line minimizing the sum of squared vertical
// residuals, in closed form:
//
//	slope     = (n·Σxy − Σx·Σy) / (n·Σx² − (Σx)²)
//	intercept = (Σy − slope·Σx) / n
//
// The sums are taken about the means x̄ and ȳ, which gives the same line
// without cancellation when the x values are far from the origin:
//
//	slope     = Σ(x−x̄)(y−ȳ) / Σ(x−x̄)²
//	intercept = ȳ − slope·x̄
//
// At least two distinct x values are needed.
type LeastSquares struct{}

func (LeastSquares) Fit(points []Point) (*Report, error) {
	if err := checkPoints(points); err != nil {
		return nil, err
	}

	xs, ys := split(points)
	meanX := stat.Mean(xs, nil)
	meanY := stat.Mean(ys, nil)

	var sxx, sxy float64
	sameX := true
	for i := range xs {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
		sameX = sameX && xs[i] == xs[0]
	}

	// The mean of identical values can be off by an ulp, so sxx alone does
	// not detect the vertical case.
	if sameX || sxx == 0 {
		return nil, fmt.Errorf("linefit: %w: all %d points share x = %g, the line is vertical",
			common.ErrDegenerateInput, len(points), points[0].X)
	}

	slope := sxy / sxx
	line := Line{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
	}
	return newReport("least squares", points, line, nil, 0), nil
}
