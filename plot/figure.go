// Package plot renders fits and minimizations through external plotting
// programs. Rendering happens after the numbers are computed, and a sink that
// cannot be reached reports an error wrapping common.ErrResourceUnavailable
// instead of affecting the results.
package plot

import (
	"fmt"
	"math"

	"github.com/btracey/descent/linefit"
	"github.com/btracey/descent/minimize"
)

// XY is a point of a series.
type XY struct {
	X, Y float64
}

// Series is a named, ordered list of points.
type Series struct {
	Name   string
	Points []XY
}

// Figure is a set of scatter series overlaid with line series.
type Figure struct {
	Title  string
	XLabel string
	YLabel string

	Scatter []Series
	Lines   []Series
}

// FitFigure draws the fitted points, one line per history snapshot and the
// final line of rep. Lines span the x range of the points.
func FitFigure(title string, points []linefit.Point, rep *linefit.Report) Figure {
	fig := Figure{Title: title, XLabel: "X", YLabel: "Y"}
	data := Series{Name: "Data Points", Points: make([]XY, len(points))}
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		data.Points[i] = XY{X: p.X, Y: p.Y}
		lo = math.Min(lo, p.X)
		hi = math.Max(hi, p.X)
	}
	fig.Scatter = append(fig.Scatter, data)
	if len(points) == 0 || rep == nil {
		return fig
	}

	segment := func(name string, l linefit.Line) Series {
		return Series{Name: name, Points: []XY{{X: lo, Y: l.At(lo)}, {X: hi, Y: l.At(hi)}}}
	}
	for _, s := range rep.History {
		fig.Lines = append(fig.Lines, segment(fmt.Sprintf("Iter %d", s.Iteration), s.Line))
	}
	name := "Regression Line"
	if len(rep.History) > 0 {
		name = "Final Regression Line"
	}
	fig.Lines = append(fig.Lines, segment(name, rep.Line))
	return fig
}

// CurveFigure samples f at samples evenly spaced points of domain and marks
// the minimum found in rep, plus its trajectory when one was recorded.
func CurveFigure(title string, f func(float64) float64, domain [2]float64, samples int, rep *minimize.Report) Figure {
	if samples < 2 {
		samples = 2
	}
	curve := Series{Name: "curve", Points: make([]XY, samples)}
	step := (domain[1] - domain[0]) / float64(samples-1)
	for i := range curve.Points {
		x := domain[0] + float64(i)*step
		curve.Points[i] = XY{X: x, Y: f(x)}
	}
	fig := Figure{Title: title, XLabel: "x", YLabel: "f(x)", Lines: []Series{curve}}
	if rep == nil {
		return fig
	}
	if len(rep.Trajectory) > 0 {
		path := Series{Name: "trajectory", Points: make([]XY, len(rep.Trajectory))}
		for i, s := range rep.Trajectory {
			path.Points[i] = XY{X: s.X, Y: s.Y}
		}
		fig.Scatter = append(fig.Scatter, path)
	}
	fig.Scatter = append(fig.Scatter, Series{
		Name:   "minimum",
		Points: []XY{{X: float64(rep.State.X), Y: float64(rep.State.Y)}},
	})
	return fig
}
