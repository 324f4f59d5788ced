package plot

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btracey/descent/common"
	"github.com/btracey/descent/linefit"
	"github.com/btracey/descent/minimize"
)

var testPoints = []linefit.Point{{X: 0, Y: 1}, {X: 1, Y: 3.1}, {X: 2, Y: 4.9}, {X: 4, Y: 9}}

func TestFitFigure(t *testing.T) {
	rep := &linefit.Report{
		Line: linefit.Line{Slope: 2, Intercept: 1},
		History: linefit.History{
			{Iteration: 0, Line: linefit.Line{Slope: 0.1}},
			{Iteration: 500, Line: linefit.Line{Slope: 1.9, Intercept: 0.8}},
		},
	}
	fig := FitFigure("Gradient descent", testPoints, rep)

	require.Len(t, fig.Scatter, 1)
	assert.Len(t, fig.Scatter[0].Points, len(testPoints))
	require.Len(t, fig.Lines, 3)
	assert.Equal(t, "Iter 0", fig.Lines[0].Name)
	assert.Equal(t, "Iter 500", fig.Lines[1].Name)
	assert.Equal(t, "Final Regression Line", fig.Lines[2].Name)
	assert.Equal(t, []XY{{X: 0, Y: 1}, {X: 4, Y: 9}}, fig.Lines[2].Points)

	fig = FitFigure("Least squares", testPoints, &linefit.Report{Line: linefit.Line{Slope: 2, Intercept: 1}})
	require.Len(t, fig.Lines, 1)
	assert.Equal(t, "Regression Line", fig.Lines[0].Name)
}

func TestCurveFigure(t *testing.T) {
	rep := &minimize.Report{
		State:      minimize.State{X: 3.7, Y: -1.5},
		Trajectory: []minimize.Step{{Iteration: 0, X: 5.8, Y: 2}},
	}
	fig := CurveFigure("Minimum", minimize.Curve, minimize.CurveDomain, 14, rep)

	require.Len(t, fig.Lines, 1)
	curve := fig.Lines[0].Points
	require.Len(t, curve, 14)
	assert.Equal(t, -6.0, curve[0].X)
	assert.InDelta(t, 7.0, curve[13].X, 1e-12)
	assert.Equal(t, minimize.Curve(-6), curve[0].Y)

	require.Len(t, fig.Scatter, 2)
	assert.Equal(t, "trajectory", fig.Scatter[0].Name)
	assert.Equal(t, "minimum", fig.Scatter[1].Name)
	assert.InDelta(t, 3.7, fig.Scatter[1].Points[0].X, 1e-6)
}

func TestWriteScript(t *testing.T) {
	fig := Figure{
		Title:   "It's a fit",
		XLabel:  "X",
		Scatter: []Series{{Name: "Data Points", Points: []XY{{1, 2}, {3, 4}}}},
		Lines:   []Series{{Name: "Line", Points: []XY{{0, 0}, {1, 1}}}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteScript(&buf, fig))
	script := buf.String()

	assert.Contains(t, script, "set title 'It''s a fit'\n")
	assert.Contains(t, script, "set xlabel 'X'\n")
	assert.NotContains(t, script, "set ylabel")
	assert.Contains(t, script, "with points pointtype 7 title 'Data Points'")
	assert.Contains(t, script, "with lines title 'Line'")
	assert.True(t, strings.HasSuffix(script, "1 2\n3 4\ne\n0 0\n1 1\ne\n"))
}

func TestGnuplotUnavailable(t *testing.T) {
	g := Gnuplot{Command: filepath.Join(t.TempDir(), "no-such-gnuplot")}
	err := g.Render(context.Background(), Figure{Title: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrResourceUnavailable))
}

func TestHTML(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	rep, err := linefit.LeastSquares{}.Fit(testPoints)
	require.NoError(t, err)

	fig := FitFigure("Linear Regression - Least Squares", testPoints, rep)
	require.NoError(t, HTML{Dir: dir}.Render(context.Background(), fig))

	page, err := os.ReadFile(filepath.Join(dir, "linear-regression-least-squares.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "Linear Regression - Least Squares")
	assert.Contains(t, string(page), "Data Points")
	assert.Contains(t, string(page), "Regression Line")
}

func TestHTMLUnavailable(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	err := HTML{Dir: file}.Render(context.Background(), Figure{Title: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrResourceUnavailable))
}

type failing struct{ err error }

func (f failing) Render(context.Context, Figure) error { return f.err }

func TestMulti(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	err := Multi{failing{errA}, Nop{}, failing{errB}}.Render(context.Background(), Figure{})
	assert.True(t, errors.Is(err, errA))
	assert.True(t, errors.Is(err, errB))

	assert.NoError(t, Multi{Nop{}}.Render(context.Background(), Figure{}))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "minimum-of-the-curve", FileName("  Minimum of the curve! "))
	assert.Equal(t, "régression-linéaire", FileName("Régression Linéaire"))
	assert.Equal(t, "figure", FileName("--"))
}
