package linefit

import "fmt"

// Point is a 2-D observation.
type Point struct {
	X, Y float64
}

// Line is the model y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

func (l Line) String() string {
	return fmt.Sprintf("y = %gx + %g", l.Slope, l.Intercept)
}

// Snapshot is the line after the iteration with zero-based index Iteration.
type Snapshot struct {
	Iteration int
	Line      Line
}

// History is the ordered list of snapshots of an iterative fit. Iteration
// indices are strictly increasing multiples of the snapshot stride.
type History []Snapshot

// Lines returns the lines of the history in order.
func (h History) Lines() []Line {
	lines := make([]Line, len(h))
	for i, s := range h {
		lines[i] = s.Line
	}
	return lines
}
