// Package dataset reads point sets stored as a count header followed by one
// "x,y" pair per line:
//
//	3
//	0,1.2
//	1,2.9
//	2,5.1
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"

	"github.com/btracey/descent/common"
	"github.com/btracey/descent/linefit"
)

var (
	// ErrNoPoints is returned when the input holds no points.
	ErrNoPoints = fmt.Errorf("dataset: %w: no points", common.ErrInsufficientData)

	// ErrMalformed is returned for a header or line that cannot be parsed.
	ErrMalformed = errors.New("dataset: malformed input")
)

// maxPrealloc bounds the capacity reserved from the header count, which is
// not trusted until the points are read.
const maxPrealloc = 1 << 16

// Load reads the point set stored in the named file.
func Load(path string) ([]linefit.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	points, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return points, nil
}

// Read parses a point set. Blank lines are skipped. The header count must
// match the number of points that follow.
func Read(r io.Reader) ([]linefit.Point, error) {
	sc := bufio.NewScanner(r)
	var (
		lineNo   int
		declared = -1
		points   []linefit.Point
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if declared < 0 {
			n, err := cast.ToIntE(line)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: line %d: bad point count %q", ErrMalformed, lineNo, line)
			}
			declared = n
			points = make([]linefit.Point, 0, min(n, maxPrealloc))
			continue
		}
		p, err := parsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if len(points) != declared {
		return nil, fmt.Errorf("%w: header declares %d points, found %d", ErrMalformed, declared, len(points))
	}
	return points, nil
}

func parsePoint(line string) (linefit.Point, error) {
	xs, ys, ok := strings.Cut(line, ",")
	if !ok {
		return linefit.Point{}, fmt.Errorf("want x,y, got %q", line)
	}
	x, err := cast.ToFloat64E(strings.TrimSpace(xs))
	if err != nil {
		return linefit.Point{}, fmt.Errorf("bad x %q", xs)
	}
	y, err := cast.ToFloat64E(strings.TrimSpace(ys))
	if err != nil {
		return linefit.Point{}, fmt.Errorf("bad y %q", ys)
	}
	return linefit.Point{X: x, Y: y}, nil
}

// Write stores points in the format read by Read.
func Write(w io.Writer, points []linefit.Point) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(points))
	for _, p := range points {
		fmt.Fprintf(bw, "%g,%g\n", p.X, p.Y)
	}
	return bw.Flush()
}
