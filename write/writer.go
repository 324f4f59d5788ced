package write

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteSettings controls where iteration progress is written.
type WriteSettings struct {
	DisplayWriters []Writer // Where should the display be written. Nil disables all display
	Stride         int      // Displayer writers print one row every Stride iterations
}

// DefaultWriteSettings returns settings that write nothing.
func DefaultWriteSettings() *WriteSettings {
	return &WriteSettings{
		Stride: defaultStride,
	}
}

type Type int

const (
	// Logger is a writer intended to save details of the optimization run
	// for future postprocessing. The data is saved as a csv and a row is
	// written at every iteration of the optimizer
	Logger Type = iota

	// Displayer is a writer intended for human monitoring of the optimization.
	// Rows are written every Stride iterations and columns are aligned
	Displayer
)

type Writer struct {
	io.Writer
	T Type
}

type Value struct {
	Value   interface{}
	Heading string
}

// DataAdder contributes columns to the display.
type DataAdder interface {
	AppendWriteData([]*Value) []*Value
}

const (
	headingInterval = 30
	defaultStride   = 100
)

// Display writes the columns collected from its DataAdders to a set of
// writers according to their Type. Headings are assumed not to change
// after Init.
type Display struct {
	displayValues []*Value

	headings   []string
	values     []string
	maxLengths []int

	stride       int
	rowsSinceHdr int

	existsDisplayer bool
	existsLogger    bool

	writers []Writer

	dataAdders []DataAdder
}

func NewDisplay() *Display {
	return &Display{}
}

// AddDataAdder adds a DataAdder to the list of values to be printed/logged.
// This should only be called during initialization
func (d *Display) AddDataAdder(dataAdders ...DataAdder) {
	d.dataAdders = append(d.dataAdders, dataAdders...)
}

// accumulateValues gets all of the values from the data adders and stores
// them in display
func (d *Display) accumulateValues() {
	d.displayValues = d.displayValues[:0]
	for _, add := range d.dataAdders {
		d.displayValues = add.AppendWriteData(d.displayValues)
	}
}

// Init resets the display for a new run and writes the csv headers to the
// Logger writers.
func (d *Display) Init(w *WriteSettings) error {
	d.writers = nil
	d.existsDisplayer = false
	d.existsLogger = false
	d.rowsSinceHdr = headingInterval
	d.stride = defaultStride
	if w == nil {
		return nil
	}
	d.writers = w.DisplayWriters
	if w.Stride > 0 {
		d.stride = w.Stride
	}
	if len(d.writers) == 0 {
		return nil
	}

	d.accumulateValues()
	d.headings = d.headings[:0]
	for _, dat := range d.displayValues {
		d.headings = append(d.headings, dat.Heading)
	}

	for _, w := range d.writers {
		switch w.T {
		default:
			return fmt.Errorf("write: unknown writer type %d", w.T)
		case Logger:
			d.existsLogger = true
			if err := writeCSV(w, d.headings); err != nil {
				return err
			}
		case Displayer:
			d.existsDisplayer = true
		}
	}
	return nil
}

// Iterate is the write action performed at every iteration. iter is the
// number of iterations completed so far.
func (d *Display) Iterate(iter int) error {
	if len(d.writers) == 0 {
		return nil
	}
	displayRow := d.existsDisplayer && iter%d.stride == 0
	displayHeadings := displayRow && d.rowsSinceHdr >= headingInterval
	if !d.existsLogger && !displayRow {
		return nil
	}

	d.accumulateValues()
	d.values = d.values[:0]
	for _, v := range d.displayValues {
		d.values = append(d.values, valueToString(v.Value))
	}

	if displayRow {
		d.maxLengths = d.maxLengths[:0]
		for i, v := range d.values {
			l := len(v)
			if len(d.headings[i]) > l {
				l = len(d.headings[i])
			}
			d.maxLengths = append(d.maxLengths, l)
		}
		d.rowsSinceHdr++
		if displayHeadings {
			d.rowsSinceHdr = 0
		}
	}

	for _, w := range d.writers {
		switch w.T {
		case Logger:
			if err := writeCSV(w, d.values); err != nil {
				return err
			}
		case Displayer:
			if displayHeadings {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
				if err := writeAlignedStrings(w, d.headings, d.maxLengths); err != nil {
					return err
				}
			}
			if displayRow {
				if err := writeAlignedStrings(w, d.values, d.maxLengths); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeAlignedStrings(w io.Writer, strs []string, maxLengths []int) error {
	var b strings.Builder
	for i, str := range strs {
		b.WriteString(str)
		b.WriteString(strings.Repeat(" ", maxLengths[i]-len(str)))
		b.WriteString("\t")
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeCSV(w io.Writer, values []string) error {
	_, err := io.WriteString(w, strings.Join(values, ",")+"\n")
	return err
}

func valueToString(v interface{}) string {
	switch t := v.(type) {
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'e', 6, 64)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", v)
	}
}
