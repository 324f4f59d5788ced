// Package menu asks the user which minimizer parameter to override.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
)

// Params are the minimizer parameters the menu can change.
type Params struct {
	X0         float64
	Alpha      float64
	Iterations int
}

// Choices offered by Prompt.
const (
	ChoiceX0         = "1"
	ChoiceAlpha      = "2"
	ChoiceIterations = "3"
)

// Prompt offers to change one of the parameters. Any choice other than the
// three listed keeps p unchanged, as does an end of input. A value that
// cannot be parsed leaves p unchanged and is reported as an error.
func Prompt(in io.Reader, out io.Writer, p *Params) error {
	r := bufio.NewReader(in)
	fmt.Fprint(out, "CHOICE:\n\n")
	fmt.Fprintf(out, "%s : change the starting point x0 (%g)\n", ChoiceX0, p.X0)
	fmt.Fprintf(out, "%s : change the step alpha (%g)\n", ChoiceAlpha, p.Alpha)
	fmt.Fprintf(out, "%s : change the iteration count (%d)\n", ChoiceIterations, p.Iterations)
	fmt.Fprint(out, "other : keep the defaults\n\nEnter your choice\n")

	choice, err := readField(r)
	if err != nil {
		return err
	}
	switch choice {
	case ChoiceX0:
		fmt.Fprintln(out, "Enter the starting point x0")
		return readValue(r, func(s string) error {
			v, err := cast.ToFloat64E(s)
			if err == nil {
				p.X0 = v
			}
			return err
		})
	case ChoiceAlpha:
		fmt.Fprintln(out, "Enter the step alpha")
		return readValue(r, func(s string) error {
			v, err := cast.ToFloat64E(s)
			if err == nil {
				p.Alpha = v
			}
			return err
		})
	case ChoiceIterations:
		fmt.Fprintln(out, "Enter the iteration count")
		return readValue(r, func(s string) error {
			v, err := cast.ToIntE(s)
			if err == nil && v < 0 {
				err = fmt.Errorf("iteration count must be >= 0, got %d", v)
			}
			if err == nil {
				p.Iterations = v
			}
			return err
		})
	}
	return nil
}

func readValue(r *bufio.Reader, set func(string) error) error {
	s, err := readField(r)
	if err != nil || s == "" {
		return err
	}
	if err := set(s); err != nil {
		return fmt.Errorf("menu: invalid value %q: %w", s, err)
	}
	return nil
}

// readField returns the next non-empty line, trimmed. End of input yields
// an empty field.
func readField(r *bufio.Reader) (string, error) {
	for {
		line, err := r.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("menu: %w", err)
		}
	}
}
