package plot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/btracey/descent/common"
)

// Gnuplot pipes figures to a gnuplot process. Each figure opens its own
// persistent window.
type Gnuplot struct {
	// Command is the gnuplot executable, "gnuplot" if empty.
	Command string
	// Args are passed to Command, "-persistent" if nil.
	Args []string
}

func (g Gnuplot) Render(ctx context.Context, fig Figure) error {
	command := g.Command
	if command == "" {
		command = "gnuplot"
	}
	args := g.Args
	if args == nil {
		args = []string{"-persistent"}
	}
	path, err := exec.LookPath(command)
	if err != nil {
		return fmt.Errorf("plot: %w: %v", common.ErrResourceUnavailable, err)
	}

	var script bytes.Buffer
	if err := WriteScript(&script, fig); err != nil {
		return err
	}
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = &script
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		return fmt.Errorf("plot: %w: %s: %v %s", common.ErrResourceUnavailable, command, err, msg)
	}
	return nil
}

// WriteScript writes the gnuplot commands drawing fig, with the data of
// every series inlined.
func WriteScript(w io.Writer, fig Figure) error {
	var b strings.Builder
	fmt.Fprintf(&b, "set title %s\n", quote(fig.Title))
	if fig.XLabel != "" {
		fmt.Fprintf(&b, "set xlabel %s\n", quote(fig.XLabel))
	}
	if fig.YLabel != "" {
		fmt.Fprintf(&b, "set ylabel %s\n", quote(fig.YLabel))
	}
	b.WriteString("set grid\n")

	var plots []string
	for _, s := range fig.Scatter {
		plots = append(plots, fmt.Sprintf("'-' using 1:2 with points pointtype 7 title %s", quote(s.Name)))
	}
	for _, s := range fig.Lines {
		plots = append(plots, fmt.Sprintf("'-' using 1:2 with lines title %s", quote(s.Name)))
	}
	if len(plots) == 0 {
		_, err := io.WriteString(w, b.String())
		return err
	}
	b.WriteString("plot ")
	b.WriteString(strings.Join(plots, ", \\\n     "))
	b.WriteString("\n")

	for _, series := range [][]Series{fig.Scatter, fig.Lines} {
		for _, s := range series {
			for _, p := range s.Points {
				fmt.Fprintf(&b, "%g %g\n", p.X, p.Y)
			}
			b.WriteString("e\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
