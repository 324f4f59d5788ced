// Package app drives the regression and minimization programs: it loads the
// input, runs the numeric code, prints the results and hands figures to the
// plotting sinks. Numbers are computed before any plotting is attempted, and
// a plotting failure is only a warning.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/btracey/descent/config"
	"github.com/btracey/descent/logger"
	"github.com/btracey/descent/plot"
	"github.com/btracey/descent/write"
)

// NewSink builds the plotting sink selected by cfg.
func NewSink(cfg config.PlotConfig) plot.Sink {
	var sinks plot.Multi
	for _, b := range cfg.Backends {
		switch b {
		case config.BackendGnuplot:
			sinks = append(sinks, plot.Gnuplot{Command: cfg.Gnuplot})
		case config.BackendHTML:
			sinks = append(sinks, plot.HTML{Dir: cfg.Dir})
		}
	}
	if len(sinks) == 0 {
		return plot.Nop{}
	}
	if len(sinks) == 1 {
		return sinks[0]
	}
	return sinks
}

func render(ctx context.Context, sink plot.Sink, fig plot.Figure) {
	if err := sink.Render(ctx, fig); err != nil {
		logger.Warnf("plot %q not rendered: %v", fig.Title, err)
		return
	}
	logger.Debugf("plot %q rendered", fig.Title)
}

// traceSettings returns the iteration display for a run, or nil when
// tracing is off.
func traceSettings(cfg *config.Config, stride int) *write.WriteSettings {
	if !cfg.App.Trace {
		return nil
	}
	return &write.WriteSettings{
		DisplayWriters: []write.Writer{{Writer: os.Stdout, T: write.Displayer}},
		Stride:         stride,
	}
}

func writeLine(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s+"\n"); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
