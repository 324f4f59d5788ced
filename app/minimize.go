package app

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/btracey/descent/config"
	"github.com/btracey/descent/logger"
	"github.com/btracey/descent/menu"
	"github.com/btracey/descent/minimize"
	"github.com/btracey/descent/plot"
)

// RunMinimize searches for a minimum of the curve f(x) = (x²cos x − x)/10.
// When the configuration asks for it, the user is first offered to change
// one of the parameters through in and out.
func RunMinimize(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, sink plot.Sink) error {
	params := menu.Params{
		X0:         cfg.Minimize.X0,
		Alpha:      cfg.Minimize.Alpha,
		Iterations: cfg.Minimize.Iterations,
	}
	if cfg.Minimize.Interactive {
		if err := menu.Prompt(in, out, &params); err != nil {
			logger.Warnf("keeping default parameters: %v", err)
		}
	}

	m := minimize.Default()
	m.Stride = cfg.Minimize.SnapshotStride
	m.Write = traceSettings(cfg, 100)
	rep, err := m.Minimize(params.X0, params.Iterations, params.Alpha)
	if err != nil {
		return fmt.Errorf("minimization failed: %w", err)
	}
	if math.IsNaN(rep.Result.Loc) || math.IsInf(rep.Result.Loc, 0) {
		logger.Warnf("minimization diverged from x0 = %g; lower minimize.alpha", params.X0)
	}
	if err := writeLine(out, rep.String()); err != nil {
		return err
	}
	logger.Infof("minimization finished: %d iterations, %d evaluations in %v",
		rep.Result.Iterations, rep.Result.FunctionEvaluations, rep.Result.Runtime)

	domain := [2]float64{cfg.Minimize.Domain[0], cfg.Minimize.Domain[1]}
	render(ctx, sink, plot.CurveFigure("Minimum of the curve", minimize.Curve, domain, cfg.Minimize.Samples, rep))
	return nil
}
