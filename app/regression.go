package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/btracey/descent/common"
	"github.com/btracey/descent/config"
	"github.com/btracey/descent/dataset"
	"github.com/btracey/descent/linefit"
	"github.com/btracey/descent/logger"
	"github.com/btracey/descent/plot"
)

// RunRegression fits the configured point set by least squares and by
// gradient descent. A missing, unreadable or empty data file is returned as
// an error before anything is fitted. Points sharing a single x have no
// least-squares line; that is logged and gradient descent still runs.
func RunRegression(ctx context.Context, cfg *config.Config, out io.Writer, sink plot.Sink) error {
	points, err := dataset.Load(cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("no points read: %w", err)
	}
	logger.Infof("loaded %d points from %s", len(points), cfg.Data.Path)

	fitters := []struct {
		heading string
		title   string
		fitter  linefit.Fitter
	}{
		{
			heading: "=== Least Squares ===",
			title:   "Linear Regression - Least Squares",
			fitter:  linefit.LeastSquares{},
		},
		{
			heading: "=== Gradient Descent ===",
			title:   "Linear Regression - Gradient Descent",
			fitter: linefit.GradientDescent{
				LearningRate: cfg.Regression.LearningRate,
				Iterations:   cfg.Regression.Iterations,
				Stride:       cfg.Regression.SnapshotStride,
				Write:        traceSettings(cfg, cfg.Regression.SnapshotStride),
			},
		},
	}
	for _, f := range fitters {
		if err := writeLine(out, f.heading); err != nil {
			return err
		}
		rep, err := f.fitter.Fit(points)
		if errors.Is(err, common.ErrDegenerateInput) {
			// The other fitters may still produce a line.
			logger.Errorf("%s: %v", f.title, err)
			if err := writeLine(out, "No regression line: "+err.Error()); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", f.title, err)
		}
		if !rep.Finite() {
			logger.Warnf("%s diverged: %v; lower regression.learning_rate", rep.Method, rep.Line)
		}
		if err := writeLine(out, "The regression line is "+rep.Line.String()); err != nil {
			return err
		}
		logger.Infof("%v", rep)
		render(ctx, sink, plot.FitFigure(f.title, points, rep))
	}
	return nil
}
