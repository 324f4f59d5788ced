// Command linefit fits a line to the points of a file by least squares and
// by gradient descent, and plots both fits.
package main

import (
	"context"
	"os"

	"github.com/btracey/descent/app"
	"github.com/btracey/descent/logger"
)

func main() {
	cfg, err := app.Setup("linefit", os.Args[1:], os.Stderr)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	if err := app.RunRegression(context.Background(), cfg, os.Stdout, app.NewSink(cfg.Plot)); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
