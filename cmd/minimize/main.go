// Command minimize looks for a minimum of f(x) = (x²cos x − x)/10 by
// gradient descent and plots it on the curve.
package main

import (
	"context"
	"os"

	"github.com/btracey/descent/app"
	"github.com/btracey/descent/logger"
)

func main() {
	cfg, err := app.Setup("minimize", os.Args[1:], os.Stderr)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	if err := app.RunMinimize(context.Background(), cfg, os.Stdin, os.Stdout, app.NewSink(cfg.Plot)); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
