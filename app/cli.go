package app

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/btracey/descent/config"
	"github.com/btracey/descent/logger"
)

// Setup parses the command line of a program, loads the configuration and
// applies its logging settings. The config file is taken from the -config
// flag, then from the DESCENT_CONFIG environment variable.
func Setup(name string, args []string, stderr io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("config", os.Getenv(config.EnvPath), "path of the YAML configuration file")
	data := fs.String("data", "", "point file, overrides data.path")
	interactive := fs.Bool("interactive", false, "ask for parameter overrides before minimizing")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if *data != "" {
		cfg.Data.Path = *data
	}
	if *interactive {
		cfg.Minimize.Interactive = true
	}
	logger.SetOutput(stderr)
	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}
