// Package config loads the settings of the regression and minimization
// programs from a YAML file.
package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "DESCENT_CONFIG"

type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Data       DataConfig       `mapstructure:"data"`
	Regression RegressionConfig `mapstructure:"regression"`
	Minimize   MinimizeConfig   `mapstructure:"minimize"`
	Plot       PlotConfig       `mapstructure:"plot"`
}

type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
	// Trace prints the iteration table of every descent to stdout.
	Trace bool `mapstructure:"trace"`
}

type DataConfig struct {
	Path string `mapstructure:"path"`
}

type RegressionConfig struct {
	LearningRate   float64 `mapstructure:"learning_rate"`
	Iterations     int     `mapstructure:"iterations"`
	SnapshotStride int     `mapstructure:"snapshot_stride"`
}

type MinimizeConfig struct {
	X0             float64   `mapstructure:"x0"`
	Alpha          float64   `mapstructure:"alpha"`
	Iterations     int       `mapstructure:"iterations"`
	SnapshotStride int       `mapstructure:"snapshot_stride"`
	Domain         []float64 `mapstructure:"domain"`
	Samples        int       `mapstructure:"samples"`
	// Interactive asks for parameter overrides on stdin before the run.
	Interactive bool `mapstructure:"interactive"`
}

type PlotConfig struct {
	Backends []string `mapstructure:"backends"`
	Gnuplot  string   `mapstructure:"gnuplot"`
	Dir      string   `mapstructure:"dir"`
}

// Plot backends.
const (
	BackendGnuplot = "gnuplot"
	BackendHTML    = "html"
	BackendNone    = "none"
)

// Load reads the YAML file at path over the defaults. An empty path yields
// the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file failed (%s): %w", path, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic("config: invalid defaults: " + err.Error())
	}
	return cfg
}
