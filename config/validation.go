package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/btracey/descent/logger"
)

// validate checks the loaded configuration. minimize.alpha is deliberately
// left unchecked, any step is accepted.
func validate(c *Config) error {
	if _, err := logger.ParseLevel(c.App.LogLevel); err != nil {
		return fmt.Errorf("app.log_level: %w", err)
	}
	if err := c.Regression.validate(); err != nil {
		return err
	}
	if err := c.Minimize.validate(); err != nil {
		return err
	}
	if err := c.Plot.validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Data.Path) == "" {
		return fmt.Errorf("data.path cannot be empty")
	}
	return nil
}

func (r *RegressionConfig) validate() error {
	if !(r.LearningRate > 0) || math.IsInf(r.LearningRate, 1) {
		return fmt.Errorf("regression.learning_rate must be > 0, got %g", r.LearningRate)
	}
	if r.Iterations < 0 {
		return fmt.Errorf("regression.iterations must be >= 0, got %d", r.Iterations)
	}
	if r.SnapshotStride <= 0 {
		return fmt.Errorf("regression.snapshot_stride must be > 0, got %d", r.SnapshotStride)
	}
	return nil
}

func (m *MinimizeConfig) validate() error {
	if m.Iterations < 0 {
		return fmt.Errorf("minimize.iterations must be >= 0, got %d", m.Iterations)
	}
	if m.SnapshotStride < 0 {
		return fmt.Errorf("minimize.snapshot_stride must be >= 0, got %d", m.SnapshotStride)
	}
	if len(m.Domain) != 2 || !(m.Domain[0] < m.Domain[1]) {
		return fmt.Errorf("minimize.domain must be [lo, hi] with lo < hi, got %v", m.Domain)
	}
	if m.Samples < 2 {
		return fmt.Errorf("minimize.samples must be >= 2, got %d", m.Samples)
	}
	return nil
}

func (p *PlotConfig) validate() error {
	for i, b := range p.Backends {
		b = strings.ToLower(strings.TrimSpace(b))
		switch b {
		case BackendGnuplot, BackendHTML, BackendNone:
			p.Backends[i] = b
		default:
			return fmt.Errorf("plot.backends: unknown backend %q", b)
		}
	}
	return nil
}
