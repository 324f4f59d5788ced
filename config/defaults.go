package config

import (
	"github.com/spf13/viper"

	"github.com/btracey/descent/linefit"
	"github.com/btracey/descent/minimize"
)

const (
	defaultLogLevel          = "info"
	defaultDataPath          = "mesures1.txt"
	defaultLearningRate      = 0.01
	defaultRegressionIters   = 10000
	defaultRegressionStride  = linefit.DefaultStride
	defaultX0                = minimize.DefaultStart
	defaultAlpha             = minimize.DefaultAlpha
	defaultMinimizeIters     = minimize.DefaultIterations
	defaultMinimizeSamples   = 200
	defaultPlotDir           = "plots"
	defaultGnuplotExecutable = "gnuplot"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.log_level", defaultLogLevel)
	v.SetDefault("app.trace", false)
	v.SetDefault("data.path", defaultDataPath)
	v.SetDefault("regression.learning_rate", defaultLearningRate)
	v.SetDefault("regression.iterations", defaultRegressionIters)
	v.SetDefault("regression.snapshot_stride", defaultRegressionStride)
	v.SetDefault("minimize.x0", defaultX0)
	v.SetDefault("minimize.alpha", defaultAlpha)
	v.SetDefault("minimize.iterations", defaultMinimizeIters)
	v.SetDefault("minimize.snapshot_stride", 0)
	v.SetDefault("minimize.domain", append([]float64(nil), minimize.CurveDomain[:]...))
	v.SetDefault("minimize.samples", defaultMinimizeSamples)
	v.SetDefault("minimize.interactive", false)
	v.SetDefault("plot.backends", []string{BackendGnuplot})
	v.SetDefault("plot.gnuplot", defaultGnuplotExecutable)
	v.SetDefault("plot.dir", defaultPlotDir)
}
