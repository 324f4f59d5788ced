package common

import (
	"time"

	"github.com/btracey/descent/write"
)

// CommonSettings is a set of options available to all optimizers
type CommonSettings struct {
	// MaximumIterations is the exact number of major iterations performed.
	// A negative value removes the limit, leaving termination to the optimizer
	MaximumIterations int
	*write.WriteSettings
}

// DefaultCommonSettings returns the default settings for the common structure
func DefaultCommonSettings() *CommonSettings {
	return &CommonSettings{
		MaximumIterations: 0,
		WriteSettings:     write.DefaultWriteSettings(),
	}
}

// CommonResult is a list of results from the common structure
type CommonResult struct {
	Iterations          int           // Total number of iterations taken by the optimizer
	FunctionEvaluations int           // Total number of function evaluations taken by the optimizer
	Runtime             time.Duration // Total runtime elapsed during the optimization
	Status              Status        // How did the optimizer end
}

// Common provides routines for controlling the settings provided by common.
type Common struct {
	iter      int
	funEvals  int
	startTime time.Time

	settings *CommonSettings
	fun      interface{}

	*write.Display
}

// NewCommon creates a new Common structure, and adds itself to the display
func NewCommon() *Common {
	c := &Common{
		Display: write.NewDisplay(),
	}
	c.AddDataAdder(c)
	return c
}

// Init resets common at the start of the optimization. The objective function
// is given the chance to add columns to the display if it is a write.DataAdder.
// nFunEvals is the number of evaluations spent computing the initial location.
func (c *Common) Init(settings *CommonSettings, objectiveFunction interface{}, nFunEvals int) error {
	c.iter = 0
	c.funEvals = nFunEvals
	c.startTime = time.Now()

	c.settings = settings
	c.fun = objectiveFunction

	return c.Display.Init(c.settings.WriteSettings)
}

// AppendWriteData adds the components of common to the display structure
func (c *Common) AppendWriteData(d []*write.Value) []*write.Value {
	d = append(d, &write.Value{Heading: "Iter", Value: c.iter})
	d = append(d, &write.Value{Heading: "FnEval", Value: c.funEvals})
	if adder, ok := c.fun.(write.DataAdder); ok {
		d = adder.AppendWriteData(d)
	}
	return d
}

// Note: These have names that are different because we want optimizers
// to specifically implement all of them. If it has the name Status(), then
// an optimizer will implement by embedding common

// Status reports IterationLimit once the configured number of iterations
// has been performed.
func (c *Common) Status() Status {
	if c.settings.MaximumIterations > -1 && c.iter >= c.settings.MaximumIterations {
		return IterationLimit
	}
	return Continue
}

// Result returns the results from the common structure
func (c *Common) Result(status Status) *CommonResult {
	return &CommonResult{
		Iterations:          c.iter,
		FunctionEvaluations: c.funEvals,
		Runtime:             time.Since(c.startTime),
		Status:              status,
	}
}

// Iter returns the number of iterations performed so far.
func (c *Common) Iter() int {
	return c.iter
}

// Iterate performs an iteration of the common structure, incrementing
// the iteration, appending the number of function evaluations, and
// writing to the writers
func (c *Common) Iterate(nFunEvals int) error {
	c.iter++
	c.funEvals += nFunEvals
	return c.Display.Iterate(c.iter)
}
