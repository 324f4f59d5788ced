package univariate

import (
	"errors"
	"fmt"
	"math"

	"github.com/btracey/descent/common"
)

// GradOptimizer represents a gradient-based optimizer
type GradOptimizer interface {
	Init(f ObjGrader, initLoc, initObj, initGrad float64) error
	Status() common.Status
	// The loc, obj and grad are those of the new location
	Iterate() (loc float64, obj float64, grad float64, nFunEvals int, err error)
}

// GradWrapper is a convenience wrapper around a gradient-based algorithm that
// allows more fine-grained control over optimization progress. See OptimizeGrad
// for example usage
type GradWrapper struct {
	optimizer GradOptimizer
	helper    *Helper
	recorder  Recorder
}

func NewGradWrapper(optimizer GradOptimizer) *GradWrapper {
	return &GradWrapper{
		optimizer: optimizer,
		helper:    NewHelper(),
	}
}

func (g *GradWrapper) Init(settings *Settings, fun ObjGrader, initLoc float64) error {
	initObj := settings.InitialObjective
	initGrad := settings.InitialGradient
	var nFunEvals int
	if math.IsNaN(initObj) || math.IsNaN(initGrad) {
		initObj, initGrad = fun.ObjGrad(initLoc)
		nFunEvals = 1
	}
	g.recorder = settings.Recorder

	if err := g.helper.Init(settings, fun, initLoc, initObj, initGrad, nFunEvals); err != nil {
		return err
	}
	return g.optimizer.Init(fun, initLoc, initObj, initGrad)
}

func (g *GradWrapper) Status() common.Status {
	return common.CheckStatus(g.helper, g.optimizer)
}

func (g *GradWrapper) Iterate() (loc, obj, grad float64, err error) {
	var nFunEvals int
	loc, obj, grad, nFunEvals, err = g.optimizer.Iterate()
	if err != nil {
		return loc, obj, grad, errors.New("error iterating optimizer: " + err.Error())
	}
	if g.recorder != nil {
		g.recorder(g.helper.Iter(), loc, obj)
	}
	if err := g.helper.Iterate(loc, obj, grad, nFunEvals); err != nil {
		return loc, obj, grad, fmt.Errorf("error writing progress: %w", err)
	}
	return loc, obj, grad, nil
}

func (g *GradWrapper) Result(status common.Status) *Result {
	return g.helper.Result(status)
}

// OptimizeGrad runs the optimizer from initLoc until the iteration limit in
// settings is reached or the optimizer reports a status other than Continue.
func OptimizeGrad(f ObjGrader, initLoc float64, settings *Settings, optimizer GradOptimizer) (*Result, error) {
	if optimizer == nil {
		return nil, errors.New("no optimizer provided")
	}
	if f == nil {
		return nil, errors.New("objective function is nil")
	}

	if settings == nil {
		settings = DefaultSettings()
	}
	if settings.MaximumIterations < 0 {
		return nil, fmt.Errorf("%w: iterations must be >= 0, got %d", common.ErrInvalidParameter, settings.MaximumIterations)
	}

	wrapper := NewGradWrapper(optimizer)

	err := wrapper.Init(settings, f, initLoc)
	if err != nil {
		return nil, errors.New("error initializing: " + err.Error())
	}

	var status common.Status
	for {
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		_, _, _, err := wrapper.Iterate()
		if err != nil {
			return nil, err
		}
	}
	return wrapper.Result(status), nil
}
