package multivariate

import (
	"errors"
	"fmt"
	"math"

	"github.com/btracey/descent/common"
)

type GradOptimizer interface {
	Init(f ObjGrader, initLoc []float64, initObj float64, initGrad []float64) error
	Status() common.Status
	// loc and grad put in place
	Iterate(loc, grad []float64) (obj float64, nFunEvals int, err error)
}

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

func (g *GradWrapper) Init(settings *Settings, fun ObjGrader, initLoc []float64) error {
	initObj := settings.InitialObjective
	initGrad := settings.InitialGradient
	var nFunEvals int
	if math.IsNaN(initObj) || len(initGrad) != len(initLoc) {
		initGrad = make([]float64, len(initLoc))
		initObj = fun.ObjGrad(initLoc, initGrad)
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

func (g *GradWrapper) Iterate(loc, grad []float64) (obj float64, err error) {
	var nFunEvals int
	obj, nFunEvals, err = g.optimizer.Iterate(loc, grad)
	if err != nil {
		return obj, errors.New("error iterating optimizer: " + err.Error())
	}
	if g.recorder != nil {
		g.recorder(g.helper.Iter(), loc, obj)
	}
	if err := g.helper.Iterate(loc, obj, grad, nFunEvals); err != nil {
		return obj, fmt.Errorf("error writing progress: %w", err)
	}
	return obj, nil
}

func (g *GradWrapper) Result(status common.Status) *Result {
	return g.helper.Result(status)
}

// OptimizeGrad runs the optimizer from initLoc until the iteration limit in
// settings is reached or the optimizer reports a status other than Continue.
// initLoc is not modified.
func OptimizeGrad(f ObjGrader, initLoc []float64, settings *Settings, optimizer GradOptimizer) (*Result, error) {
	if optimizer == nil {
		return nil, errors.New("no optimizer provided")
	}
	if settings == nil {
		settings = DefaultSettings()
	}
	if settings.MaximumIterations < 0 {
		return nil, fmt.Errorf("%w: iterations must be >= 0, got %d", common.ErrInvalidParameter, settings.MaximumIterations)
	}
	if initLoc == nil {
		return nil, errors.New("nil init loc")
	}
	if f == nil {
		return nil, errors.New("objective function is nil")
	}

	wrapper := NewGradWrapper(optimizer)

	err := wrapper.Init(settings, f, initLoc)
	if err != nil {
		return nil, errors.New("error initializing: " + err.Error())
	}
	loc := make([]float64, len(initLoc))
	grad := make([]float64, len(initLoc))

	var status common.Status
	for {
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		_, err := wrapper.Iterate(loc, grad)
		if err != nil {
			return nil, err
		}
	}
	return wrapper.Result(status), nil
}
