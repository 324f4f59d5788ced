package univariate

import (
	"math"

	"github.com/btracey/descent/common"
	"github.com/btracey/descent/write"
)

type ObjGrader interface {
	ObjGrad(x float64) (f float64, g float64)
}

// Func adapts a function and its derivative to ObjGrader.
type Func struct {
	F     func(x float64) float64
	Deriv func(x float64) float64
}

func (fn Func) Obj(x float64) float64 { return fn.F(x) }

func (fn Func) Grad(x float64) float64 { return fn.Deriv(x) }

func (fn Func) ObjGrad(x float64) (f, g float64) {
	return fn.F(x), fn.Deriv(x)
}

// Recorder is called after every iteration with the zero-based index of the
// iteration just taken and the resulting location and objective value.
type Recorder func(iter int, loc, obj float64)

// Settings is a structure containing settings for univariate
// optimizers. Some settings may not apply to certain algorithms
type Settings struct {
	*common.CommonSettings
	InitialObjective float64 // The value of the objective function at the initial location
	InitialGradient  float64 // The value of the gradient at the initial location
	Recorder         Recorder
}

// DefaultSettings returns the default settings for univariate optimizers.
// The default run performs no iterations; set MaximumIterations for the
// number of steps to take.
func DefaultSettings() *Settings {
	return &Settings{
		CommonSettings:   common.DefaultCommonSettings(),
		InitialObjective: math.NaN(),
		InitialGradient:  math.NaN(),
	}
}

// Helper is a helper struct for optimizers. Not intended for use by
// callers of optimization functions, but exported to aid others who are building
// optimization algorithms
//
// Optimization implementers should call Init() at the beginning of an optimization run
// and should call Status() to check the iteration limit. At the end of every iteration
// should call Iterate()
type Helper struct {
	*common.Common

	objCurr  float64
	gradCurr float64
	locCurr  float64
}

// NewHelper creates a new univariate helper and adds itself to the data adders
func NewHelper() *Helper {
	u := &Helper{
		Common: common.NewCommon(),
	}
	u.AddDataAdder(u)
	return u
}

func (u *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Loc", Value: u.locCurr})
	v = append(v, &write.Value{Heading: "Obj", Value: u.objCurr})
	v = append(v, &write.Value{Heading: "Grad", Value: u.gradCurr})
	return v
}

func (u *Helper) Init(s *Settings, objectiveFunction interface{}, initLoc, initObj, initGrad float64, nFunEvals int) error {
	u.locCurr = initLoc
	u.objCurr = initObj
	u.gradCurr = initGrad
	return u.Common.Init(s.CommonSettings, objectiveFunction, nFunEvals)
}

func (u *Helper) Iterate(loc, obj, grad float64, nFunEvals int) error {
	u.locCurr = loc
	u.objCurr = obj
	u.gradCurr = grad
	return u.Common.Iterate(nFunEvals)
}

func (u *Helper) Result(status common.Status) *Result {
	return &Result{
		CommonResult: u.Common.Result(status),
		Obj:          u.objCurr,
		Loc:          u.locCurr,
		Grad:         u.gradCurr,
	}
}

type Result struct {
	*common.CommonResult
	Obj  float64 // Value of the objective function at the final location
	Loc  float64 // Final location
	Grad float64 // Derivative at the final location
}
