package multivariate

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/btracey/descent/common"
	"github.com/btracey/descent/write"
)

// puts gradient in place
type ObjGrader interface {
	ObjGrad(x []float64, g []float64) (f float64)
}

// Recorder is called after every iteration with the zero-based index of the
// iteration just taken. loc must not be retained; it is overwritten by the
// next iteration.
type Recorder func(iter int, loc []float64, obj float64)

// Settings is a structure containing settings for multivariate
// optimizers. Some settings may not apply to certain algorithms
type Settings struct {
	*common.CommonSettings
	InitialObjective float64
	InitialGradient  []float64
	Recorder         Recorder
}

// DefaultSettings returns the default settings for multivariate optimizers.
// The default run performs no iterations; set MaximumIterations for the
// number of steps to take.
func DefaultSettings() *Settings {
	return &Settings{
		CommonSettings:   common.DefaultCommonSettings(),
		InitialObjective: math.NaN(),
		InitialGradient:  nil,
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

	objCurr     float64
	gradCurr    []float64
	locCurr     []float64
	gradNrmCurr float64
}

// NewHelper creates a new multivariate helper and adds itself to the data adders
func NewHelper() *Helper {
	u := &Helper{
		Common: common.NewCommon(),
	}
	u.AddDataAdder(u)
	return u
}

func (u *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Obj", Value: u.objCurr})
	v = append(v, &write.Value{Heading: "Grad", Value: u.gradNrmCurr})
	return v
}

func (u *Helper) Init(s *Settings, objectiveFunction interface{}, initLoc []float64, initObj float64, initGrad []float64, nFunEvals int) error {
	u.locCurr = resize(u.locCurr, len(initLoc))
	copy(u.locCurr, initLoc)
	u.gradCurr = resize(u.gradCurr, len(initGrad))
	copy(u.gradCurr, initGrad)
	u.objCurr = initObj
	u.gradNrmCurr = floats.Norm(initGrad, 2)
	return u.Common.Init(s.CommonSettings, objectiveFunction, nFunEvals)
}

func (u *Helper) Iterate(loc []float64, obj float64, grad []float64, nFunEvals int) error {
	copy(u.locCurr, loc)
	copy(u.gradCurr, grad)
	u.objCurr = obj
	u.gradNrmCurr = floats.Norm(grad, 2)
	return u.Common.Iterate(nFunEvals)
}

func (u *Helper) Result(status common.Status) *Result {
	loc := make([]float64, len(u.locCurr))
	copy(loc, u.locCurr)
	grad := make([]float64, len(u.gradCurr))
	copy(grad, u.gradCurr)
	return &Result{
		CommonResult: u.Common.Result(status),
		Obj:          u.objCurr,
		Loc:          loc,
		Grad:         grad,
		GradNorm:     u.gradNrmCurr,
	}
}

type Result struct {
	*common.CommonResult
	Obj      float64   // Value of the objective function at the final location
	Loc      []float64 // Final location
	Grad     []float64 // Gradient at the final location
	GradNorm float64   // 2-norm of Grad
}

func resize(x []float64, n int) []float64 {
	if cap(x) < n {
		return make([]float64, n)
	}
	return x[:n]
}
