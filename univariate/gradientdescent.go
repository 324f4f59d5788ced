package univariate

import "github.com/btracey/descent/common"

// GradientDescent steps against the derivative with a fixed step size:
//  x_{k+1} = x_k - StepSize * f'(x_k)
// StepSize is not checked; a step that is too large for the curvature of the
// objective makes the iterates oscillate or diverge.
type GradientDescent struct {
	StepSize float64

	f    ObjGrader
	loc  float64
	grad float64
}

func (g *GradientDescent) Init(f ObjGrader, initLoc, initObj, initGrad float64) error {
	g.f = f
	g.loc = initLoc
	g.grad = initGrad
	return nil
}

func (g *GradientDescent) Iterate() (loc, obj, grad float64, nFunEvals int, err error) {
	g.loc -= g.StepSize * g.grad
	obj, g.grad = g.f.ObjGrad(g.loc)
	return g.loc, obj, g.grad, 1, nil
}

func (g *GradientDescent) Status() common.Status { return common.Continue }
