package multivariate

import (
	"gonum.org/v1/gonum/floats"

	"github.com/btracey/descent/common"
)

// GradientDescent is batch gradient descent with a fixed step size. Every
// iteration moves each coordinate against its component of the gradient
// evaluated at the previous location.
type GradientDescent struct {
	StepSize float64

	f    ObjGrader
	loc  []float64
	grad []float64
}

func (g *GradientDescent) Init(f ObjGrader, initLoc []float64, initObj float64, initGrad []float64) error {
	g.f = f
	g.loc = resize(g.loc, len(initLoc))
	copy(g.loc, initLoc)
	g.grad = resize(g.grad, len(initGrad))
	copy(g.grad, initGrad)
	return nil
}

func (g *GradientDescent) Iterate(loc, grad []float64) (obj float64, nFunEvals int, err error) {
	floats.AddScaled(g.loc, -g.StepSize, g.grad)
	obj = g.f.ObjGrad(g.loc, g.grad)
	copy(loc, g.loc)
	copy(grad, g.grad)
	return obj, 1, nil
}

func (g *GradientDescent) Status() common.Status { return common.Continue }
