package univariate

type quadratic struct {
	b float64
	c float64
}

func (q quadratic) Obj(x float64) float64 {
	return (x-q.b)*(x-q.b) + q.c
}

func (q quadratic) Grad(x float64) float64 {
	return 2 * (x - q.b)
}

func (q quadratic) ObjGrad(x float64) (float64, float64) {
	return q.Obj(x), q.Grad(x)
}

func (q quadratic) OptVal() float64 {
	return q.c
}

func (q quadratic) OptLoc() float64 {
	return q.b
}
