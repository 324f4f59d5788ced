package minimize

import "math"

// Curve is f(x) = (x²·cos(x) − x)/10.
func Curve(x float64) float64 {
	return (x*x*math.Cos(x) - x) / 10
}

// CurveDeriv is the derivative of Curve, (2x·cos(x) − x²·sin(x) − 1)/10.
func CurveDeriv(x float64) float64 {
	return (2*x*math.Cos(x) - x*x*math.Sin(x) - 1) / 10
}

// CurveDomain is the interval over which Curve is usually drawn.
var CurveDomain = [2]float64{-6, 7}
