// Package linefit fits a straight line y = Slope*x + Intercept to a set of
// points.
//
// Two fitters are provided. LeastSquares solves the normal equations in
// closed form. GradientDescent minimizes the mean squared error by batch
// gradient descent for a fixed number of iterations, recording the line
// every Stride iterations so the path of the fit can be drawn.
//
// Fitters never modify the points they are given, and every call to Fit
// starts from scratch, so repeated calls on the same input give the same
// line.
package linefit
