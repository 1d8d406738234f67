package utils

import "math"

// NewtonSolve searches for a root of f starting at x0. The derivative is the
// forward difference (f(x+h)-f(x))/h. It succeeds once |f(x)| <= precision and
// gives up, returning ok == false, on a zero derivative or after
// maxIterations updates.
func NewtonSolve(f func(x float64) float64, x0, h, precision float64, maxIterations int) (x float64, ok bool) {
	if f == nil {
		configPanic("f", nil, "must not be nil")
	}
	if !(h > 0) {
		configPanic("h", h, "must be > 0")
	}
	if !(precision > 0) {
		configPanic("precision", precision, "must be > 0")
	}
	if maxIterations < 1 {
		configPanic("maxIterations", maxIterations, "must be 1 or more")
	}
	var (
		fx = f(x0)
	)
	x = x0
	for i := 1; math.Abs(fx) > precision && i <= maxIterations; i++ {
		gradient := (f(x+h) - fx) / h
		if gradient == 0 {
			return x, false
		}
		x -= fx / gradient
		fx = f(x)
	}
	if math.Abs(fx) <= precision {
		return x, true
	}
	return x, false
}
