package interpolate

import (
	"fmt"
	"math"
)

// Func is a scalar function sampled by the spline builders. Any state the
// function needs should be captured in its closure.
type Func func(x float64) float64

// NonPositiveError is returned by NewLog10FuncSpline when the sampled
// function produces a value whose log10 is undefined. It identifies the
// offending sample so the caller can decide whether to abort or refit with
// different parameters.
type NonPositiveError struct {
	Index int     // position of the bad sample in the grid
	X     float64 // the point the function was evaluated at
	Y     float64 // the non-positive value it returned
}

func (err *NonPositiveError) Error() string {
	return fmt.Sprintf("interpolate: f(%g) = %g at sample %d is not "+
		"positive, so its log10 cannot be fit", err.X, err.Y, err.Index)
}

// NewFuncSpline evaluates f at every point of xs and fits a cubic spline
// through the samples. It returns the sampled values alongside the spline.
// Both are owned by the caller afterwards, and the spline comes with its
// own accelerator.
//
// xs must be strictly increasing or strictly decreasing with at least two
// points.
func NewFuncSpline(f Func, xs []float64) ([]float64, *Spline) {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys, NewSpline(xs, ys)
}

// NewLog10FuncSpline fits a spline in log-log space. log10xs already holds
// the base 10 logs of the sample points, so f is evaluated at
// 10^log10xs[i], and the spline is fit to (log10xs, log10(f)). Functions
// that look like power laws over decades of dynamic range interpolate far
// more accurately this way than with a spline through the raw values.
//
// If f returns a value <= 0 at any sample the fit is impossible. No spline
// is constructed and the returned error is a *NonPositiveError naming the
// offending sample.
func NewLog10FuncSpline(f Func, log10xs []float64) ([]float64, *Spline, error) {
	log10ys := make([]float64, len(log10xs))
	for i, lx := range log10xs {
		x := math.Pow(10, lx)
		y := f(x)
		if y <= 0 {
			return nil, nil, &NonPositiveError{Index: i, X: x, Y: y}
		}
		log10ys[i] = math.Log10(y)
	}
	return log10ys, NewSpline(log10xs, log10ys), nil
}
