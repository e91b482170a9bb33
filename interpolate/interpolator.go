/*package interpolate fits cubic splines and linear interpolants to sampled
functions. The spline builders evaluate a caller supplied function over a
grid, optionally in log10 space, and hand back a ready to use interpolator.
*/
package interpolate

// Interpolator is a 1D interpolator. Interpolators accelerate their lookups
// by caching the last interval they evaluated in, so they are not thread
// safe: an interpolator and its accelerator are a single owner pair and may
// only be used by one goroutine at a time unless synchronized externally.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
	// Ref creates a shallow copy of the interpolator with its own
	// accelerator. Each goroutine using the same interpolator must make a
	// copy with Ref first.
	Ref() Interpolator
}

var (
	_ Interpolator = &Spline{}
	_ Interpolator = &Linear{}
)
