package interpolate

// Linear is a linear interpolator. It is mainly useful as a cheap baseline
// to sanity check a spline against.
type Linear struct {
	xs   searcher
	vals []float64
}

// NewLinear creates a linear interpolator for a sequence of strictly
// increasing or strictly decreasing points, xs, which take on the values
// given by vals.
//
// Lookups occur in O(log |xs|), usually faster thanks to the accelerator.
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		panic("Length of input slices are not equal.")
	} else if len(xs) <= 1 {
		panic("Linear interpolator needs at least two points.")
	}
	lin := &Linear{}
	lin.xs.init(xs)
	lin.vals = vals
	return lin
}

// NewUniformLinear creates a linear interpolator over a uniformly spaced
// sequence of x values starting at x0 and separated by dx, whose values
// are given by vals.
//
// Lookups are O(1).
func NewUniformLinear(x0, dx float64, vals []float64) *Linear {
	if len(vals) <= 1 {
		panic("Linear interpolator needs at least two points.")
	}
	lin := &Linear{}
	lin.xs.unifInit(x0, dx, len(vals))
	lin.vals = vals
	return lin
}

// Eval returns the interpolated value at x.
//
// Eval panics if called on a value outside the supplied range of inputs.
func (lin *Linear) Eval(x float64) float64 {
	i1 := lin.xs.search(x)
	i2 := i1 + 1
	x1, x2 := lin.xs.val(i1), lin.xs.val(i2)
	v1, v2 := lin.vals[i1], lin.vals[i2]

	return ((v2-v1)/(x2-x1))*(x-x1) + v1
}

// EvalAll evaluates the interpolator at all the given x values. If an
// output array is given, the output is written to that array (the array is
// still returned as a convenience).
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Eval(x)
	}
	return out[0]
}

// Ref creates a shallow copy of the interpolator with its own accelerator.
func (lin *Linear) Ref() Interpolator {
	ref := *lin
	ref.xs.acc.Reset()
	return &ref
}
