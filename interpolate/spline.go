package interpolate

import (
	"fmt"
)

type splineCoeff struct {
	a, b, c, d float64
}

// Spline represents a 1D natural cubic spline which can be used to
// interpolate between points.
type Spline struct {
	xs, ys, y2s []float64
	coeffs      []splineCoeff
	sr          searcher
}

// NewSpline creates a spline based off a table of x and y values. The x
// values must be strictly increasing or strictly decreasing. The spline
// keeps a reference to both slices instead of copying them, and comes with
// its own accelerator.
func NewSpline(xs, ys []float64) *Spline {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("Table given to NewSpline() has len(xs) = %d "+
			"but len(ys) = %d.", len(xs), len(ys)))
	} else if len(xs) <= 1 {
		panic(fmt.Sprintf("Table given to NewSpline() has "+
			"length of %d.", len(xs)))
	}

	sp := new(Spline)

	sp.y2s = make([]float64, len(xs))
	sp.coeffs = make([]splineCoeff, len(xs)-1)
	sp.xs, sp.ys = xs, ys
	sp.Init(xs, ys)

	return sp
}

// Init reinitializes a spline to use a new sequence of points without doing
// any additional heap allocations. |xs| and |ys| must be the same as the
// previous point set.
func (sp *Spline) Init(xs, ys []float64) {
	if len(xs) != len(sp.xs) || len(ys) != len(sp.ys) {
		panic("Length of input arrays do not equal internal spline arrays.")
	}
	sp.xs, sp.ys = xs, ys

	if xs[0] < xs[1] {
		for i := 0; i < len(xs)-1; i++ {
			if xs[i+1] <= xs[i] {
				panic("Table given to NewSpline() not sorted.")
			}
		}
	} else {
		for i := 0; i < len(xs)-1; i++ {
			if xs[i+1] >= xs[i] {
				panic("Table given to NewSpline() not sorted.")
			}
		}
	}

	sp.sr.init(xs)
	sp.calcY2s()
	sp.calcCoeffs()
}

// Eval computes the value of the spline at the given point.
//
// x must be within the range of x values given to NewSpline().
func (sp *Spline) Eval(x float64) float64 {
	incr := sp.sr.incr
	if x <= sp.xs[0] == incr || x >= sp.xs[len(sp.xs)-1] == incr {
		if x == sp.xs[0] {
			return sp.ys[0]
		}
		if x == sp.xs[len(sp.xs)-1] {
			return sp.ys[len(sp.ys)-1]
		}

		panic(fmt.Sprintf("Point %g given to Spline.Eval() out of bounds "+
			"[%g, %g].", x, sp.xs[0], sp.xs[len(sp.xs)-1]))
	}

	i := sp.sr.search(x)
	dx := x - sp.xs[i]
	a, b, c, d := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c, sp.coeffs[i].d
	return a*dx*dx*dx + b*dx*dx + c*dx + d
}

// EvalAll evaluates the spline at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
func (sp *Spline) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}

	for i := range xs {
		out[0][i] = sp.Eval(xs[i])
	}

	return out[0]
}

// Ref creates a shallow copy of the spline with its own accelerator. The
// copy shares the coefficient tables with the original, so it costs almost
// nothing. Every goroutine evaluating the same spline needs to go through
// its own Ref.
func (sp *Spline) Ref() Interpolator {
	ref := *sp
	ref.sr.acc.Reset()
	return &ref
}

// Deriv computes the derivative of the spline at the given point to the
// specified order. Orders above 3 are uniformly zero.
//
// x must be within the range of x values given to NewSpline().
func (sp *Spline) Deriv(x float64, order int) float64 {
	lo, hi := sp.xs[0], sp.xs[len(sp.xs)-1]
	if !sp.sr.incr {
		lo, hi = hi, lo
	}
	if x < lo || x > hi {
		panic(fmt.Sprintf("Point %g given to Spline.Deriv() "+
			"out of bounds.", x))
	}

	i := sp.sr.search(x)
	dx := x - sp.xs[i]
	a, b, c, d := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c, sp.coeffs[i].d
	switch order {
	case 0:
		return a*dx*dx*dx + b*dx*dx + c*dx + d
	case 1:
		return 3*a*dx*dx + 2*b*dx + c
	case 2:
		return 6*a*dx + 2*b
	case 3:
		return 6 * a
	default:
		return 0
	}
}

// Integrate integrates the spline from lo to hi. Swapped bounds negate the
// result. The spline's table must be increasing.
func (sp *Spline) Integrate(lo, hi float64) float64 {
	if lo > hi {
		return -sp.Integrate(hi, lo)
	}
	if !sp.sr.incr {
		panic("Spline.Integrate() requires an increasing table.")
	}
	if lo < sp.xs[0] || lo > sp.xs[len(sp.xs)-1] {
		panic(fmt.Sprintf("Low bound %g in Spline.Integrate() "+
			"out of bounds.", lo))
	} else if hi < sp.xs[0] || hi > sp.xs[len(sp.xs)-1] {
		panic(fmt.Sprintf("High bound %g in Spline.Integrate() "+
			"out of bounds.", hi))
	}

	iLo, iHi := sp.sr.search(lo), sp.sr.search(hi)
	if iLo == iHi {
		return integTerm(&sp.coeffs[iLo], sp.xs[iLo], lo, hi)
	}
	sum := integTerm(&sp.coeffs[iLo], sp.xs[iLo], lo, sp.xs[iLo+1]) +
		integTerm(&sp.coeffs[iHi], sp.xs[iHi], sp.xs[iHi], hi)

	for i := iLo + 1; i < iHi; i++ {
		sum += integTerm(&sp.coeffs[i], sp.xs[i], sp.xs[i], sp.xs[i+1])
	}
	return sum
}

// integTerm integrates a single cubic piece between lo and hi. The piece's
// polynomial is in u = x - xi, so the antiderivative has to be evaluated in
// u space rather than at the raw bounds.
func integTerm(coeff *splineCoeff, xi, lo, hi float64) float64 {
	a, b, c, d := coeff.a, coeff.b, coeff.c, coeff.d
	u1, u2 := lo-xi, hi-xi
	return a*(u2*u2*u2*u2-u1*u1*u1*u1)/4 + b*(u2*u2*u2-u1*u1*u1)/3 +
		c*(u2*u2-u1*u1)/2 + d*(u2-u1)
}

// calcY2s computes the second derivative at every point in the table given
// to NewSpline. Natural boundary conditions: the second derivative is zero
// at both ends.
func (sp *Spline) calcY2s() {
	n := len(sp.xs)
	sp.y2s[0], sp.y2s[n-1] = 0, 0
	if n == 2 {
		return
	}

	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)

	xs, ys := sp.xs, sp.ys
	for i := range rs {
		// j indexes into xs and ys.
		j := i + 1

		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = ((ys[j+1] - ys[j]) / (xs[j+1] - xs[j])) -
			((ys[j] - ys[j-1]) / (xs[j] - xs[j-1]))
	}

	TriDiagAt(as, bs, cs, rs, sp.y2s[1:n-1])
}

func (sp *Spline) calcCoeffs() {
	coeffs, xs, ys, y2s := sp.coeffs, sp.xs, sp.ys, sp.y2s
	for i := range sp.coeffs {
		dx := xs[i+1] - xs[i]
		coeffs[i].a = (-y2s[i]/6 + y2s[i+1]/6) / dx
		coeffs[i].b = y2s[i] / 2
		coeffs[i].c = (ys[i+1]-ys[i])/dx + dx*(-y2s[i]/3-y2s[i+1]/6)
		coeffs[i].d = ys[i]
	}
}

// TriDiagAt solves the system of equations
//
// | b0 c0 ..    |   | out0 |   | r0 |
// | a1 b1 c1 .. |   | out1 |   | r1 |
// | ..          | * | ..   | = | .. |
// | ..    an bn |   | outn |   | rn |
//
// for out0 .. outn in place in the given slice.
func TriDiagAt(as, bs, cs, rs, out []float64) {
	if len(as) != len(bs) || len(as) != len(cs) ||
		len(as) != len(out) || len(as) != len(rs) {

		panic("Length of arguments to TriDiagAt are unequal.")
	}

	tmp := make([]float64, len(as))

	beta := bs[0]
	if beta == 0 {
		panic("TriDiagAt cannot solve given system.")
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			panic("TriDiagAt cannot solve given system.")
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
}

// TriDiag solves the same system as TriDiagAt, but allocates the solution
// vector instead of writing into a caller supplied one.
func TriDiag(as, bs, cs, rs []float64) []float64 {
	us := make([]float64, len(as))
	TriDiagAt(as, bs, cs, rs, us)
	return us
}
