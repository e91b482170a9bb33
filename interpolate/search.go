package interpolate

import (
	"fmt"
)

// Accel is an interpolation accelerator. It remembers the interval that the
// previous lookup landed in and tries it again before doing any real
// searching, which makes sweeps over nearby query points close to free.
//
// An Accel is owned by exactly one interpolator and inherits its threading
// rule: one goroutine at a time.
type Accel struct {
	cache int
}

// Reset clears the cached interval.
func (acc *Accel) Reset() {
	acc.cache = 0
}

type searcher struct {
	xs          []float64
	x0, dx, lim float64
	n           int
	unif, incr  bool
	acc         Accel
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.x0 = xs[0]
	s.lim = xs[len(xs)-1]
	s.dx = (s.lim - s.x0) / float64(len(xs)-1)
	s.n = len(xs)
	s.unif = false
	s.incr = s.dx > 0
	s.acc.Reset()
}

func (s *searcher) unifInit(x0, dx float64, n int) {
	s.xs = nil
	s.x0 = x0
	s.lim = float64(n-1)*dx + x0
	s.dx = dx
	s.n = n
	s.unif = true
	s.incr = s.dx > 0
	s.acc.Reset()
}

// search returns the index i of the interval containing x, so that for an
// increasing table xs[i] <= x <= xs[i+1]. The accelerator's interval is
// checked first, then a guess assuming uniform spacing, and only then a
// binary search. Whatever interval is found ends up in the accelerator.
func (s *searcher) search(x float64) int {
	lo, hi := s.x0, s.lim
	if !s.incr {
		lo, hi = hi, lo
	}
	if x < lo || x > hi {
		panic(fmt.Sprintf(
			"Value %g out of range bounds [%g, %g]", x, lo, hi,
		))
	}

	if s.unif {
		idx := int((x - s.x0) / s.dx)
		if idx == s.n-1 {
			idx--
		}
		return idx
	}

	// The interval from the previous lookup.
	c := s.acc.cache
	if c >= 0 && c < s.n-1 &&
		(s.xs[c] <= x == s.incr) &&
		(s.xs[c+1] >= x == s.incr) {

		return c
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - s.xs[0]) / s.dx)
	if guess >= 0 && guess < len(s.xs)-1 &&
		(s.xs[guess] <= x == s.incr) &&
		(s.xs[guess+1] >= x == s.incr) {

		s.acc.cache = guess
		return guess
	}

	// Binary search.
	bLo, bHi := 0, s.n-1
	for bHi-bLo > 1 {
		mid := (bLo + bHi) / 2
		if s.incr == (x >= s.xs[mid]) {
			bLo = mid
		} else {
			bHi = mid
		}
	}

	s.acc.cache = bLo
	return bLo
}

func (s *searcher) val(i int) float64 {
	if s.unif {
		return float64(i)*s.dx + s.x0
	}
	return s.xs[i]
}
