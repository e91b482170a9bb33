/*package grid generates the sampling grids that the rest of numkit
interpolates and integrates on. A grid is just a sorted []float64, so nothing
here is smart: the point of the package is that every part of a simulation
that needs "n points between xmin and xmax" computes them with exactly the
same rounding.
*/
package grid

import (
	"fmt"
	"math"
)

// LinearIndex returns the position of point i on an n-point linear grid
// spanning [xmin, xmax]. i = 0 gives xmin and i = n-1 gives xmax up to
// rounding. Indices outside [0, n-1] extrapolate off the ends of the grid
// without complaint.
//
// LinearIndex panics if n < 2.
func LinearIndex(xmin, xmax float64, i, n int) float64 {
	if n < 2 {
		panic(fmt.Sprintf("grid needs n >= 2 points, but n = %d.", n))
	}
	return (xmax-xmin)*float64(i)/float64(n-1) + xmin
}

// Log10Index returns the position of point i on an n-point grid spanning
// [xmin, xmax] with points spaced evenly in log10(x). As with LinearIndex,
// out of range indices extrapolate.
//
// Log10Index panics if n < 2 or if either bound is non-positive.
func Log10Index(xmin, xmax float64, i, n int) float64 {
	if n < 2 {
		panic(fmt.Sprintf("grid needs n >= 2 points, but n = %d.", n))
	}
	if xmin <= 0 || xmax <= 0 {
		panic(fmt.Sprintf("log10 grid bounds must be positive, "+
			"but [xmin, xmax] = [%g, %g].", xmin, xmax))
	}
	lmin, lmax := math.Log10(xmin), math.Log10(xmax)
	return math.Pow(10, (lmax-lmin)*float64(i)/float64(n-1)+lmin)
}

// Linear returns an n-point grid spanning [xmin, xmax] with uniform spacing.
// The endpoints are set to xmin and xmax exactly, with no rounding slop.
func Linear(xmin, xmax float64, n int) ([]float64, error) {
	if err := checkBounds(xmin, xmax, n); err != nil {
		return nil, err
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = LinearIndex(xmin, xmax, i, n)
	}
	xs[0], xs[n-1] = xmin, xmax
	return xs, nil
}

// Log10 returns an n-point grid spanning [xmin, xmax] with points spaced
// evenly in log10(x). The endpoints are set to xmin and xmax exactly. Both
// bounds must be positive.
func Log10(xmin, xmax float64, n int) ([]float64, error) {
	if err := checkBounds(xmin, xmax, n); err != nil {
		return nil, err
	}
	if xmin <= 0 {
		return nil, fmt.Errorf("A log10 grid needs positive bounds, but "+
			"[xmin, xmax] = [%g, %g].", xmin, xmax)
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = Log10Index(xmin, xmax, i, n)
	}
	xs[0], xs[n-1] = xmin, xmax
	return xs, nil
}

func checkBounds(xmin, xmax float64, n int) error {
	if n < 2 {
		return fmt.Errorf("A grid needs at least two points, but n = %d.", n)
	}
	if math.IsNaN(xmin) || math.IsInf(xmin, 0) ||
		math.IsNaN(xmax) || math.IsInf(xmax, 0) {
		return fmt.Errorf("Grid bounds must be finite, but "+
			"[xmin, xmax] = [%g, %g].", xmin, xmax)
	}
	if xmin >= xmax {
		return fmt.Errorf("Grid bounds must obey xmin < xmax, but "+
			"[xmin, xmax] = [%g, %g].", xmin, xmax)
	}
	return nil
}
