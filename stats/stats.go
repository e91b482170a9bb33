/*package stats provides the handful of descriptive statistics that numkit
needs. The heavy lifting is done by gonum's floats package, this just wraps
it with the error handling conventions used everywhere else in the project.
*/
package stats

import (
	"github.com/gonum/floats"
)

// Max returns the largest value in xs.
//
// Max panics if xs is empty.
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		panic("stats.Max given an empty slice.")
	}
	return floats.Max(xs)
}

// Min returns the smallest value in xs.
//
// Min panics if xs is empty.
func Min(xs []float64) float64 {
	if len(xs) == 0 {
		panic("stats.Min given an empty slice.")
	}
	return floats.Min(xs)
}

// Span returns the difference between the largest and smallest values in xs.
//
// Span panics if xs is empty.
func Span(xs []float64) float64 {
	if len(xs) == 0 {
		panic("stats.Span given an empty slice.")
	}
	return floats.Max(xs) - floats.Min(xs)
}

// Mean returns the arithmetic mean of xs.
//
// Mean panics if xs is empty.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		panic("stats.Mean given an empty slice.")
	}
	return floats.Sum(xs) / float64(len(xs))
}

// Ascending is a three way comparison of two float64 values. It returns -1
// if a < b, +1 if a > b, and 0 otherwise, which makes it usable as the
// ordering function of the standard library's sorting and searching
// routines.
func Ascending(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	}
	return 0
}

// ArgMax returns the index of the largest value in xs.
//
// ArgMax panics if xs is empty.
func ArgMax(xs []float64) int {
	if len(xs) == 0 {
		panic("stats.ArgMax given an empty slice.")
	}
	j := 0
	for i, x := range xs {
		if x > xs[j] {
			j = i
		}
	}
	return j
}
