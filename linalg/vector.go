package linalg

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
)

// Dot returns the dot product of x and y.
//
// Dot panics if the vectors are empty or have different lengths.
func Dot(x, y []float64) float64 {
	if len(x) != len(y) {
		panic(fmt.Sprintf("mismatched vector lengths %d and %d.",
			len(x), len(y)))
	} else if len(x) == 0 {
		panic("zero length vectors.")
	}
	return floats.Dot(x, y)
}

// Magnitude returns the Euclidean norm of x.
//
// Magnitude panics if x is empty.
func Magnitude(x []float64) float64 {
	if len(x) == 0 {
		panic("zero length vector.")
	}
	return math.Sqrt(floats.Dot(x, x))
}

// Cross returns the cross product of x and y in a newly allocated vector.
// For length 3 vectors this is the standard cross product. For length 2
// vectors the result is a single element holding the z component of the
// planar cross product, x[0]*y[1] - x[1]*y[0].
//
// Cross panics unless both vectors have length 2 or both have length 3.
func Cross(x, y []float64) []float64 {
	var out []float64
	if len(x) == 2 {
		out = make([]float64, 1)
	} else {
		out = make([]float64, 3)
	}
	return CrossAt(x, y, out)
}

// CrossAt computes the same cross product as Cross, but writes the result
// into out instead of allocating. out must have length 1 when the inputs
// have length 2 and length 3 when they have length 3. CrossAt returns out
// for convenience.
//
// out must not alias x or y.
func CrossAt(x, y, out []float64) []float64 {
	if len(x) != len(y) {
		panic(fmt.Sprintf("mismatched vector lengths %d and %d.",
			len(x), len(y)))
	}

	switch len(x) {
	case 2:
		if len(out) != 1 {
			panic(fmt.Sprintf("planar cross product needs a 1 element "+
				"output, but got %d.", len(out)))
		}
		out[0] = x[0]*y[1] - x[1]*y[0]
	case 3:
		if len(out) != 3 {
			panic(fmt.Sprintf("cross product needs a 3 element output, "+
				"but got %d.", len(out)))
		}
		out[0] = x[1]*y[2] - x[2]*y[1]
		out[1] = x[2]*y[0] - x[0]*y[2]
		out[2] = x[0]*y[1] - x[1]*y[0]
	default:
		panic(fmt.Sprintf("cross product is only defined for lengths "+
			"2 and 3, but got %d.", len(x)))
	}

	return out
}
