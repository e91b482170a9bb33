/*package array provides dense multidimensional arrays backed by a single
flat slice. The C tradition of allocating an array of pointers into
separately allocated rows means the dimensions have to be repeated at free
time, and getting them wrong there corrupts memory without any diagnostic.
Here every array owns one backing slice and carries its dimensions with it,
so that whole class of bug can't be written.

The backing slice and the dimensions are exported so that inner loops can do
their own stride arithmetic. At and Set bounds check every axis, which costs
a couple of compares per call. Code that has already validated its indices
can walk Vals (or a Row) directly.
*/
package array

import (
	"fmt"
	"math"
)

// Array2 is an n x l array of float64 values in row major order. Element
// (i, j) lives at Vals[i*L + j].
type Array2 struct {
	Vals []float64
	N, L int
}

// Array3 is an n x l x m array of float64 values. Element (i, j, k) lives at
// Vals[(i*L + j)*M + k].
type Array3 struct {
	Vals    []float64
	N, L, M int
}

// Array4 is an n x l x m x p array of float64 values. Element (i, j, k, q)
// lives at Vals[((i*L + j)*M + k)*P + q].
type Array4 struct {
	Vals       []float64
	N, L, M, P int
}

// Int3 is an n x l x m array of int values with the same layout as Array3.
type Int3 struct {
	Vals    []int
	N, L, M int
}

// size multiplies dimensions together while checking that each one is
// positive and that the product doesn't overflow int.
func size(dims ...int) (int, error) {
	n := 1
	for _, d := range dims {
		if d <= 0 {
			return 0, fmt.Errorf("Array dimensions must be positive, "+
				"but got %d.", d)
		}
		if n > math.MaxInt/d {
			return 0, fmt.Errorf("An array with dimensions %d would be too "+
				"large to index.", dims)
		}
		n *= d
	}
	return n, nil
}

// NewArray2 returns a zeroed n x l array.
func NewArray2(n, l int) (*Array2, error) {
	sz, err := size(n, l)
	if err != nil {
		return nil, err
	}
	return &Array2{Vals: make([]float64, sz), N: n, L: l}, nil
}

// NewArray3 returns a zeroed n x l x m array.
func NewArray3(n, l, m int) (*Array3, error) {
	sz, err := size(n, l, m)
	if err != nil {
		return nil, err
	}
	return &Array3{Vals: make([]float64, sz), N: n, L: l, M: m}, nil
}

// NewArray4 returns a zeroed n x l x m x p array.
func NewArray4(n, l, m, p int) (*Array4, error) {
	sz, err := size(n, l, m, p)
	if err != nil {
		return nil, err
	}
	return &Array4{Vals: make([]float64, sz), N: n, L: l, M: m, P: p}, nil
}

// NewInt3 returns a zeroed n x l x m int array.
func NewInt3(n, l, m int) (*Int3, error) {
	sz, err := size(n, l, m)
	if err != nil {
		return nil, err
	}
	return &Int3{Vals: make([]int, sz), N: n, L: l, M: m}, nil
}

// At returns the element at (i, j).
func (a *Array2) At(i, j int) float64 {
	a.check(i, j)
	return a.Vals[i*a.L+j]
}

// Set assigns the element at (i, j).
func (a *Array2) Set(i, j int, x float64) {
	a.check(i, j)
	a.Vals[i*a.L+j] = x
}

// Row returns row i as a slice aliasing the array's backing memory. Writes
// to the returned slice are writes to the array.
func (a *Array2) Row(i int) []float64 {
	if i < 0 || i >= a.N {
		panic(fmt.Sprintf("row %d out of bounds for a %d x %d array.",
			i, a.N, a.L))
	}
	return a.Vals[i*a.L : (i+1)*a.L]
}

func (a *Array2) check(i, j int) {
	if i < 0 || i >= a.N || j < 0 || j >= a.L {
		panic(fmt.Sprintf("index (%d, %d) out of bounds for a %d x %d array.",
			i, j, a.N, a.L))
	}
}

// At returns the element at (i, j, k).
func (a *Array3) At(i, j, k int) float64 {
	a.check(i, j, k)
	return a.Vals[(i*a.L+j)*a.M+k]
}

// Set assigns the element at (i, j, k).
func (a *Array3) Set(i, j, k int, x float64) {
	a.check(i, j, k)
	a.Vals[(i*a.L+j)*a.M+k] = x
}

// Row returns the innermost row at (i, j) as a slice aliasing the array's
// backing memory.
func (a *Array3) Row(i, j int) []float64 {
	if i < 0 || i >= a.N || j < 0 || j >= a.L {
		panic(fmt.Sprintf("row (%d, %d) out of bounds for a %d x %d x %d "+
			"array.", i, j, a.N, a.L, a.M))
	}
	start := (i*a.L + j) * a.M
	return a.Vals[start : start+a.M]
}

func (a *Array3) check(i, j, k int) {
	if i < 0 || i >= a.N || j < 0 || j >= a.L || k < 0 || k >= a.M {
		panic(fmt.Sprintf("index (%d, %d, %d) out of bounds for a "+
			"%d x %d x %d array.", i, j, k, a.N, a.L, a.M))
	}
}

// At returns the element at (i, j, k, q).
func (a *Array4) At(i, j, k, q int) float64 {
	a.check(i, j, k, q)
	return a.Vals[((i*a.L+j)*a.M+k)*a.P+q]
}

// Set assigns the element at (i, j, k, q).
func (a *Array4) Set(i, j, k, q int, x float64) {
	a.check(i, j, k, q)
	a.Vals[((i*a.L+j)*a.M+k)*a.P+q] = x
}

// Row returns the innermost row at (i, j, k) as a slice aliasing the
// array's backing memory.
func (a *Array4) Row(i, j, k int) []float64 {
	if i < 0 || i >= a.N || j < 0 || j >= a.L || k < 0 || k >= a.M {
		panic(fmt.Sprintf("row (%d, %d, %d) out of bounds for a "+
			"%d x %d x %d x %d array.", i, j, k, a.N, a.L, a.M, a.P))
	}
	start := ((i*a.L+j)*a.M + k) * a.P
	return a.Vals[start : start+a.P]
}

func (a *Array4) check(i, j, k, q int) {
	if i < 0 || i >= a.N || j < 0 || j >= a.L ||
		k < 0 || k >= a.M || q < 0 || q >= a.P {
		panic(fmt.Sprintf("index (%d, %d, %d, %d) out of bounds for a "+
			"%d x %d x %d x %d array.", i, j, k, q, a.N, a.L, a.M, a.P))
	}
}

// At returns the element at (i, j, k).
func (a *Int3) At(i, j, k int) int {
	a.check(i, j, k)
	return a.Vals[(i*a.L+j)*a.M+k]
}

// Set assigns the element at (i, j, k).
func (a *Int3) Set(i, j, k, x int) {
	a.check(i, j, k)
	a.Vals[(i*a.L+j)*a.M+k] = x
}

// Row returns the innermost row at (i, j) as a slice aliasing the array's
// backing memory.
func (a *Int3) Row(i, j int) []int {
	if i < 0 || i >= a.N || j < 0 || j >= a.L {
		panic(fmt.Sprintf("row (%d, %d) out of bounds for a %d x %d x %d "+
			"array.", i, j, a.N, a.L, a.M))
	}
	start := (i*a.L + j) * a.M
	return a.Vals[start : start+a.M]
}

func (a *Int3) check(i, j, k int) {
	if i < 0 || i >= a.N || j < 0 || j >= a.L || k < 0 || k >= a.M {
		panic(fmt.Sprintf("index (%d, %d, %d) out of bounds for a "+
			"%d x %d x %d array.", i, j, k, a.N, a.L, a.M))
	}
}
