/*package linalg provides the small set of vector and tensor operations that
numkit's consumers actually use: dot and cross products, Euclidean norms,
closed form 2 x 2 and 3 x 3 determinants, and the similarity transformation
that rotates a rank 2 tensor into a new basis.

Matrices are dense, row major, and carry their own dimensions, so there is
never a second place where the shape has to be repeated correctly. Shape
errors made by the programmer (mismatched vector lengths, multiplying
incompatible matrices) panic. Conditions the caller can reasonably hit with
runtime data (an unsupported tensor dimension, a singular matrix) come back
as errors wrapping the sentinel values below so they can be checked with
errors.Is.
*/
package linalg

import (
	"errors"
	"fmt"

	"github.com/gonum/matrix/mat64"
)

var (
	// ErrNonSquare reports an operation that needs a square matrix.
	ErrNonSquare = errors.New("linalg: matrix is not square")
	// ErrShape reports operands whose dimensions don't agree.
	ErrShape = errors.New("linalg: dimension mismatch")
	// ErrUnsupportedDim reports a tensor operation on a dimension other
	// than 2 or 3.
	ErrUnsupportedDim = errors.New("linalg: unsupported dimension")
	// ErrSingular reports a matrix with no inverse.
	ErrSingular = errors.New("linalg: singular matrix")
)

// Matrix represents a matrix of float64 values.
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// NewMatrix creates a matrix with the specified values and dimensions.
func NewMatrix(vals []float64, width, height int) *Matrix {
	m := &Matrix{}
	m.Init(vals, width, height)
	return m
}

// Init initializes a matrix with the specified values and dimensions.
func (m *Matrix) Init(vals []float64, width, height int) {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	m.Vals = vals
	m.Width, m.Height = width, height
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(make([]float64, n*n), n, n)
	for i := 0; i < n; i++ {
		m.Vals[i*n+i] = 1
	}
	return m
}

// Mult multiplies two matrices together.
func (m1 *Matrix) Mult(m2 *Matrix) *Matrix {
	h, w := m1.Height, m2.Width
	out := NewMatrix(make([]float64, h*w), w, h)
	return m1.MultAt(m2, out)
}

// MultAt multiplies two matrices together and writes the result to the
// specified matrix.
func (m1 *Matrix) MultAt(m2, out *Matrix) *Matrix {
	if m1.Width != m2.Height {
		panic("Multiplication of incompatible matrix sizes.")
	}

	for i := range out.Vals {
		out.Vals[i] = 0
	}
	for i := 0; i < m1.Height; i++ {
		off := i * m1.Width
		for j := 0; j < m2.Width; j++ {
			outIdx := i*m2.Width + j
			for k := 0; k < m1.Width; k++ {
				m1Idx := off + k
				m2Idx := k*m2.Width + j
				out.Vals[outIdx] += m1.Vals[m1Idx] * m2.Vals[m2Idx]
			}
		}
	}

	return out
}

// MultVec computes m * v and writes the result to out.
func MultVec(m *Matrix, v, out []float64) {
	if m.Height != len(out) || m.Width != len(v) {
		panic("Shape error.")
	}

	for i := range out {
		out[i] = 0
	}
	offset := 0
	for j := 0; j < m.Height; j++ {
		for i := 0; i < m.Width; i++ {
			out[j] += m.Vals[offset+i] * v[i]
		}
		offset += m.Width
	}
}

// VecMult computes v^T * m and writes the result to out.
func VecMult(v []float64, m *Matrix, out []float64) {
	if m.Height != len(v) || m.Width != len(out) {
		panic("Shape error.")
	}
	for i := range out {
		out[i] = 0
	}
	for i := 0; i < m.Width; i++ {
		sum := 0.0
		for j := 0; j < m.Height; j++ {
			sum += v[j] * m.Vals[i+m.Width*j]
		}
		out[i] = sum
	}
}

// Transpose returns the transpose of m as a new matrix.
func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(make([]float64, len(m.Vals)), m.Height, m.Width)
	m.TransposeAt(out)
	return out
}

// TransposeAt writes the transpose of m to out.
//
// out must not point to the same memory as m.
func (m *Matrix) TransposeAt(out *Matrix) {
	if out.Width != m.Height || out.Height != m.Width {
		panic("Transpose of incompatible matrix sizes.")
	}

	for y := 0; y < m.Height; y++ {
		off := y * m.Width
		for x := 0; x < m.Width; x++ {
			out.Vals[x*m.Height+y] = m.Vals[off+x]
		}
	}
}

// Det returns the determinant of m, computed in closed form.
//
// Only 2 x 2 and 3 x 3 matrices are supported. Any other square size
// returns an error wrapping ErrUnsupportedDim rather than guessing which
// formula was meant.
func (m *Matrix) Det() (float64, error) {
	if m.Width != m.Height {
		return 0, fmt.Errorf("%w: cannot take the determinant of a "+
			"%d x %d matrix", ErrNonSquare, m.Height, m.Width)
	}

	v := m.Vals
	switch m.Width {
	case 2:
		return v[0]*v[3] - v[2]*v[1], nil
	case 3:
		return v[0]*(v[4]*v[8]-v[5]*v[7]) -
			v[1]*(v[3]*v[8]-v[5]*v[6]) +
			v[2]*(v[3]*v[7]-v[4]*v[6]), nil
	}
	return 0, fmt.Errorf("%w: the determinant is only implemented for "+
		"2 x 2 and 3 x 3 matrices, but got %d x %d",
		ErrUnsupportedDim, m.Height, m.Width)
}

// Transform applies the basis change a to the rank 2 tensor sigma and
// returns sigma' = a * sigma * a^T as a new matrix. Neither input is
// modified. Transforming by the identity matrix returns an equal tensor.
//
// Only 2 x 2 and 3 x 3 tensors are supported.
func Transform(a, sigma *Matrix) (*Matrix, error) {
	out := NewMatrix(make([]float64, len(sigma.Vals)),
		sigma.Width, sigma.Height)
	if err := TransformAt(a, sigma, out); err != nil {
		return nil, err
	}
	return out, nil
}

// TransformAt computes the same transformation as Transform, but writes the
// result to out instead of allocating it.
//
// out may point to the same memory as a or sigma.
func TransformAt(a, sigma, out *Matrix) error {
	if err := checkTensorPair(a, sigma); err != nil {
		return err
	}
	if out.Width != sigma.Width || out.Height != sigma.Height {
		return fmt.Errorf("%w: output is %d x %d, but the tensor is "+
			"%d x %d", ErrShape, out.Height, out.Width,
			sigma.Height, sigma.Width)
	}

	// sigma * a^T first, then a * that. Both products go through scratch
	// space so that out is free to alias the inputs.
	at := a.Transpose()
	tmp := sigma.Mult(at)
	copy(out.Vals, a.Mult(tmp).Vals)
	return nil
}

func checkTensorPair(a, sigma *Matrix) error {
	if a.Width != a.Height {
		return fmt.Errorf("%w: the basis change matrix is %d x %d",
			ErrNonSquare, a.Height, a.Width)
	} else if sigma.Width != sigma.Height {
		return fmt.Errorf("%w: the tensor is %d x %d",
			ErrNonSquare, sigma.Height, sigma.Width)
	} else if a.Width != sigma.Width {
		return fmt.Errorf("%w: cannot apply a %d x %d basis change to a "+
			"%d x %d tensor", ErrShape, a.Height, a.Width,
			sigma.Height, sigma.Width)
	} else if a.Width != 2 && a.Width != 3 {
		return fmt.Errorf("%w: tensors must be 2 x 2 or 3 x 3, but got "+
			"%d x %d", ErrUnsupportedDim, a.Height, a.Width)
	}
	return nil
}

// Invert returns the inverse of m as a new matrix. Singular matrices return
// an error wrapping ErrSingular.
func (m *Matrix) Invert() (*Matrix, error) {
	if m.Width != m.Height {
		return nil, fmt.Errorf("%w: cannot invert a %d x %d matrix",
			ErrNonSquare, m.Height, m.Width)
	}

	vals := make([]float64, len(m.Vals))
	copy(vals, m.Vals)
	gm := mat64.NewDense(m.Height, m.Width, vals)
	inv := mat64.NewDense(m.Height, m.Width, nil)
	if err := inv.Inverse(gm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	out := NewMatrix(make([]float64, len(m.Vals)), m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			out.Vals[y*m.Width+x] = inv.At(y, x)
		}
	}
	return out, nil
}
