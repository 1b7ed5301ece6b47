package matrices

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrDimension is returned when a dynamically-sized matrix does not have
// the 3×3 shape this package works with.
var ErrDimension = errors.New("matrix is not 3x3")

// ErrNonFinite is returned when a matrix entry is NaN or infinite.
var ErrNonFinite = errors.New("matrix entry is not finite")

// FromDense converts a gonum matrix to a Mat3. The input must be 3×3 with
// finite entries; anything else is rejected at this boundary rather than
// poisoning later arithmetic.
func FromDense(d mat.Matrix) (Mat3, error) {
	rows, cols := d.Dims()
	if rows != 3 || cols != 3 {
		return Mat3{}, fmt.Errorf("%w: got %dx%d", ErrDimension, rows, cols)
	}
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r][c] = d.At(r, c)
		}
	}
	if !m.Finite() {
		return Mat3{}, ErrNonFinite
	}
	return m, nil
}

// ToDense returns the matrix as a freshly allocated gonum Dense, for
// callers that want gonum's general linear algebra on top of it.
func (m Mat3) ToDense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}
