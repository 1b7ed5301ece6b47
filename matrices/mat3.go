// Package matrices provides the fixed-size 3×3 matrix type used for frame
// orientations, plus the elementary rotation constructors that build them.
package matrices

import (
	"math"

	"github.com/echoflaresat/csys/vectors"
)

// Mat3 is a 3×3 matrix, row-major. It is a plain value type: copying is
// cheap and nothing is allocated on the heap.
type Mat3 [3][3]float64

// Identity returns the 3×3 identity matrix.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mul returns the matrix product a · b.
func (a Mat3) Mul(b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += a[r][k] * b[k][c]
			}
			m[r][c] = sum
		}
	}
	return m
}

// MulVec returns the matrix-vector product m · v.
func (m Mat3) MulVec(v vectors.Vec3) vectors.Vec3 {
	return vectors.Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns mᵀ. For a rotation matrix this is also its inverse.
func (m Mat3) Transpose() Mat3 {
	var t Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			t[r][c] = m[c][r]
		}
	}
	return t
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// IsRotation reports whether m is a proper rotation within tol:
// m · mᵀ ≈ I and det(m) ≈ +1.
func (m Mat3) IsRotation(tol float64) bool {
	p := m.Mul(m.Transpose())
	id := Identity()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if math.Abs(p[r][c]-id[r][c]) > tol {
				return false
			}
		}
	}
	return math.Abs(m.Det()-1) <= tol
}

// Finite reports whether every entry of m is finite.
func (m Mat3) Finite() bool {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if math.IsNaN(m[r][c]) || math.IsInf(m[r][c], 0) {
				return false
			}
		}
	}
	return true
}
