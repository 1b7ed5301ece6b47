package matrices

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/echoflaresat/csys/vectors"
)

func TestIdentity(t *testing.T) {
	id := Identity()
	v := vectors.Vec3{X: 1.5, Y: -2, Z: 7}
	require.Equal(t, v, id.MulVec(v))
	require.Equal(t, id, id.Mul(id))
	require.Equal(t, 1.0, id.Det())
}

func TestMulAgainstHandComputed(t *testing.T) {
	a := Mat3{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	b := Mat3{
		{9, 8, 7},
		{6, 5, 4},
		{3, 2, 1},
	}
	want := Mat3{
		{30, 24, 18},
		{84, 69, 54},
		{138, 114, 90},
	}
	require.Equal(t, want, a.Mul(b))
}

func TestTranspose(t *testing.T) {
	m := Mat3{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	mt := m.Transpose()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			require.Equal(t, m[r][c], mt[c][r])
		}
	}
	require.Equal(t, m, mt.Transpose())
}

func TestDetMatchesGonum(t *testing.T) {
	cases := []Mat3{
		Identity(),
		{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}},
		{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}},
		RotX(33).Mul(RotZ(-71)),
	}
	for _, m := range cases {
		require.InDelta(t, mat3DetOracle(t, m), m.Det(), 1e-12)
	}
}

func TestIsRotation(t *testing.T) {
	require.True(t, Identity().IsRotation(1e-12))
	require.True(t, RotY(42).IsRotation(1e-12))

	// Orthonormal but det −1: a reflection is not a rotation.
	reflection := Mat3{
		{-1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	require.False(t, reflection.IsRotation(1e-12))

	scaled := Mat3{
		{2, 0, 0},
		{0, 2, 0},
		{0, 0, 2},
	}
	require.False(t, scaled.IsRotation(1e-12))
}

func TestFiniteMatrix(t *testing.T) {
	require.True(t, Identity().Finite())

	bad := Identity()
	bad[1][2] = math.NaN()
	require.False(t, bad.Finite())
}
