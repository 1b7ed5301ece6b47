package vectors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -4, Y: 0.5, Z: 2}

	require.Equal(t, Vec3{X: -3, Y: 2.5, Z: 5}, a.Add(b))
	require.Equal(t, Vec3{X: 5, Y: 1.5, Z: 1}, a.Sub(b))
	require.Equal(t, Vec3{X: 2, Y: 4, Z: 6}, a.Scale(2))
	require.InDelta(t, -4+1+6, a.Dot(b), 1e-15)
}

func TestNormAndNormalize(t *testing.T) {
	v := Vec3{X: 3, Y: 4, Z: 0}
	require.InDelta(t, 5, v.Norm(), 1e-15)

	u := v.Normalize()
	require.InDelta(t, 1, u.Norm(), 1e-15)

	require.Equal(t, Vec3{}, Zero().Normalize())
}

func TestCross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	require.Equal(t, Vec3{Z: 1}, x.Cross(y))
	require.Equal(t, Vec3{Z: -1}, y.Cross(x))
	require.Equal(t, Vec3{}, x.Cross(x))
}

func TestDistance(t *testing.T) {
	require.InDelta(t, 5, Distance(Vec3{X: 1, Y: 1}, Vec3{X: 4, Y: 5}), 1e-15)
}

func TestFinite(t *testing.T) {
	require.True(t, Vec3{X: 1, Y: 2, Z: 3}.Finite())
	require.True(t, Zero().Finite())
	require.False(t, Vec3{X: math.NaN()}.Finite())
	require.False(t, Vec3{Y: math.Inf(1)}.Finite())
	require.False(t, Vec3{Z: math.Inf(-1)}.Finite())
}
