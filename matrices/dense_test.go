package matrices

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// mat3DetOracle computes the determinant through gonum, as an
// implementation-independent cross-check.
func mat3DetOracle(t *testing.T, m Mat3) float64 {
	t.Helper()
	return mat.Det(m.ToDense())
}

func TestDenseRoundTrip(t *testing.T) {
	m := Orientation(12, -34, 56)

	got, err := FromDense(m.ToDense())
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestFromDenseRejectsWrongShape(t *testing.T) {
	for _, d := range []*mat.Dense{
		mat.NewDense(2, 2, nil),
		mat.NewDense(3, 4, nil),
		mat.NewDense(4, 3, nil),
		mat.NewDense(1, 9, nil),
	} {
		_, err := FromDense(d)
		require.ErrorIs(t, err, ErrDimension)
	}
}

func TestFromDenseRejectsNonFinite(t *testing.T) {
	d := Identity().ToDense()
	d.Set(0, 2, math.NaN())
	_, err := FromDense(d)
	require.ErrorIs(t, err, ErrNonFinite)

	d = Identity().ToDense()
	d.Set(2, 0, math.Inf(1))
	_, err = FromDense(d)
	require.ErrorIs(t, err, ErrNonFinite)
}
