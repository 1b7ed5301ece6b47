package matrices

import "math"

// Degrees is an angle in degrees. Keeping the unit in the type stops
// radian values from slipping into a constructor unnoticed.
type Degrees float64

// Radians converts the angle to radians.
func (d Degrees) Radians() float64 {
	return float64(d) * math.Pi / 180.0
}

// FromRadians converts an angle in radians to Degrees.
func FromRadians(rad float64) Degrees {
	return Degrees(rad * 180.0 / math.Pi)
}

// RotX returns the rotation matrix for a right-handed rotation by deg
// about the global X axis.
func RotX(deg Degrees) Mat3 {
	c, s := math.Cos(deg.Radians()), math.Sin(deg.Radians())
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotY returns the rotation matrix for a right-handed rotation by deg
// about the global Y axis.
func RotY(deg Degrees) Mat3 {
	c, s := math.Cos(deg.Radians()), math.Sin(deg.Radians())
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotZ returns the rotation matrix for a right-handed rotation by deg
// about the global Z axis.
func RotZ(deg Degrees) Mat3 {
	c, s := math.Cos(deg.Radians()), math.Sin(deg.Radians())
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Orientation composes the three elementary rotations into
// RotZ(z) · RotY(y) · RotX(x). Acting on a column vector this applies the
// X rotation first, then Y, then Z (intrinsic X→Y→Z composition). The
// order is fixed; rotations do not commute.
func Orientation(x, y, z Degrees) Mat3 {
	return RotZ(z).Mul(RotY(y)).Mul(RotX(x))
}
