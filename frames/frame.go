// Package frames implements rigid-body transformations between 3D
// reference frames. Every frame is defined by an origin and an
// orientation relative to one shared global frame; points and oriented
// objects expressed in one frame can be re-expressed in another.
package frames

import (
	"errors"
	"fmt"
	"math"

	"github.com/echoflaresat/csys/matrices"
	"github.com/echoflaresat/csys/vectors"
)

// ErrNonFinite is returned when an origin, angle or point coordinate is
// NaN or infinite. Such values would flow through the trigonometry and
// come out as NaN results, so they are rejected up front.
var ErrNonFinite = errors.New("input is not finite")

// CoordinateFrame is a coordinate system: an origin in global coordinates
// plus an orientation matrix mapping frame-local coordinates to global
// ones. Frames are immutable once constructed; use NewFrame (or Global)
// rather than a struct literal, since the zero value has a zero, and
// therefore invalid, orientation.
type CoordinateFrame struct {
	Origin      vectors.Vec3
	Orientation matrices.Mat3
}

// Object3D is a thing located and oriented within a frame: a position
// plus the object's own rotation matrix, both expressed relative to the
// frame the object currently lives in. The rotation is kept as a raw
// matrix and never decomposed back into angles.
type Object3D struct {
	Position vectors.Vec3
	Rotation matrices.Mat3
}

// Global returns the shared global frame: origin at zero, identity
// orientation.
func Global() CoordinateFrame {
	return CoordinateFrame{
		Origin:      vectors.Zero(),
		Orientation: matrices.Identity(),
	}
}

// NewFrame builds a frame from its origin in global coordinates and three
// rotation angles about the global X, Y and Z axes. The orientation is
// RotZ(z)·RotY(y)·RotX(x): rotations apply in X→Y→Z order.
func NewFrame(origin vectors.Vec3, x, y, z matrices.Degrees) (CoordinateFrame, error) {
	if !origin.Finite() {
		return CoordinateFrame{}, fmt.Errorf("frame origin %v: %w", origin, ErrNonFinite)
	}
	if !anglesFinite(x, y, z) {
		return CoordinateFrame{}, fmt.Errorf("frame angles (%v, %v, %v): %w", x, y, z, ErrNonFinite)
	}
	return CoordinateFrame{
		Origin:      origin,
		Orientation: matrices.Orientation(x, y, z),
	}, nil
}

// NewObject builds an object at the given position with an orientation
// composed from the three angles, X→Y→Z order as for frames. All-zero
// angles give the identity rotation.
func NewObject(position vectors.Vec3, x, y, z matrices.Degrees) (Object3D, error) {
	if !position.Finite() {
		return Object3D{}, fmt.Errorf("object position %v: %w", position, ErrNonFinite)
	}
	if !anglesFinite(x, y, z) {
		return Object3D{}, fmt.Errorf("object angles (%v, %v, %v): %w", x, y, z, ErrNonFinite)
	}
	return Object3D{
		Position: position,
		Rotation: matrices.Orientation(x, y, z),
	}, nil
}

func anglesFinite(angles ...matrices.Degrees) bool {
	for _, a := range angles {
		f := float64(a)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
