package frames

import (
	"fmt"

	"github.com/echoflaresat/csys/vectors"
)

// TransformPoint converts a point expressed in frame src into its
// coordinates in frame dst. The point first goes to global coordinates,
//
//	pGlobal = src.Origin + src.Orientation · p
//
// and then into the target frame,
//
//	result = dst.Orientationᵀ · (pGlobal − dst.Origin)
//
// using that a rotation's transpose is its inverse, so no matrix
// inversion is needed.
func TransformPoint(p vectors.Vec3, src, dst CoordinateFrame) (vectors.Vec3, error) {
	if !p.Finite() {
		return vectors.Vec3{}, fmt.Errorf("point %v: %w", p, ErrNonFinite)
	}
	pGlobal := src.Origin.Add(src.Orientation.MulVec(p))
	return dst.Orientation.Transpose().MulVec(pGlobal.Sub(dst.Origin)), nil
}

// TransformObject converts an object expressed relative to frame src into
// a new object expressed relative to frame dst. The position follows
// TransformPoint; the object's own rotation is re-expressed via the
// global frame:
//
//	rotation = dst.Orientationᵀ · src.Orientation · obj.Rotation
//
// The input object is never modified. Products and transposes of
// rotations are rotations, so the result's rotation stays orthonormal.
func TransformObject(obj Object3D, src, dst CoordinateFrame) (Object3D, error) {
	position, err := TransformPoint(obj.Position, src, dst)
	if err != nil {
		return Object3D{}, fmt.Errorf("object position: %w", err)
	}
	rotationGlobal := src.Orientation.Mul(obj.Rotation)
	return Object3D{
		Position: position,
		Rotation: dst.Orientation.Transpose().Mul(rotationGlobal),
	}, nil
}
