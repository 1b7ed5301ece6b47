// Package earth builds coordinate frames anchored in the Earth-centered,
// Earth-fixed (ECEF) system: ground-station frames from geodetic
// coordinates and a sun-pointing frame from the apparent solar position.
package earth

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/echoflaresat/csys/frames"
	"github.com/echoflaresat/csys/matrices"
	"github.com/echoflaresat/csys/vectors"
)

const Radius = 6371.0 // Earth radius in km (spherical approximation)

// SunDirectionECEF returns the unit vector toward the Sun in ECEF
// coordinates at time t.
func SunDirectionECEF(t time.Time) vectors.Vec3 {
	t = t.UTC()
	jd := julian.TimeToJD(t)

	// Step 1: Apparent RA/Dec of the Sun (in radians)
	ra, dec := solar.ApparentEquatorial(jd)

	// Step 2: Unit vector in ECI (Earth-centered inertial)
	x := dec.Cos() * ra.Cos()
	y := dec.Cos() * ra.Sin()
	z := dec.Sin()

	// Step 3: Rotate ECI → ECEF using GMST
	gmst := sidereal.Apparent0UT(jd)
	cosGMST := gmst.Angle().Cos()
	sinGMST := gmst.Angle().Sin()

	xe := x*cosGMST + y*sinGMST
	ye := -x*sinGMST + y*cosGMST
	ze := z

	return vectors.Vec3{X: xe, Y: ye, Z: ze}
}

// SunFrame returns an Earth-centered frame whose +X axis points at the
// Sun at time t. Useful as a target frame: a direction transformed into
// it has the Sun at (d, 0, 0) for some d.
func SunFrame(t time.Time) frames.CoordinateFrame {
	sun := SunDirectionECEF(t)
	az := matrices.FromRadians(math.Atan2(sun.Y, sun.X))
	el := matrices.FromRadians(math.Asin(sun.Z))
	return frames.CoordinateFrame{
		Origin:      vectors.Zero(),
		Orientation: matrices.RotZ(az).Mul(matrices.RotY(-el)),
	}
}

// ECEFPosition returns the ECEF position (km) for a latitude and
// longitude in degrees and an altitude in km above the spherical Earth.
func ECEFPosition(latDeg, lonDeg, altKm float64) vectors.Vec3 {
	lat := matrices.Degrees(latDeg).Radians()
	lon := matrices.Degrees(lonDeg).Radians()
	r := Radius + altKm
	return vectors.Vec3{
		X: r * math.Cos(lat) * math.Cos(lon),
		Y: r * math.Cos(lat) * math.Sin(lon),
		Z: r * math.Sin(lat),
	}
}

// StationFrame returns the local East-North-Up frame of a ground station:
// origin at its ECEF position, X east, Y north, Z up. The orientation is
// composed from elementary rotations,
//
//	RotZ(lon) · RotY(90°−lat) · RotZ(90°)
//
// whose columns are exactly the east, north and up directions in ECEF.
func StationFrame(latDeg, lonDeg, altKm float64) frames.CoordinateFrame {
	orientation := matrices.RotZ(matrices.Degrees(lonDeg)).
		Mul(matrices.RotY(matrices.Degrees(90 - latDeg))).
		Mul(matrices.RotZ(90))
	return frames.CoordinateFrame{
		Origin:      ECEFPosition(latDeg, lonDeg, altKm),
		Orientation: orientation,
	}
}
