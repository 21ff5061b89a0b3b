package core

import (
	"gonum.org/v1/gonum/mat"

	"github.com/signalsfoundry/jpl2mpc/model"
)

const (
	// Mean obliquity of the ecliptic at J2000.
	sinObliquity2000 = 0.397777155931913701597179975942380896684
	cosObliquity2000 = 0.917482062069181825744000384639406458043

	// AUInKm is the IAU 2012 astronomical unit in kilometres.
	AUInKm        = 1.495978707e+8
	secondsPerDay = 24. * 60. * 60.
)

// Rotations about the x axis between the J2000 ecliptic and the mean
// equator and equinox of J2000.
var (
	eclipticToEquatorial = mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, cosObliquity2000, -sinObliquity2000,
		0, sinObliquity2000, cosObliquity2000,
	})
	equatorialToEcliptic = mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, cosObliquity2000, sinObliquity2000,
		0, -sinObliquity2000, cosObliquity2000,
	})
)

func rotate(m mat.Matrix, v model.Vec3) model.Vec3 {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return model.Vec3{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// RotateEclipticToEquatorial rotates v from the J2000 ecliptic into the
// J2000 equatorial frame. The rotation does not depend on units.
func RotateEclipticToEquatorial(v model.Vec3) model.Vec3 {
	return rotate(eclipticToEquatorial, v)
}

// RotateEquatorialToEcliptic is the inverse of RotateEclipticToEquatorial.
func RotateEquatorialToEcliptic(v model.Vec3) model.Vec3 {
	return rotate(equatorialToEcliptic, v)
}

// Normalizer brings raw Horizons vectors to equatorial J2000 in AU and AU/day
// according to the detected frame and units.
type Normalizer struct {
	Frame model.FrameState
}

// Position normalises a raw position vector.
func (n Normalizer) Position(raw model.Vec3) model.Vec3 {
	v := raw
	if n.Frame.Ecliptic {
		v = RotateEclipticToEquatorial(v)
	}
	if n.Frame.KmPerSecond {
		v = model.Vec3{X: v.X / AUInKm, Y: v.Y / AUInKm, Z: v.Z / AUInKm}
	}
	return v
}

// Velocity normalises a raw velocity vector.
func (n Normalizer) Velocity(raw model.Vec3) model.Vec3 {
	v := raw
	if n.Frame.Ecliptic {
		v = RotateEclipticToEquatorial(v)
	}
	if n.Frame.KmPerSecond {
		const scale = secondsPerDay / AUInKm
		v = model.Vec3{X: v.X * scale, Y: v.Y * scale, Z: v.Z * scale}
	}
	return v
}
