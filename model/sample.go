package model

// Vec3 is a Cartesian 3-vector. Positions are in AU and velocities in AU/day
// once a sample has been normalised.
type Vec3 struct {
	X, Y, Z float64
}

// Sample is one time-tagged ephemeris point, equatorial J2000.
type Sample struct {
	JD       float64
	Position Vec3
	// Velocity is nil for position-only tables.
	Velocity *Vec3
}

// HasVelocity reports whether the sample carries a velocity vector.
func (s Sample) HasVelocity() bool { return s.Velocity != nil }
