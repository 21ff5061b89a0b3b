package model

// FrameSuffix follows the numeric header prefix and declares the output
// convention: equatorial J2000, AU, days. Output is always normalised to it.
const FrameSuffix = " 0,1,1"

// Header is the global metadata written on the first output line.
type Header struct {
	Epoch float64 // JD of sample 0
	Step  float64 // days between samples 0 and 1
	Count int

	// Annotation is the object name written after the suffix, if resolved.
	Annotation string
}

// FrameState records what the Horizons header said about the table. Flags
// are only ever switched on.
type FrameState struct {
	Equatorial   bool
	Ecliptic     bool
	StateVectors bool
	KmPerSecond  bool
}

// Resolved reports whether exactly one of the equatorial/ecliptic markers
// has been seen.
func (f FrameState) Resolved() bool {
	return f.Equatorial != f.Ecliptic
}

// FrameName returns a short label for logs and metrics.
func (f FrameState) FrameName() string {
	switch {
	case !f.Resolved():
		return "unresolved"
	case f.Ecliptic:
		return "ecliptic"
	default:
		return "equatorial"
	}
}

// UnitName returns the input unit convention.
func (f FrameState) UnitName() string {
	if f.KmPerSecond {
		return "km-s"
	}
	return "au-d"
}

// Layout identifies which column layout a coordinate line uses.
type Layout int

const (
	// LayoutUnlabeled places values at columns 1, 24, 47.
	LayoutUnlabeled Layout = iota
	// LayoutLabeled has "X =" style tags and values at columns 4, 30, 56.
	LayoutLabeled
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutLabeled:
		return "labeled"
	case LayoutUnlabeled:
		return "unlabeled"
	default:
		return "unknown"
	}
}
