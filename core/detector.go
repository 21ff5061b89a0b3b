package core

import (
	"strings"

	"github.com/signalsfoundry/jpl2mpc/kb"
	"github.com/signalsfoundry/jpl2mpc/model"
)

// Header markers in a Horizons VECTORS report.
const (
	stateVectorPrefix   = "   VX    VY    VZ"
	equatorMarker       = "Earth Mean Equator and Equinox"
	icrfMarker          = "Reference frame : ICRF"
	eclipticMarker      = "Ecliptic and Mean Equinox of Reference Epoch"
	eclipticJ2000Marker = "Reference frame : Ecliptic of J2000"
	revisedPrefix       = " Revised:"
	targetBodyPrefix    = "Target body name:"
	kmPerSecondPrefix   = "Output units    : KM-S"

	// revisedIDColumn is where the target ID sits on the " Revised:" line.
	revisedIDColumn = 71
)

// Marker identifies which header rule fired for a line.
type Marker int

// Header rules, in the order they are tried.
const (
	MarkerNone Marker = iota
	MarkerStateVectors
	MarkerEquatorial
	MarkerEcliptic
	MarkerRevisedID
	MarkerTargetBodyID
	MarkerKmPerSecond
)

// String returns the marker name used in logs.
func (m Marker) String() string {
	switch m {
	case MarkerStateVectors:
		return "state_vectors"
	case MarkerEquatorial:
		return "equatorial"
	case MarkerEcliptic:
		return "ecliptic"
	case MarkerRevisedID:
		return "revised_id"
	case MarkerTargetBodyID:
		return "target_body_id"
	case MarkerKmPerSecond:
		return "km_per_second"
	default:
		return "none"
	}
}

// detector accumulates header metadata as lines stream past.
type detector struct {
	names *kb.KnowledgeBase

	frame    model.FrameState
	objectID int
	name     string
}

func newDetector(names *kb.KnowledgeBase) *detector {
	return &detector{names: names}
}

// detect applies the first matching header rule to line. At most one rule
// fires per line; later matches overwrite earlier ones.
func (d *detector) detect(line string) Marker {
	switch {
	case strings.HasPrefix(line, stateVectorPrefix):
		d.frame.StateVectors = true
		return MarkerStateVectors
	case strings.Contains(line, equatorMarker), strings.Contains(line, icrfMarker):
		d.frame.Equatorial = true
		return MarkerEquatorial
	case strings.Contains(line, eclipticMarker), strings.Contains(line, eclipticJ2000Marker):
		d.frame.Ecliptic = true
		return MarkerEcliptic
	case strings.HasPrefix(line, revisedPrefix):
		d.resolve(leadingInt(column(line, revisedIDColumn)))
		return MarkerRevisedID
	case strings.HasPrefix(line, targetBodyPrefix):
		idx := strings.Index(line, "(-")
		if idx < 0 {
			return MarkerNone
		}
		d.resolve(leadingInt(line[idx+1:]))
		return MarkerTargetBodyID
	case strings.HasPrefix(line, kmPerSecondPrefix):
		d.frame.KmPerSecond = true
		return MarkerKmPerSecond
	}
	return MarkerNone
}

func (d *detector) resolve(id int) {
	d.objectID = id
	d.name = d.names.LookupName(id)
}
