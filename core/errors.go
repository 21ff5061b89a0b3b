package core

import "errors"

var (
	// ErrFrameUnresolved means a data line was reached without exactly one of
	// the equatorial/ecliptic markers having been seen.
	ErrFrameUnresolved = errors.New("input coordinates must be in the Earth mean equator and equinox or in J2000 ecliptic coordinates")
	// ErrTruncatedInput means the input ended where a coordinate line was due.
	ErrTruncatedInput = errors.New("failed to get data from input file")
)

// ResultLabel maps a conversion error to a short label for metrics and spans.
func ResultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrFrameUnresolved):
		return "frame_unresolved"
	case errors.Is(err, ErrTruncatedInput):
		return "truncated_input"
	default:
		return "io_error"
	}
}
