package timectrl

import (
	"time"
)

// StampLayout matches the C preprocessor __DATE__ rendering ("Oct  5 2026")
// that downstream tools expect in the provenance trailer.
const StampLayout = "Jan _2 2006"

// Clock is an interface for accessing wall-clock time. Conversions depend on
// it rather than time.Now so that output is reproducible under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns time.Now in UTC.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return c.T }

// Stamp renders the clock's current date in StampLayout. A nil clock falls
// back to the system clock.
func Stamp(c Clock) string {
	if c == nil {
		c = SystemClock{}
	}
	return c.Now().Format(StampLayout)
}
