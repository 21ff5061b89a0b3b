package timectrl

import (
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
	"github.com/soniakeys/meeus/v3/julian"
)

const nanosPerDay = 86400e9

// TimeToJD converts t to a Julian Date. go-satellite only takes whole
// seconds, so the sub-second remainder is added separately.
func TimeToJD(t time.Time) float64 {
	t = t.UTC()
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	return jd + float64(t.Nanosecond())/nanosPerDay
}

// JDToTime converts a Julian Date to a UTC time, rounded to the millisecond
// since float64 JDs carry no more precision than that.
func JDToTime(jd float64) time.Time {
	return julian.JDToTime(jd).UTC().Round(time.Millisecond)
}
