package timectrl

import (
	"math"
	"testing"
	"time"
)

func TestStampUsesDateLayout(t *testing.T) {
	cases := []struct {
		at   time.Time
		want string
	}{
		{time.Date(2026, time.October, 19, 13, 0, 0, 0, time.UTC), "Oct 19 2026"},
		{time.Date(2018, time.March, 5, 0, 0, 0, 0, time.UTC), "Mar  5 2018"},
	}
	for _, tc := range cases {
		if got := Stamp(FixedClock{T: tc.at}); got != tc.want {
			t.Fatalf("Stamp(%v) = %q, want %q", tc.at, got, tc.want)
		}
	}
}

func TestStampNilClock(t *testing.T) {
	if got := Stamp(nil); len(got) != len("Jan _2 2006") {
		t.Fatalf("Stamp(nil) = %q, unexpected length", got)
	}
}

func TestTimeToJDKnownEpochs(t *testing.T) {
	cases := []struct {
		at   time.Time
		want float64
	}{
		{time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC), 2451545.0},
		{time.Date(2019, time.October, 5, 0, 0, 0, 0, time.UTC), 2458761.5},
		{time.Date(2019, time.October, 5, 6, 0, 0, 500_000_000, time.UTC), 2458761.75 + 0.5/86400},
	}
	for _, tc := range cases {
		if got := TimeToJD(tc.at); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("TimeToJD(%v) = %.9f, want %.9f", tc.at, got, tc.want)
		}
	}
}

func TestJDRoundTrip(t *testing.T) {
	at := time.Date(2021, time.January, 1, 3, 25, 7, 0, time.UTC)
	if got := JDToTime(TimeToJD(at)); !got.Equal(at) {
		t.Fatalf("JDToTime(TimeToJD(%v)) = %v", at, got)
	}
}
