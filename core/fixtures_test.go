package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/signalsfoundry/jpl2mpc/timectrl"
)

const testStamp = "Oct 19 2026"

// Horizons-style preamble lines.
var (
	revisedGaiaLine = fmt.Sprintf("%-71s%d", " Revised: Sep 02, 2020             Gaia (spacecraft)", -139479)
	targetGaiaLine  = "Target body name: Gaia (spacecraft) (-139479)     {source: Gaia_merged}"
	targetOtherLine = "Target body name: Somebody (12345)                {source: none}"
	centerLine      = "Center body name: Earth (399)                     {source: DE441}"
	auUnitsLine     = "Output units    : AU-D"
	kmUnitsLine     = "Output units    : KM-S"
	icrfLine        = "Reference frame : ICRF"
	equatorLine     = "Coordinate systm: Earth Mean Equator and Equinox of Reference Epoch"
	eclipticLine    = "Reference frame : Ecliptic of J2000.0"
	stateVecLine    = "   VX    VY    VZ   Velocity components (au/day)"
	starsLine       = strings.Repeat("*", 79)
)

// tsLine renders a CAL-format timestamp line for jd.
func tsLine(jd float64) string {
	cal := timectrl.JDToTime(jd).Format("2006-Jan-02 15:04:05.0000")
	return fmt.Sprintf("%.9f = A.D. %s TDB ", jd, cal)
}

func labeledPos(x, y, z float64) string {
	return fmt.Sprintf(" X =%22.15E Y =%22.15E Z =%22.15E", x, y, z)
}

func labeledVel(x, y, z float64) string {
	return fmt.Sprintf(" VX=%22.15E VY=%22.15E VZ=%22.15E", x, y, z)
}

func unlabeled(x, y, z float64) string {
	return fmt.Sprintf(" %22.15E %22.15E %22.15E", x, y, z)
}

// report joins preamble, data and footer into a Horizons-like text report.
func report(preamble, data []string) string {
	var b strings.Builder
	for _, l := range preamble {
		b.WriteString(l + "\n")
	}
	b.WriteString("$$SOE\n")
	for _, l := range data {
		b.WriteString(l + "\n")
	}
	b.WriteString("$$EOE\n")
	b.WriteString(starsLine + "\n")
	b.WriteString("Reference frame : Ecliptic of J2000.0 appears in footers too\n")
	return b.String()
}

func preambleText(preamble []string) string {
	return strings.Join(preamble, "\n") + "\n"
}

func newTestConverter(opts ...Option) *Converter {
	base := []Option{
		WithBuildStamp(testStamp),
		WithClock(timectrl.FixedClock{T: time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)}),
	}
	return NewConverter(append(base, opts...)...)
}

// convertToFile runs c over input into a fresh file and returns the bytes
// written, including any partial output left by a failure.
func convertToFile(t *testing.T, c *Converter, input string) (string, Result, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.txt")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("create output: %v", err)
	}
	defer out.Close()

	res, convErr := c.Convert(context.Background(), strings.NewReader(input), out)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return string(data), res, convErr
}
