package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Fixed columns of a Horizons CAL-format timestamp line, e.g.
//
//	2458765.500000000 = A.D. 2019-Oct-09 00:00:00.0000 TDB
const (
	minTimestampLen   = 54
	adMarkerColumn    = 17
	adMarker          = " = A.D."
	colonColumn       = 42
	fractionColumn    = 45
	tdbColumn         = 50
	tdbMarker         = " TDB"
	fracDayColumn     = 7
	calendarColumn    = 25
	calendarLayout    = "2006-Jan-02 15:04:05.0000"
	minJulianDate     = 2000000.
	maxJulianDate     = 3000000.
	sectionStartToken = "$$SOE"
)

// timestamp is the parsed leading part of a data line.
type timestamp struct {
	JD      float64
	IntDay  int
	FracDay float64
}

// parseTimestamp reports whether line is a sample timestamp line. The raw
// line, including its terminator, must be longer than 54 bytes and carry the
// calendar rendering at its fixed columns; nothing else in a report does.
func parseTimestamp(line string) (timestamp, bool) {
	if len(line) <= minTimestampLen {
		return timestamp{}, false
	}
	jd := leadingFloat(line)
	if jd <= minJulianDate || jd >= maxJulianDate {
		return timestamp{}, false
	}
	if line[adMarkerColumn:adMarkerColumn+len(adMarker)] != adMarker ||
		line[colonColumn] != ':' || line[fractionColumn] != '.' ||
		line[tdbColumn:tdbColumn+len(tdbMarker)] != tdbMarker {
		return timestamp{}, false
	}
	return timestamp{
		JD:      jd,
		IntDay:  leadingInt(line),
		FracDay: leadingFloat(column(line, fracDayColumn)),
	}, true
}

// calendarTime parses the "A.D." calendar rendering of a timestamp line.
func calendarTime(line string) (time.Time, error) {
	if len(line) < tdbColumn {
		return time.Time{}, fmt.Errorf("calendar field missing")
	}
	return time.Parse(calendarLayout, line[calendarColumn:tdbColumn])
}

// lineReader yields raw lines with their terminators intact so that the
// fixed-column length checks and the verbatim preamble copy see exactly what
// the report contains.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the following line. A final line without a terminator is
// returned as-is; io.EOF is returned only once no bytes remain.
func (lr *lineReader) next() (string, error) {
	line, err := lr.r.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	return line, err
}

// nextCoordinateLine reads the line that must follow a timestamp line.
func (lr *lineReader) nextCoordinateLine() (string, error) {
	line, err := lr.next()
	if errors.Is(err, io.EOF) {
		return "", ErrTruncatedInput
	}
	if err != nil {
		return "", fmt.Errorf("read coordinate line: %w", err)
	}
	return line, nil
}

// isSectionStart reports whether line opens the data section.
func isSectionStart(line string) bool {
	return strings.HasPrefix(line, sectionStartToken)
}
