package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/signalsfoundry/jpl2mpc/model"
)

const (
	headerFormat     = "%13.5f %14.10f %4d"
	annotationFormat = " (500) Geocentric: %s\n"
	positionFormat   = "%13.5f%16.10f%16.10f%16.10f"
	velocityFormat   = " %16.12f%16.12f%16.12f\n"
	trailerFormat    = "\n\nCreated from Horizons data by 'jpl2mpc', ver %s\n"
)

// Output is a destination that is appended to while scanning and patched in
// place at offset zero afterwards. *os.File satisfies it.
type Output interface {
	io.Writer
	io.WriterAt
}

// recordWriter streams the fixed-width DASO/eph2tle format.
type recordWriter struct {
	dst Output
	buf *bufio.Writer

	provisional string
}

func newRecordWriter(dst Output) *recordWriter {
	return &recordWriter{
		dst:         dst,
		buf:         bufio.NewWriter(dst),
		provisional: formatHeader(model.Header{}),
	}
}

func formatHeader(h model.Header) string {
	return fmt.Sprintf(headerFormat, h.Epoch, h.Step, h.Count)
}

// begin writes the zeroed header prefix and the frame suffix. The line is
// left open for the annotation.
func (w *recordWriter) begin() error {
	_, err := w.buf.WriteString(w.provisional + model.FrameSuffix)
	return err
}

// annotate terminates the header line, naming the object when known.
func (w *recordWriter) annotate(name string) error {
	if name == "" {
		_, err := w.buf.WriteString("\n")
		return err
	}
	_, err := fmt.Fprintf(w.buf, annotationFormat, name)
	return err
}

func (w *recordWriter) writeSample(s model.Sample) error {
	if _, err := fmt.Fprintf(w.buf, positionFormat, s.JD, s.Position.X, s.Position.Y, s.Position.Z); err != nil {
		return err
	}
	if !s.HasVelocity() {
		_, err := w.buf.WriteString("\n")
		return err
	}
	_, err := fmt.Fprintf(w.buf, velocityFormat, s.Velocity.X, s.Velocity.Y, s.Velocity.Z)
	return err
}

func (w *recordWriter) writeTrailer(stamp string) error {
	_, err := fmt.Fprintf(w.buf, trailerFormat, stamp)
	return err
}

// copyPreamble rewinds in and appends every line before the first "$$SOE"
// line verbatim.
func (w *recordWriter) copyPreamble(in io.ReadSeeker) error {
	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind input: %w", err)
	}
	lr := newLineReader(in)
	for {
		line, err := lr.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read preamble: %w", err)
		}
		if isSectionStart(line) {
			return nil
		}
		if _, err := w.buf.WriteString(line); err != nil {
			return err
		}
	}
}

// patchHeader flushes pending output and overwrites the provisional header
// prefix with the final values. It reports whether the final prefix was
// wider than the provisional one, in which case it overwrote the start of
// the frame suffix.
func (w *recordWriter) patchHeader(h model.Header) (bool, error) {
	if err := w.flush(); err != nil {
		return false, err
	}
	final := formatHeader(h)
	if _, err := w.dst.WriteAt([]byte(final), 0); err != nil {
		return false, fmt.Errorf("patch header: %w", err)
	}
	return len(final) > len(w.provisional), nil
}

func (w *recordWriter) flush() error {
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
