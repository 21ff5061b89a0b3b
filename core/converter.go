package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/jpl2mpc/internal/logging"
	"github.com/signalsfoundry/jpl2mpc/kb"
	"github.com/signalsfoundry/jpl2mpc/model"
	"github.com/signalsfoundry/jpl2mpc/timectrl"
)

const tracerName = "github.com/signalsfoundry/jpl2mpc/core"

// calendarTolerance bounds the disagreement between a line's JD and its
// calendar rendering before a warning is logged.
const calendarTolerance = time.Second

// MetricsRecorder receives conversion outcomes. The observability collector
// satisfies it; nil disables metrics.
type MetricsRecorder interface {
	RecordSample(kind string)
	RecordConversion(result string, samples int, stepDays float64, elapsed time.Duration)
}

// Result summarises a conversion.
type Result struct {
	Header   model.Header
	Frame    model.FrameState
	ObjectID int
}

// Converter turns a Horizons VECTORS report into DASO/eph2tle records.
type Converter struct {
	names   *kb.KnowledgeBase
	clock   timectrl.Clock
	stamp   string
	log     logging.Logger
	metrics MetricsRecorder
	tracer  trace.Tracer
}

// Option customises a Converter.
type Option func(*Converter)

// WithKnowledgeBase resolves target IDs against names instead of the
// built-in table.
func WithKnowledgeBase(names *kb.KnowledgeBase) Option {
	return func(c *Converter) { c.names = names }
}

// WithClock sets the clock used for the provenance stamp.
func WithClock(clock timectrl.Clock) Option {
	return func(c *Converter) { c.clock = clock }
}

// WithBuildStamp fixes the provenance stamp, overriding the clock.
func WithBuildStamp(stamp string) Option {
	return func(c *Converter) { c.stamp = stamp }
}

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(log logging.Logger) Option {
	return func(c *Converter) { c.log = log }
}

// WithMetricsRecorder records conversion metrics.
func WithMetricsRecorder(m MetricsRecorder) Option {
	return func(c *Converter) { c.metrics = m }
}

// NewConverter constructs a Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		names:  kb.NewKnowledgeBase(),
		clock:  timectrl.SystemClock{},
		log:    logging.Noop(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert scans in once, writing normalised samples to out as they are read,
// then appends the trailer and the report preamble and patches the header.
// On error, out holds whatever was written so far.
func (c *Converter) Convert(ctx context.Context, in io.ReadSeeker, out Output) (Result, error) {
	ctx, span := c.tracer.Start(ctx, "jpl2mpc.Convert")
	defer span.End()

	log := logging.LoggerFromContext(ctx)
	if log == nil {
		log = c.log
	}

	start := time.Now()
	res, err := c.convert(ctx, log, in, out)
	elapsed := time.Since(start)

	label := ResultLabel(err)
	if c.metrics != nil {
		c.metrics.RecordConversion(label, res.Header.Count, res.Header.Step, elapsed)
	}
	span.SetAttributes(
		attribute.String("jpl2mpc.result", label),
		attribute.String("jpl2mpc.frame", res.Frame.FrameName()),
		attribute.String("jpl2mpc.units", res.Frame.UnitName()),
		attribute.Bool("jpl2mpc.state_vectors", res.Frame.StateVectors),
		attribute.Int("jpl2mpc.samples", res.Header.Count),
		attribute.Float64("jpl2mpc.step_days", res.Header.Step),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, label)
		log.Error(ctx, "conversion failed",
			logging.String("result", label),
			logging.Int("samples", res.Header.Count),
			logging.Err(err),
		)
		return res, err
	}

	log.Info(ctx, "conversion complete",
		logging.Float("jd0", res.Header.Epoch),
		logging.String("epoch", epochString(res.Header)),
		logging.Float("step_days", res.Header.Step),
		logging.Int("samples", res.Header.Count),
		logging.String("frame", res.Frame.FrameName()),
		logging.String("units", res.Frame.UnitName()),
		logging.String("object", res.Header.Annotation),
		logging.Any("elapsed", elapsed),
	)
	return res, nil
}

func (c *Converter) convert(ctx context.Context, log logging.Logger, in io.ReadSeeker, out Output) (res Result, err error) {
	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return res, fmt.Errorf("rewind input: %w", err)
	}

	w := newRecordWriter(out)
	defer func() {
		// Leave partial output behind on failure, as a truncated file.
		if err != nil {
			_ = w.flush()
		}
	}()

	if err := w.begin(); err != nil {
		return res, fmt.Errorf("write header: %w", err)
	}

	det := newDetector(c.names)
	lr := newLineReader(in)
	var first timestamp

	for {
		line, rerr := lr.next()
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return res, fmt.Errorf("read input: %w", rerr)
		}

		ts, ok := parseTimestamp(line)
		if !ok {
			if m := det.detect(line); m != MarkerNone {
				log.Debug(ctx, "header marker", logging.String("marker", m.String()))
			}
			continue
		}

		res.Frame = det.frame
		res.ObjectID = det.objectID
		if !det.frame.Resolved() {
			return res, ErrFrameUnresolved
		}
		c.checkCalendar(ctx, log, line, ts)

		switch res.Header.Count {
		case 0:
			first = ts
			res.Header.Epoch = ts.JD
			res.Header.Annotation = det.name
			if err := w.annotate(det.name); err != nil {
				return res, fmt.Errorf("write header annotation: %w", err)
			}
		case 1:
			res.Header.Step = (ts.FracDay - first.FracDay) + float64(ts.IntDay-first.IntDay)
		}

		sample, err := readSample(lr, ts.JD, Normalizer{Frame: det.frame}, det.frame.StateVectors)
		if err != nil {
			return res, err
		}
		if err := w.writeSample(sample); err != nil {
			return res, fmt.Errorf("write sample: %w", err)
		}
		res.Header.Count++
		if c.metrics != nil {
			c.metrics.RecordSample(sampleKind(sample))
		}
	}
	if res.Header.Count == 0 {
		res.Frame = det.frame
		res.ObjectID = det.objectID
	}

	if err := w.writeTrailer(c.buildStamp()); err != nil {
		return res, fmt.Errorf("write trailer: %w", err)
	}
	if err := w.copyPreamble(in); err != nil {
		return res, err
	}
	widened, err := w.patchHeader(res.Header)
	if err != nil {
		return res, err
	}
	if widened {
		log.Warn(ctx, "header values wider than the reserved field; frame suffix overwritten",
			logging.Float("jd0", res.Header.Epoch),
			logging.Float("step_days", res.Header.Step),
			logging.Int("samples", res.Header.Count),
		)
	}
	return res, nil
}

// readSample reads the position line and, for state vectors, the velocity
// line following a timestamp. Each line picks its own column layout.
func readSample(lr *lineReader, jd float64, norm Normalizer, stateVectors bool) (model.Sample, error) {
	line, err := lr.nextCoordinateLine()
	if err != nil {
		return model.Sample{}, err
	}
	_, pos := ParseCoords(line)
	sample := model.Sample{JD: jd, Position: norm.Position(pos)}

	if stateVectors {
		line, err := lr.nextCoordinateLine()
		if err != nil {
			return model.Sample{}, err
		}
		_, vel := ParseCoords(line)
		v := norm.Velocity(vel)
		sample.Velocity = &v
	}
	return sample, nil
}

// checkCalendar warns when a line's JD and calendar rendering disagree.
func (c *Converter) checkCalendar(ctx context.Context, log logging.Logger, line string, ts timestamp) {
	cal, err := calendarTime(line)
	if err != nil {
		log.Debug(ctx, "unparseable calendar date", logging.Float("jd", ts.JD), logging.Err(err))
		return
	}
	calJD := timectrl.TimeToJD(cal)
	diff := time.Duration((ts.JD - calJD) * float64(24*time.Hour))
	if math.Abs((ts.JD-calJD)*secondsPerDay) > calendarTolerance.Seconds() {
		log.Warn(ctx, "calendar date disagrees with JD",
			logging.Float("jd", ts.JD),
			logging.Float("calendar_jd", calJD),
			logging.String("calendar", cal.Format(time.RFC3339)),
			logging.Any("diff", diff),
		)
	}
}

// epochString renders the first sample's JD as a UTC calendar time.
func epochString(h model.Header) string {
	if h.Count == 0 {
		return ""
	}
	return timectrl.JDToTime(h.Epoch).Format("2006-01-02T15:04:05.000Z")
}

func (c *Converter) buildStamp() string {
	if c.stamp != "" {
		return c.stamp
	}
	return timectrl.Stamp(c.clock)
}

func sampleKind(s model.Sample) string {
	if s.HasVelocity() {
		return "state"
	}
	return "position"
}
