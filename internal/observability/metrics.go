package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ConversionCollector bundles Prometheus metrics for ephemeris conversions.
// A one-shot CLI has nothing to scrape, so the collector is exported with
// WriteTextfile for node_exporter's textfile collector.
type ConversionCollector struct {
	gatherer prometheus.Gatherer

	Conversions *prometheus.CounterVec
	Samples     *prometheus.CounterVec
	Duration    prometheus.Histogram
	StepDays    prometheus.Gauge
	LastSamples prometheus.Gauge
}

// NewConversionCollector registers conversion metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewConversionCollector(reg prometheus.Registerer) (*ConversionCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	conversions, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jpl2mpc_conversions_total",
		Help: "Total number of Horizons conversions, labeled by result.",
	}, []string{"result"}), "jpl2mpc_conversions_total")
	if err != nil {
		return nil, err
	}

	samples, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jpl2mpc_samples_total",
		Help: "Total number of samples written, labeled by kind (position or state).",
	}, []string{"kind"}), "jpl2mpc_samples_total")
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "jpl2mpc_conversion_duration_seconds",
		Help:    "Wall-clock time spent converting one report.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}), "jpl2mpc_conversion_duration_seconds")
	if err != nil {
		return nil, err
	}

	step, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "jpl2mpc_last_step_days",
		Help: "Step size in days recorded in the header of the last conversion.",
	}), "jpl2mpc_last_step_days")
	if err != nil {
		return nil, err
	}

	lastSamples, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "jpl2mpc_last_samples",
		Help: "Number of samples written by the last conversion.",
	}), "jpl2mpc_last_samples")
	if err != nil {
		return nil, err
	}

	return &ConversionCollector{
		gatherer:    gatherer,
		Conversions: conversions,
		Samples:     samples,
		Duration:    duration,
		StepDays:    step,
		LastSamples: lastSamples,
	}, nil
}

// RecordSample counts one written sample of the given kind.
func (c *ConversionCollector) RecordSample(kind string) {
	if c == nil || c.Samples == nil {
		return
	}
	c.Samples.WithLabelValues(kind).Inc()
}

// RecordConversion records the outcome of one conversion.
func (c *ConversionCollector) RecordConversion(result string, samples int, stepDays float64, elapsed time.Duration) {
	if c == nil {
		return
	}
	if c.Conversions != nil {
		c.Conversions.WithLabelValues(result).Inc()
	}
	if c.Duration != nil {
		c.Duration.Observe(elapsed.Seconds())
	}
	if c.StepDays != nil {
		c.StepDays.Set(stepDays)
	}
	if c.LastSamples != nil {
		c.LastSamples.Set(float64(samples))
	}
}

// WriteTextfile writes the gathered metrics to path in the Prometheus text
// exposition format. The file is replaced atomically.
func (c *ConversionCollector) WriteTextfile(path string) error {
	if c == nil || path == "" {
		return nil
	}
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
