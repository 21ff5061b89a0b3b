// Package config layers jpl2mpc settings: built-in defaults, an optional
// config file, then JPL2MPC_* environment variables. Command-line flags are
// applied on top by the caller.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/signalsfoundry/jpl2mpc/internal/logging"
	"github.com/signalsfoundry/jpl2mpc/internal/observability"
	"github.com/signalsfoundry/jpl2mpc/kb"
)

// ConfigFileEnv names the config file when no -config flag is given.
const ConfigFileEnv = "JPL2MPC_CONFIG"

// EnvPrefix is prepended to every environment variable, e.g.
// JPL2MPC_LOG_LEVEL or JPL2MPC_TRACING_ENABLED.
const EnvPrefix = "JPL2MPC"

// Config is the resolved runtime configuration.
type Config struct {
	Logging         logging.Config
	Tracing         observability.TracingConfig
	MetricsTextfile string
	// BuildStamp overrides the date in the provenance trailer.
	BuildStamp string
	// Bodies extend the built-in name table.
	Bodies []kb.Body
}

func defaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.add_source", false)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.exporter", "stdout")
	v.SetDefault("tracing.service_name", "jpl2mpc")
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.sample_ratio", 1.0)
	v.SetDefault("metrics.textfile", "")
	v.SetDefault("build_stamp", "")
}

// Load resolves configuration. path may be empty; a named file that cannot
// be read is an error.
func Load(path string) (Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("tracing.endpoint", EnvPrefix+"_OTLP_ENDPOINT", EnvPrefix+"_TRACING_ENDPOINT")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	bodies, err := parseBodies(v.GetStringMapString("names"))
	if err != nil {
		return Config{}, err
	}

	ratio := v.GetFloat64("tracing.sample_ratio")
	if ratio < 0 || ratio > 1 {
		ratio = 1
	}

	return Config{
		Logging: logging.Config{
			Level:     v.GetString("log.level"),
			Format:    v.GetString("log.format"),
			AddSource: v.GetBool("log.add_source"),
		},
		Tracing: observability.TracingConfig{
			Enabled:     v.GetBool("tracing.enabled"),
			ServiceName: v.GetString("tracing.service_name"),
			Exporter:    strings.ToLower(v.GetString("tracing.exporter")),
			Endpoint:    v.GetString("tracing.endpoint"),
			SampleRatio: ratio,
		},
		MetricsTextfile: v.GetString("metrics.textfile"),
		BuildStamp:      v.GetString("build_stamp"),
		Bodies:          bodies,
	}, nil
}

// parseBodies turns the "names" table (ID → name) into bodies. Keys are
// Horizons IDs such as "-170".
func parseBodies(raw map[string]string) ([]kb.Body, error) {
	bodies := make([]kb.Body, 0, len(raw))
	for key, name := range raw {
		id, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("names: invalid body id %q: %w", key, err)
		}
		bodies = append(bodies, kb.Body{ID: id, Name: name})
	}
	return bodies, nil
}

// KnowledgeBase builds the name table for cfg: the built-ins plus any
// configured bodies.
func (cfg Config) KnowledgeBase() (*kb.KnowledgeBase, error) {
	names := kb.NewKnowledgeBase()
	for _, b := range cfg.Bodies {
		if err := names.AddBody(b); err != nil {
			return nil, fmt.Errorf("names: %w", err)
		}
	}
	return names, nil
}
