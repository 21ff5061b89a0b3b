// Command jpl2mpc converts a JPL Horizons VECTORS report into the ephemeris
// format read by DASO and eph2tle.
//
//	jpl2mpc [flags] horizons.txt [output.txt]
//
// The converted data goes to the output file, or to stdout when none is
// named. Logs and traces go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/signalsfoundry/jpl2mpc/core"
	"github.com/signalsfoundry/jpl2mpc/internal/config"
	"github.com/signalsfoundry/jpl2mpc/internal/logging"
	"github.com/signalsfoundry/jpl2mpc/internal/observability"
)

// Exit codes.
const (
	exitOK             = 0
	exitUsage          = -1
	exitTruncatedInput = -2
)

const usageText = `
JPL2MPC takes input ephemeri(de)s generated by HORIZONS  and,
produces file(s) suitable for use in DASO or eph2tle.  The name of
the input ephemeris must be provided as a command-line argument.
For example:

jpl2mpc gaia.txt

The JPL ephemeris must be in text form (can use the 'download/save'
option for this).  Request VECTORS output with positions (or positions
and velocities), no light-time corrections, in the Earth mean equator
and equinox or the J2000 ecliptic frame, in AU-D or KM-S units.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jpl2mpc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", os.Getenv(config.ConfigFileEnv), "Path to an optional config file (YAML, JSON or TOML)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "", "Log format: text or json")
	metricsPath := fs.String("metrics-textfile", "", "Write Prometheus metrics to this file after the run")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(stdout, usageText)
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "jpl2mpc: %v\n", err)
		return exitUsage
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Logging.Format = *logFormat
	}
	if *metricsPath != "" {
		cfg.MetricsTextfile = *metricsPath
	}
	cfg.Logging.Output = stderr
	cfg.Tracing.Output = stderr

	positional := fs.Args()
	if len(positional) < 1 {
		fmt.Fprint(stdout, usageText)
		return exitUsage
	}

	in, inErr := os.Open(positional[0])
	if inErr != nil {
		fmt.Fprintf(stdout, "\nCouldn't open the Horizons file '%s'\n", positional[0])
	} else {
		defer in.Close()
	}

	var out *os.File
	var outErr error
	if len(positional) > 1 {
		out, outErr = os.Create(positional[1])
		if outErr != nil {
			fmt.Fprintf(stdout, "\nCouldn't open the output file '%s'\n", positional[1])
		}
	} else {
		// Conversion patches the header in place, so stdout output is staged.
		out, outErr = os.CreateTemp("", "jpl2mpc-*.txt")
		if outErr != nil {
			fmt.Fprintf(stdout, "\nCouldn't open the output file '%s'\n", "<stdout>")
		} else {
			defer os.Remove(out.Name())
		}
	}
	if out != nil {
		defer out.Close()
	}
	if inErr != nil || outErr != nil {
		fmt.Fprint(stdout, usageText)
		return exitUsage
	}

	ctx, log := logging.WithRunLogger(context.Background(), logging.New(cfg.Logging))
	log.Debug(ctx, "starting conversion",
		logging.String("input", positional[0]),
		logging.String("output", out.Name()),
	)

	shutdown, err := observability.InitTracing(ctx, cfg.Tracing, log)
	if err != nil {
		log.Warn(ctx, "tracing disabled", logging.Err(err))
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdown, log)

	collector, err := observability.NewConversionCollector(prometheus.NewRegistry())
	if err != nil {
		log.Warn(ctx, "metrics disabled", logging.Err(err))
	}

	names, err := cfg.KnowledgeBase()
	if err != nil {
		fmt.Fprintf(stderr, "jpl2mpc: %v\n", err)
		return exitUsage
	}
	if len(cfg.Bodies) > 0 {
		for _, b := range names.ListBodies() {
			log.Debug(ctx, "body name", logging.Int("id", b.ID), logging.String("name", b.Name))
		}
	}

	opts := []core.Option{
		core.WithKnowledgeBase(names),
		core.WithLogger(log),
		core.WithBuildStamp(cfg.BuildStamp),
	}
	if collector != nil {
		opts = append(opts, core.WithMetricsRecorder(collector))
	}
	_, convErr := core.NewConverter(opts...).Convert(ctx, in, out)

	if len(positional) < 2 {
		if err := streamTo(stdout, out); err != nil {
			log.Error(ctx, "failed to copy output to stdout", logging.Err(err))
			if convErr == nil {
				return exitUsage
			}
		}
	}

	if cfg.MetricsTextfile != "" && collector != nil {
		if err := collector.WriteTextfile(cfg.MetricsTextfile); err != nil {
			log.Warn(ctx, "failed to write metrics textfile",
				logging.String("path", cfg.MetricsTextfile),
				logging.Err(err),
			)
		}
	}

	return report(stdout, convErr)
}

// streamTo copies the staged output from its start.
func streamTo(dst io.Writer, staged *os.File) error {
	if _, err := staged.Seek(0, io.SeekStart); err != nil {
		return err
	}
	_, err := io.Copy(dst, staged)
	return err
}

// report prints the message for a failed conversion and returns the exit
// code.
func report(stdout io.Writer, err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, core.ErrFrameUnresolved):
		fmt.Fprint(stdout, "Input coordinates must be in the Earth mean equator and equinox\n")
		fmt.Fprint(stdout, "or in J2000 ecliptic coordinates\n")
		return exitUsage
	case errors.Is(err, core.ErrTruncatedInput):
		fmt.Fprint(stdout, "Failed to get data from input file\n")
		return exitTruncatedInput
	default:
		fmt.Fprintf(stdout, "Conversion failed: %v\n", err)
		return exitUsage
	}
}
