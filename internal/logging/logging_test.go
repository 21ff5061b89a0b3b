package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewWritesToConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", Output: &buf})

	log.Debug(context.Background(), "marker detected", String("marker", "ecliptic"), Err(errors.New("boom")))

	out := buf.String()
	for _, want := range []string{`"msg":"marker detected"`, `"marker":"ecliptic"`, `"error":"boom"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q missing %q", out, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Output: &buf})

	log.Info(context.Background(), "dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
	log.Warn(context.Background(), "kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("warn output missing, got %q", buf.String())
	}
}

func TestWithRunLoggerStoresIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx, log := WithRunLogger(context.Background(), New(Config{Output: &buf}))

	id := RunIDFromContext(ctx)
	if id == "" {
		t.Fatalf("expected run_id on context")
	}
	if LoggerFromContext(ctx) == nil {
		t.Fatalf("expected logger on context")
	}

	log.Info(ctx, "hello")
	if !strings.Contains(buf.String(), "run_id="+id) {
		t.Fatalf("log output %q missing run_id=%s", buf.String(), id)
	}

	again, sameID := EnsureRunID(ctx)
	if sameID != id || RunIDFromContext(again) != id {
		t.Fatalf("EnsureRunID replaced existing id %q with %q", id, sameID)
	}
}

func TestLoggerFromContextNil(t *testing.T) {
	if LoggerFromContext(context.Background()) != nil {
		t.Fatalf("expected nil logger on bare context")
	}
}
