package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/analytics"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/population"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerTextHandler(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("cli", false, "warn", &buf)

	log.Info("hidden")
	log.Warn("shown", "n", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "component=cli") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestRecordRunWithoutSDK(t *testing.T) {
	m, err := NewMetrics()
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	r := &analytics.Result{Summary: analytics.Summary{Counts: population.CategoryCounts{population.House: 2}}}
	m.RecordRun(context.Background(), "cli", r, time.Millisecond)

	var nilMetrics *Metrics
	nilMetrics.RecordRun(context.Background(), "cli", r, time.Millisecond)
}

func TestSetupOTelSDKShutdown(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := SetupOTelSDK(context.Background(), &buf)
	if err != nil {
		t.Fatalf("SetupOTelSDK: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}
