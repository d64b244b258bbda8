package telemetry

import (
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

// NewLogger returns the logger for a component. With telemetry enabled,
// records go through the OpenTelemetry log bridge; otherwise they are
// written as text to w at the given level.
func NewLogger(name string, otelEnabled bool, level string, w io.Writer) *slog.Logger {
	if otelEnabled {
		return otelslog.NewLogger(name)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})).
		With("component", name)
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
