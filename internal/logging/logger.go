// Package logging configures the process-wide slog logger and carries the
// request id through contexts so service code can log with it.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

type requestIDKey struct{}

// Init installs a tint handler writing to stderr as the default logger.
func Init(level string) {
	slog.SetDefault(New(os.Stderr, level))
}

func New(w io.Writer, level string) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      ParseLevel(level),
		AddSource:  true,
		TimeFormat: time.Kitchen,
	}))
}

// ParseLevel maps LOG_LEVEL values to slog levels, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request id from ctx, or "" if none was set.
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// FromContext returns the default logger annotated with the request id.
func FromContext(ctx context.Context) *slog.Logger {
	if rid := RequestID(ctx); rid != "" {
		return slog.Default().With("request_id", rid)
	}
	return slog.Default()
}
