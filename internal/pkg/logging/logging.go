package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Redacted replaces the value of credential attributes.
const Redacted = "[REDACTED]"

// Options configures a logger built by New.
type Options struct {
	Service string // added as the "service" attribute when non-empty
	Level   string // "debug", "info", "warn" or "error" (default "info")
	Format  string // "json" or "text" (default "json")
	Output  io.Writer
}

// ParseLevel maps a config level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger. Attributes named like a Places API key are never
// written in clear.
func New(o Options) *slog.Logger {
	out := o.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{
		Level:       ParseLevel(o.Level),
		ReplaceAttr: redactKeys,
	}

	var handler slog.Handler
	if strings.ToLower(o.Format) == "text" {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	l := slog.New(handler)
	if o.Service != "" {
		l = l.With("service", o.Service)
	}
	return l
}

// Setup initialises the global slog default logger for one binary.
func Setup(service, level, format string) {
	slog.SetDefault(New(Options{Service: service, Level: level, Format: format}))
}

func redactKeys(_ []string, a slog.Attr) slog.Attr {
	switch strings.ToLower(a.Key) {
	case "key", "api_key", "apikey":
		return slog.String(a.Key, Redacted)
	}
	return a
}
