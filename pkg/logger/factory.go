package logger

import (
	"io"
	"log/slog"
	"os"
)

// Config selects the output format, level and Sentry integration.
type Config struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format string     `env:"LOG_FORMAT" envDefault:"json"` // json or text
	Sentry SentryConfig
}

// New creates a JSON-formatted logger with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(newHandler(os.Stdout, "json", slog.LevelInfo), extractors...))
}

// NewFromConfig creates a logger from Config. Records are sent to Sentry as
// well when a DSN is configured.
func NewFromConfig(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	stdout := newHandler(os.Stdout, cfg.Format, cfg.Level)
	return slog.New(NewLogHandlerDecorator(withSentry(stdout, cfg.Sentry), extractors...))
}

func newHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "text" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
