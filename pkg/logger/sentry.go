package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel determines which log levels to send to Sentry (e.g., slog.LevelWarn for warnings+errors)
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"warn"`
}

// NewWithSentry creates a JSON logger that sends records to both stdout and Sentry.
// If DSN is empty, only stdout logging is enabled.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	stdout := newHandler(os.Stdout, "json", slog.LevelInfo)
	return slog.New(NewLogHandlerDecorator(withSentry(stdout, cfg), extractors...))
}

// withSentry combines next with a Sentry handler. Without a DSN, or when the
// SDK fails to initialize, next is returned unchanged.
func withSentry(next slog.Handler, cfg SentryConfig) slog.Handler {
	if cfg.DSN == "" {
		return next
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(next).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return next
	}

	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel, // Errors create Issues in Sentry
		LogLevel:   logLevel,   // Logs stored for context/search
	}.NewSentryHandler(context.Background())

	return fanout{next, sentryHandler}
}
