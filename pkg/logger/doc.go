// Package logger provides structured logging with context extraction and Sentry integration.
//
// It extends log/slog with context-based attribute injection and optional
// Sentry reporting. The localization middleware logs every redirect decision;
// with the extractors from the middlewares package each record carries the
// request ID and the active locale.
//
// # Basic Usage
//
//	log := logger.New(
//		middlewares.RequestIDExtractor(),
//		middlewares.LocaleExtractor(),
//	)
//	log.InfoContext(ctx, "request processed", slog.Int("status", 200))
//	// {"level":"INFO","msg":"request processed","status":200,"request_id":"...","locale":"de"}
//
// # Configuration
//
// NewFromConfig builds the logger from environment-driven settings:
//
//	LOG_LEVEL          - debug, info, warn or error (default: info)
//	LOG_FORMAT         - json or text (default: json)
//	SENTRY_DSN         - enables Sentry when set
//	SENTRY_ENVIRONMENT - Sentry environment (default: production)
//	SENTRY_MIN_LEVEL   - lowest level stored in Sentry (default: warn)
//
// Errors create Sentry issues; warnings are stored as logs for context. If
// SENTRY_DSN is empty the logger writes to stdout only, so the same code path
// works in development and production.
//
// # Context Extractors
//
// A ContextExtractor returns an attribute to add to every record logged with
// a context that carries the value:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Extractors run on every log call, so request-scoped values stay fresh.
// LogHandlerDecorator applies them around any slog.Handler.
//
// NewNope returns a logger that discards everything; it is the default when
// no logger is configured.
package logger
