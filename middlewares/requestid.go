package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/localization/pkg/logger"
)

type requestIDKey struct{}

// RequestIDHeader is the response header carrying the request ID.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength caps IDs accepted from upstream headers.
const maxRequestIDLength = 128

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Headers are checked in order for an ID set by an upstream proxy.
	Headers   []string
	Generator func() string
}

// RequestIDOption configures RequestIDConfig.
type RequestIDOption func(*RequestIDConfig)

// WithRequestIDHeaders replaces the headers checked for an upstream ID.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(cfg *RequestIDConfig) { cfg.Headers = headers }
}

// WithRequestIDGenerator sets the generator used when no upstream ID is found.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(cfg *RequestIDConfig) { cfg.Generator = gen }
}

// RequestID tags every request with an ID, reusing a well-formed upstream ID
// or generating a UUID. The ID is stored in the context and echoed in the
// X-Request-ID response header.
func RequestID(opts ...RequestIDOption) func(http.Handler) http.Handler {
	cfg := RequestIDConfig{
		Headers:   []string{RequestIDHeader, "X-Correlation-ID"},
		Generator: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := upstreamRequestID(r, cfg.Headers)
			if id == "" {
				id = cfg.Generator()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
		})
	}
}

func upstreamRequestID(r *http.Request, headers []string) string {
	for _, h := range headers {
		if v := r.Header.Get(h); validRequestID(v) {
			return v
		}
	}
	return ""
}

// validRequestID accepts short printable ASCII IDs only, so the value is
// safe to echo in headers and logs.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// GetRequestID returns the request ID stored in ctx, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDExtractor adds "request_id" to log records written with the
// request context.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := GetRequestID(ctx)
		return slog.String("request_id", id), id != ""
	}
}
