package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/localization/internal"
	"github.com/dmitrymomot/localization/pkg/logger"
)

// LocalizationConfig configures the Localization middleware.
type LocalizationConfig struct {
	// Skip bypasses detection for matching requests, e.g. health checks.
	Skip func(r *http.Request) bool
	// RedirectCode is the status of locale redirects (default: 302).
	RedirectCode int
}

// LocalizationOption configures LocalizationConfig.
type LocalizationOption func(*LocalizationConfig)

// WithLocalizationSkip sets a predicate for requests that bypass detection.
func WithLocalizationSkip(fn func(r *http.Request) bool) LocalizationOption {
	return func(cfg *LocalizationConfig) {
		cfg.Skip = fn
	}
}

// WithLocalizationRedirectCode sets the status used for locale redirects.
func WithLocalizationRedirectCode(code int) LocalizationOption {
	return func(cfg *LocalizationConfig) {
		cfg.RedirectCode = code
	}
}

// Localization returns middleware that detects the request locale.
//
// When the host addresses a locale other than the detected one the client is
// redirected to the same path and query on the detected locale's subdomain,
// with "Vary: Accept-Language". Otherwise the locale is applied and the
// request continues with a fresh Localize and Router in its context.
func Localization(svc *internal.Service, opts ...LocalizationOption) func(http.Handler) http.Handler {
	cfg := &LocalizationConfig{
		RedirectCode: http.StatusFound,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	log := svc.Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			loc := svc.Localize(r)
			current := loc.Current()

			// Must be read before the locale is applied.
			redirect := loc.ShouldRedirect()
			detected := loc.Detect()
			loc.Apply(w, detected.Locale)

			rt := svc.Router(r, loc)

			if redirect {
				target := rt.RedirectURL()
				log.DebugContext(r.Context(), "redirecting to locale subdomain",
					slog.String("from", current),
					slog.String("locale", detected.Locale),
					slog.String("source", string(detected.Source)),
					slog.String("location", target),
				)
				w.Header().Add("Vary", "Accept-Language")
				http.Redirect(w, r, target, cfg.RedirectCode)
				return
			}

			ctx := internal.WithLocalize(r.Context(), loc)
			ctx = internal.WithRouter(ctx, rt)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LocaleExtractor returns a ContextExtractor for use with the logger.
// Adds "locale" to log entries of localized requests.
func LocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if locale := internal.LocaleFromContext(ctx); locale != "" {
			return slog.String("locale", locale), true
		}
		return slog.Attr{}, false
	}
}
