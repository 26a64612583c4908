package localization

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/localization/internal"
	"github.com/dmitrymomot/localization/middlewares"
	"github.com/dmitrymomot/localization/pkg/config"
	"github.com/dmitrymomot/localization/pkg/cookie"
)

// Type aliases - public API
type (
	// Service holds the shared configuration and route translations.
	Service = internal.Service

	// Localize detects the locale of a single request.
	Localize = internal.Localize

	// Router builds localized URLs for a single request.
	Router = internal.Router

	// Config holds the localization settings.
	Config = internal.Config

	// Option configures the Service.
	Option = internal.Option

	// Translations looks up the path template of a route in a locale.
	Translations = internal.Translations

	// Detection is a detected locale and where it came from.
	Detection = internal.Detection

	// Source names where a detected locale came from.
	Source = internal.Source
)

// Detection sources.
const (
	SourceURL      = internal.SourceURL
	SourceCookie   = internal.SourceCookie
	SourceBrowser  = internal.SourceBrowser
	SourceFallback = internal.SourceFallback
)

// Errors
var (
	ErrNoLocales          = internal.ErrNoLocales
	ErrInvalidLocale      = internal.ErrInvalidLocale
	ErrNilTranslations    = internal.ErrNilTranslations
	ErrRouteNotTranslated = internal.ErrRouteNotTranslated
	ErrRouteConflict      = internal.ErrRouteConflict
)

// Constructors

// New creates a Service serving route paths from translations, usually a
// *routes.Store.
//
// Example:
//
//	store := routes.NewStore(routes.WithSource(routes.FromDir(translations)))
//	if err := store.Reload(ctx); err != nil {
//	    return err
//	}
//
//	svc, err := localization.New(store,
//	    localization.WithAvailableLocales("en", "de"),
//	    localization.WithDomain("example.com"),
//	)
func New(translations Translations, opts ...Option) (*Service, error) {
	return internal.New(translations, opts...)
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return internal.DefaultConfig()
}

// LoadConfig reads the configuration from LOCALIZATION_* environment variables
// (and a .env file, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Middleware returns the locale detection and redirect middleware.
func Middleware(svc *Service, opts ...middlewares.LocalizationOption) func(http.Handler) http.Handler {
	return middlewares.Localization(svc, opts...)
}

// Context helpers

// LocalizeFromContext returns the request's detector, or nil outside the middleware.
func LocalizeFromContext(ctx context.Context) *Localize {
	return internal.LocalizeFromContext(ctx)
}

// RouterFromContext returns the request's router, or nil outside the middleware.
func RouterFromContext(ctx context.Context) *Router {
	return internal.RouterFromContext(ctx)
}

// LocaleFromContext returns the active locale of the request, or "".
func LocaleFromContext(ctx context.Context) string {
	return internal.LocaleFromContext(ctx)
}

// Options

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return internal.WithConfig(cfg)
}

// WithAvailableLocales sets the locale allow-list.
func WithAvailableLocales(locales ...string) Option {
	return internal.WithAvailableLocales(locales...)
}

// WithFallbackLocale sets the locale used when detection finds nothing.
func WithFallbackLocale(locale string) Option {
	return internal.WithFallbackLocale(locale)
}

// WithDomain sets the base domain locale subdomains live under.
// Without it the last two labels of the request host are treated as the base.
func WithDomain(domain string) Option {
	return internal.WithDomain(domain)
}

// WithScheme forces the scheme of generated URLs, e.g. behind a TLS proxy.
func WithScheme(scheme string) Option {
	return internal.WithScheme(scheme)
}

// WithCookieLocalization toggles reading and persisting the locale cookie.
func WithCookieLocalization(enabled bool) Option {
	return internal.WithCookieLocalization(enabled)
}

// WithBrowserLocalization toggles Accept-Language negotiation.
func WithBrowserLocalization(enabled bool) Option {
	return internal.WithBrowserLocalization(enabled)
}

// WithCookieName sets the name of the locale cookie.
func WithCookieName(name string) Option {
	return internal.WithCookieName(name)
}

// WithCookieOptions configures the cookie manager persisting the locale.
//
// Example:
//
//	localization.WithCookieOptions(
//	    cookie.WithDomain("example.com"),
//	    cookie.WithSecure(true),
//	)
func WithCookieOptions(opts ...cookie.Option) Option {
	return internal.WithCookieManager(cookie.New(opts...))
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}
