package internal

import (
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"github.com/dmitrymomot/localization/pkg/cookie"
	"github.com/dmitrymomot/localization/pkg/logger"
)

// Translations looks up the path template of a route in a locale.
// routes.Table and routes.Store implement it.
type Translations interface {
	Has(locale, name string) bool
	Translate(locale, name string) (string, bool)
}

// Service holds the localization setup shared by all requests. Only route
// registration through Handle mutates it.
// Per-request state lives in Localize and Router.
type Service struct {
	cfg          Config
	translations Translations
	cookies      *cookie.Manager
	log          *slog.Logger

	// mu guards routes, the chi registrations made by Handle.
	mu     sync.Mutex
	routes map[routeKey]*localizedRoute
}

// Option configures the Service.
type Option func(*Service)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(s *Service) {
		s.cfg = cfg
	}
}

// WithAvailableLocales sets the locale allow-list.
func WithAvailableLocales(locales ...string) Option {
	return func(s *Service) {
		s.cfg.AvailableLocales = locales
	}
}

// WithFallbackLocale sets the locale used when detection finds nothing.
func WithFallbackLocale(locale string) Option {
	return func(s *Service) {
		s.cfg.FallbackLocale = locale
	}
}

// WithDomain sets the base domain locale subdomains live under.
func WithDomain(domain string) Option {
	return func(s *Service) {
		s.cfg.Domain = domain
	}
}

// WithScheme forces the scheme of generated URLs.
func WithScheme(scheme string) Option {
	return func(s *Service) {
		s.cfg.Scheme = scheme
	}
}

// WithCookieLocalization toggles the locale cookie.
func WithCookieLocalization(enabled bool) Option {
	return func(s *Service) {
		s.cfg.Cookie = enabled
	}
}

// WithBrowserLocalization toggles Accept-Language negotiation.
func WithBrowserLocalization(enabled bool) Option {
	return func(s *Service) {
		s.cfg.Browser = enabled
	}
}

// WithCookieName sets the name of the locale cookie.
func WithCookieName(name string) Option {
	return func(s *Service) {
		s.cfg.CookieName = name
	}
}

// WithCookieManager sets the cookie manager used to persist the locale.
// By default the cookie is scoped to the base domain when one is configured.
func WithCookieManager(m *cookie.Manager) Option {
	return func(s *Service) {
		s.cookies = m
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// New creates a Service serving route paths from translations.
func New(translations Translations, opts ...Option) (*Service, error) {
	if translations == nil {
		return nil, ErrNilTranslations
	}

	s := &Service{
		cfg:          DefaultConfig(),
		translations: translations,
		routes:       make(map[routeKey]*localizedRoute),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.cfg.normalize()
	if err := s.cfg.validate(); err != nil {
		return nil, err
	}

	if s.log == nil {
		s.log = logger.NewNope()
	}
	if s.cookies == nil {
		s.cookies = cookie.New(cookie.WithDomain(s.cfg.Domain))
	}

	return s, nil
}

// Config returns a copy of the normalized configuration.
func (s *Service) Config() Config {
	cfg := s.cfg
	cfg.AvailableLocales = slices.Clone(s.cfg.AvailableLocales)
	return cfg
}

// Logger returns the service logger.
func (s *Service) Logger() *slog.Logger {
	return s.log
}

// Translations returns the route translation lookup.
func (s *Service) Translations() Translations {
	return s.translations
}

// AvailableLocales returns the locale allow-list.
func (s *Service) AvailableLocales() []string {
	return slices.Clone(s.cfg.AvailableLocales)
}

// IsAvailable reports whether locale is in the allow-list.
func (s *Service) IsAvailable(locale string) bool {
	return locale != "" && slices.Contains(s.cfg.AvailableLocales, locale)
}

// Localize creates the locale detector for r.
func (s *Service) Localize(r *http.Request) *Localize {
	return &Localize{svc: s, r: r}
}

// Router creates the route resolver for r. A nil l creates a fresh detector.
func (s *Service) Router(r *http.Request, l *Localize) *Router {
	if l == nil {
		l = s.Localize(r)
	}
	return &Router{svc: s, r: r, loc: l, resolved: make(map[string]string)}
}
