package internal

import (
	"slices"
	"strings"
)

// Config holds the localization settings.
type Config struct {
	// AvailableLocales is the allow-list of locale codes. The order is kept
	// for CurrentVersions and route registration.
	AvailableLocales []string `env:"LOCALIZATION_AVAILABLE_LOCALES" envSeparator:"," envDefault:"en,de"`

	// Cookie enables reading and persisting the locale cookie.
	Cookie bool `env:"LOCALIZATION_COOKIE" envDefault:"true"`

	// Browser enables Accept-Language negotiation.
	Browser bool `env:"LOCALIZATION_BROWSER" envDefault:"true"`

	// CookieName is the name of the locale cookie.
	CookieName string `env:"LOCALIZATION_COOKIE_NAME" envDefault:"locale"`

	// FallbackLocale is used when no other source yields an available locale.
	// Defaults to the first available locale.
	FallbackLocale string `env:"LOCALIZATION_FALLBACK_LOCALE" envDefault:"en"`

	// Domain is the base domain locale subdomains live under, e.g. "example.com".
	// When empty the last two labels of the request host are used.
	Domain string `env:"LOCALIZATION_DOMAIN"`

	// Scheme overrides the scheme of generated URLs. When empty it is derived
	// from the request.
	Scheme string `env:"LOCALIZATION_SCHEME"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		AvailableLocales: []string{"en", "de"},
		Cookie:           true,
		Browser:          true,
		CookieName:       "locale",
		FallbackLocale:   "en",
	}
}

func (c *Config) normalize() {
	locales := make([]string, 0, len(c.AvailableLocales))
	for _, l := range c.AvailableLocales {
		l = strings.TrimSpace(l)
		if l != "" && !slices.Contains(locales, l) {
			locales = append(locales, l)
		}
	}
	c.AvailableLocales = locales

	c.FallbackLocale = strings.TrimSpace(c.FallbackLocale)
	if c.FallbackLocale == "" && len(locales) > 0 {
		c.FallbackLocale = locales[0]
	}
	if c.CookieName == "" {
		c.CookieName = "locale"
	}
	c.Domain = strings.Trim(strings.ToLower(strings.TrimSpace(c.Domain)), ".")
	c.Scheme = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(c.Scheme), "://"))
}

func (c Config) validate() error {
	if len(c.AvailableLocales) == 0 {
		return ErrNoLocales
	}
	for _, l := range c.AvailableLocales {
		if strings.ContainsAny(l, "./: ") {
			return ErrInvalidLocale
		}
	}
	return nil
}
