package internal

import (
	"net/http"

	"github.com/dmitrymomot/localization/pkg/hostrouter"
	"github.com/dmitrymomot/localization/pkg/i18n"
	"github.com/dmitrymomot/localization/pkg/urlcodec"
)

// Source names where a detected locale came from.
type Source string

const (
	SourceURL      Source = "url"
	SourceCookie   Source = "cookie"
	SourceBrowser  Source = "browser"
	SourceFallback Source = "fallback"
)

// Detection is the result of Localize.Detect.
type Detection struct {
	Locale string
	Source Source
}

// Localize detects the locale of a single request. It is not safe for
// concurrent use and must not outlive the request.
type Localize struct {
	svc     *Service
	r       *http.Request
	current string
	applied bool
}

// URLLocale returns the locale label of the request host, available or not.
func (l *Localize) URLLocale() string {
	return hostrouter.GetLocaleLabel(l.r, l.svc.cfg.Domain)
}

// CookieLocale returns the value of the locale cookie.
func (l *Localize) CookieLocale() string {
	v, err := l.svc.cookies.Get(l.r, l.svc.cfg.CookieName)
	if err != nil {
		return ""
	}
	return v
}

// BrowserLocale returns the available locale that best matches the
// Accept-Language header, or "" when none does.
func (l *Localize) BrowserLocale() string {
	locale, ok := i18n.MatchAcceptLanguage(l.r.Header.Get("Accept-Language"), l.svc.cfg.AvailableLocales)
	if !ok {
		return ""
	}
	return locale
}

// Detect determines the locale the request should be served in without side
// effects. Sources are tried in order until one yields an available locale:
// the URL, the cookie, the browser, then the fallback locale.
func (l *Localize) Detect() Detection {
	cfg := l.svc.cfg

	if locale := l.URLLocale(); l.svc.IsAvailable(locale) {
		return Detection{Locale: locale, Source: SourceURL}
	}
	if cfg.Cookie {
		if locale := l.CookieLocale(); l.svc.IsAvailable(locale) {
			return Detection{Locale: locale, Source: SourceCookie}
		}
	}
	if cfg.Browser {
		if locale := l.BrowserLocale(); l.svc.IsAvailable(locale) {
			return Detection{Locale: locale, Source: SourceBrowser}
		}
	}
	return Detection{Locale: cfg.FallbackLocale, Source: SourceFallback}
}

// Apply makes locale the active locale of the request. With cookie
// localization enabled the locale cookie is queued on w when it differs.
func (l *Localize) Apply(w http.ResponseWriter, locale string) {
	l.current = locale
	l.applied = true

	if w != nil && l.svc.cfg.Cookie && l.CookieLocale() != locale {
		l.svc.cookies.SetForever(w, l.svc.cfg.CookieName, locale)
	}
}

// DetectLocale detects the locale, applies it and returns it.
func (l *Localize) DetectLocale(w http.ResponseWriter) string {
	locale := l.Detect().Locale
	l.Apply(w, locale)
	return locale
}

// Current returns the active locale. Before Apply it is the locale the URL
// addresses.
func (l *Localize) Current() string {
	if l.applied {
		return l.current
	}
	return l.URLLocale()
}

// ShouldRedirect reports whether the request addresses a locale other than
// the detected one. Call it before Apply. Requests to an IP literal without a
// configured Domain never redirect, since no subdomain can be put on them.
func (l *Localize) ShouldRedirect() bool {
	if !urlcodec.CarriesLocale(hostrouter.GetDomain(l.r), l.svc.cfg.Domain) {
		return false
	}
	return l.Current() != l.Detect().Locale
}

// AvailableLocales returns the locale allow-list.
func (l *Localize) AvailableLocales() []string {
	return l.svc.AvailableLocales()
}

// IsAvailable reports whether locale is in the allow-list.
func (l *Localize) IsAvailable(locale string) bool {
	return l.svc.IsAvailable(locale)
}

// Request returns the request the detector was created for.
func (l *Localize) Request() *http.Request {
	return l.r
}
