package internal

import (
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/localization/pkg/pathtemplate"
	"github.com/dmitrymomot/localization/pkg/urlcodec"
)

// Router builds localized URLs for a single request. Resolved paths and the
// base URL are cached for the lifetime of the request only.
type Router struct {
	svc       *Service
	r         *http.Request
	loc       *Localize
	resolved  map[string]string
	base      *urlcodec.URL
	routeName string
}

// Localize returns the detector the router reads the active locale from.
func (rt *Router) Localize() *Localize {
	return rt.loc
}

// Resolve returns the path template of name in the active locale and
// remembers it for RouteNameByPath. A later Resolve of the same name
// overwrites the remembered path.
func (rt *Router) Resolve(name string) (string, bool) {
	path, ok := rt.svc.translations.Translate(rt.loc.Current(), name)
	if !ok {
		return "", false
	}
	rt.resolved[name] = path
	return path, true
}

// RoutePathByName returns the path template of name in locale. An empty
// locale selects the active one.
func (rt *Router) RoutePathByName(name, locale string) (string, bool) {
	if locale == "" {
		locale = rt.loc.Current()
	}
	return rt.svc.translations.Translate(locale, name)
}

// RouteNameByPath returns the name of a route resolved during this request
// whose template matches path. Routes never resolved are not found.
func (rt *Router) RouteNameByPath(path string) (string, bool) {
	for _, name := range slices.Sorted(maps.Keys(rt.resolved)) {
		tpl := rt.resolved[name]
		if strings.Trim(tpl, "/") == strings.Trim(path, "/") || pathtemplate.Parse(tpl).Matches(path) {
			return name, true
		}
	}
	return "", false
}

// URL builds the absolute URL of name in the active locale.
func (rt *Router) URL(name string, params map[string]string) (string, bool) {
	return rt.LocalizedURL("", name, params)
}

// LocalizedURL builds the absolute URL of name in locale: the locale becomes
// the first host label and the translated path is rendered with params.
// Optional placeholders without a value are dropped.
func (rt *Router) LocalizedURL(locale, name string, params map[string]string) (string, bool) {
	if locale == "" {
		locale = rt.loc.Current()
	}

	tpl, ok := rt.svc.translations.Translate(locale, name)
	if !ok {
		return "", false
	}

	u := rt.baseURL()
	u.Host = urlcodec.InjectLocale(u.Host, locale, rt.svc.cfg.Domain)
	u.Path = pathtemplate.Parse(tpl).Render(params)

	return urlcodec.Unparse(u), true
}

// Current returns the URL of the current route in locale, keeping the
// current route parameters.
func (rt *Router) Current(locale string) (string, bool) {
	name, ok := rt.CurrentRouteName()
	if !ok {
		return "", false
	}
	return rt.LocalizedURL(locale, name, rt.CurrentParams())
}

// CurrentVersions returns the URL of the current route for every available
// locale. Locales the route is not translated to are omitted.
func (rt *Router) CurrentVersions() map[string]string {
	versions := make(map[string]string, len(rt.svc.cfg.AvailableLocales))
	for _, locale := range rt.svc.cfg.AvailableLocales {
		if u, ok := rt.Current(locale); ok {
			versions[locale] = u
		}
	}
	return versions
}

// CurrentRouteName returns the name of the matched route. Routes registered
// with Service.Handle are tagged by name; for other routes the matched chi
// pattern is looked up among the routes resolved so far.
func (rt *Router) CurrentRouteName() (string, bool) {
	if rt.routeName != "" {
		return rt.routeName, true
	}
	rctx := chi.RouteContext(rt.r.Context())
	if rctx == nil {
		return "", false
	}
	pattern := rctx.RoutePattern()
	if pattern == "" {
		return "", false
	}
	return rt.RouteNameByPath(pattern)
}

// CurrentParams returns the non-empty URL parameters of the matched route.
func (rt *Router) CurrentParams() map[string]string {
	params := make(map[string]string)
	rctx := chi.RouteContext(rt.r.Context())
	if rctx == nil {
		return params
	}
	for i, key := range rctx.URLParams.Keys {
		if key == "*" || i >= len(rctx.URLParams.Values) {
			continue
		}
		if v := rctx.URLParams.Values[i]; v != "" {
			params[key] = v
		}
	}
	return params
}

// RedirectURL returns the request URL with the active locale as the first
// host label. Path and query are kept.
func (rt *Router) RedirectURL() string {
	u := rt.baseURL()
	u.Host = urlcodec.InjectLocale(u.Host, rt.loc.Current(), rt.svc.cfg.Domain)
	u.Path = rt.r.URL.EscapedPath()
	u.RawQuery = rt.r.URL.RawQuery
	return urlcodec.Unparse(u)
}

func (rt *Router) setRouteName(name string) {
	rt.routeName = name
}

// baseURL returns scheme, host and port of the request with the locale
// label removed from the host.
func (rt *Router) baseURL() urlcodec.URL {
	if rt.base == nil {
		host, port := urlcodec.SplitHostPort(rt.requestHost())
		host = strings.ToLower(host)
		rt.base = &urlcodec.URL{
			Scheme: rt.scheme(),
			Host:   urlcodec.BaseHost(host, rt.svc.cfg.Domain),
			Port:   port,
		}
	}
	return *rt.base
}

func (rt *Router) requestHost() string {
	if rt.r.Host != "" {
		return rt.r.Host
	}
	return rt.r.URL.Host
}

func (rt *Router) scheme() string {
	switch {
	case rt.svc.cfg.Scheme != "":
		return rt.svc.cfg.Scheme
	case rt.r.URL.Scheme != "":
		return rt.r.URL.Scheme
	case rt.r.TLS != nil:
		return "https"
	default:
		return "http"
	}
}
