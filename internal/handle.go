package internal

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/localization/pkg/pathtemplate"
)

// routeKey identifies one chi registration. chi treats patterns of the same
// shape as the same route, so placeholder names are not part of the key.
type routeKey struct {
	router chi.Router
	method string
	shape  string
}

// routeVariant is one chi pattern of a route in one locale.
type routeVariant struct {
	locale  string
	pattern string
	shape   string
	params  []string
}

type routeBinding struct {
	name    string
	params  []string
	handler http.Handler
}

// localizedRoute is the handler chi sees for one pattern shape. It serves
// the route bound to the request locale and answers 404 for locales without
// a binding.
type localizedRoute struct {
	mu sync.RWMutex
	// params are the placeholder names of the pattern registered with chi.
	params   []string
	bindings map[string]routeBinding
	// first serves requests that did not pass the localization middleware.
	first string
}

// Handle registers h on r under the translated path of name in every
// available locale. Optional placeholders expand into one chi pattern per
// variant. A path only answers on the subdomains of the locales it belongs
// to; other locales get 404.
//
// Locales may translate a route to paths chi cannot tell apart, such as
// "users/{username}" and "users/{name}", or share a path between different
// routes in different locales. One handler then dispatches by locale and
// renames the URL parameters to the names of the serving locale. Binding a
// second route to a path a locale already serves fails with
// ErrRouteConflict and registers nothing.
//
// Paths are read once at registration. Later reloads of the translations
// change generated URLs but not the registered patterns.
func (s *Service) Handle(r chi.Router, method, name string, h http.Handler) error {
	variants := s.variants(name)
	if len(variants) == 0 {
		return fmt.Errorf("%w: %q", ErrRouteNotTranslated, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range variants {
		lr, ok := s.routes[routeKey{router: r, method: method, shape: v.shape}]
		if !ok {
			continue
		}
		if b, taken := lr.binding(v.locale); taken {
			return fmt.Errorf("%w: %s %s in locale %q is served by route %q",
				ErrRouteConflict, method, v.pattern, v.locale, b.name)
		}
	}

	for _, v := range variants {
		key := routeKey{router: r, method: method, shape: v.shape}
		lr, ok := s.routes[key]
		if !ok {
			lr = &localizedRoute{params: v.params, bindings: make(map[string]routeBinding), first: v.locale}
			s.routes[key] = lr
			r.Method(method, v.pattern, lr)
		}
		lr.bind(v.locale, routeBinding{name: name, params: v.params, handler: h})

		s.log.Debug("localized route registered",
			slog.String("route", name),
			slog.String("method", method),
			slog.String("pattern", v.pattern),
			slog.String("locale", v.locale),
		)
	}
	return nil
}

// HandleFunc is Handle for handler functions.
func (s *Service) HandleFunc(r chi.Router, method, name string, h http.HandlerFunc) error {
	return s.Handle(r, method, name, h)
}

// variants returns the chi patterns of name per locale in registration
// order. Within a locale only the first pattern of each shape is kept.
func (s *Service) variants(name string) []routeVariant {
	type localeShape struct{ locale, shape string }
	seen := make(map[localeShape]struct{})

	var out []routeVariant
	for _, locale := range s.cfg.AvailableLocales {
		tpl, ok := s.translations.Translate(locale, name)
		if !ok {
			continue
		}
		for _, p := range pathtemplate.Parse(tpl).Patterns() {
			shape := pathtemplate.Shape(p)
			if _, dup := seen[localeShape{locale, shape}]; dup {
				continue
			}
			seen[localeShape{locale, shape}] = struct{}{}
			out = append(out, routeVariant{
				locale:  locale,
				pattern: p,
				shape:   shape,
				params:  pathtemplate.Parse(p).Params(),
			})
		}
	}
	return out
}

func (lr *localizedRoute) binding(locale string) (routeBinding, bool) {
	lr.mu.RLock()
	defer lr.mu.RUnlock()
	b, ok := lr.bindings[locale]
	return b, ok
}

func (lr *localizedRoute) bind(locale string, b routeBinding) {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	lr.bindings[locale] = b
}

func (lr *localizedRoute) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	locale := lr.first
	if l := LocalizeFromContext(r.Context()); l != nil {
		locale = l.Current()
	}

	b, ok := lr.binding(locale)
	if !ok {
		http.NotFound(w, r)
		return
	}

	renameParams(chi.RouteContext(r.Context()), lr.params, b.params)
	if rt := RouterFromContext(r.Context()); rt != nil {
		rt.setRouteName(b.name)
	}
	b.handler.ServeHTTP(w, r)
}

// renameParams replaces the placeholder names chi matched with the names of
// the serving locale. The matched route's params are the last keys of the
// route context, in pattern order.
func renameParams(rctx *chi.Context, from, to []string) {
	if rctx == nil || len(from) != len(to) {
		return
	}
	keys := rctx.URLParams.Keys
	offset := len(keys) - len(from)
	if offset < 0 {
		return
	}
	for i, name := range from {
		if keys[offset+i] == name {
			keys[offset+i] = to[i]
		}
	}
}
