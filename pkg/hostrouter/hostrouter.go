package hostrouter

import (
	"net/http"
	"strings"
)

// Routes maps host patterns to HTTP handlers.
// Exact: "api.example.com"
// Wildcard: "*.example.com"
type Routes map[string]http.Handler

// Router dispatches requests by their Host header.
type Router struct {
	exact    map[string]http.Handler
	wildcard map[string]http.Handler // keyed by the suffix after "*."
	fallback http.Handler
}

// New creates a host router. Requests matching no pattern go to fallback,
// or get 404 when fallback is nil.
func New(routes Routes, fallback http.Handler) *Router {
	if fallback == nil {
		fallback = http.NotFoundHandler()
	}
	r := &Router{
		exact:    make(map[string]http.Handler, len(routes)),
		wildcard: make(map[string]http.Handler),
		fallback: fallback,
	}

	for pattern, handler := range routes {
		pattern = strings.Trim(strings.ToLower(strings.TrimSpace(pattern)), ".")
		if pattern == "" || handler == nil {
			continue
		}
		if suffix, ok := strings.CutPrefix(pattern, "*."); ok {
			r.wildcard[suffix] = handler
			continue
		}
		r.exact[pattern] = handler
	}

	return r
}

// Match returns the handler registered for host. An exact pattern wins over
// wildcards; among wildcards the longest matching suffix wins, so
// "*.shop.example.com" beats "*.example.com" for de.shop.example.com.
func (r *Router) Match(host string) (http.Handler, bool) {
	host = normalizeHost(host)

	if h, ok := r.exact[host]; ok {
		return h, true
	}

	for rest := host; ; {
		_, suffix, ok := strings.Cut(rest, ".")
		if !ok {
			break
		}
		if h, ok := r.wildcard[suffix]; ok {
			return h, true
		}
		rest = suffix
	}

	return nil, false
}

// ServeHTTP routes the request by its Host header.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if h, ok := r.Match(req.Host); ok {
		h.ServeHTTP(w, req)
		return
	}
	r.fallback.ServeHTTP(w, req)
}

// normalizeHost strips the port and lowercases host. IPv6 literals keep
// their brackets.
func normalizeHost(host string) string {
	if idx := strings.LastIndex(host, ":"); idx != -1 && !strings.Contains(host[idx:], "]") {
		if !strings.HasPrefix(host, "[") && strings.Count(host, ":") > 1 {
			// Bare IPv6 literal without port.
			return strings.ToLower(host)
		}
		host = host[:idx]
	}
	return strings.ToLower(host)
}
