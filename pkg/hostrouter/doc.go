// Package hostrouter routes requests by Host header and extracts domain parts
// used for locale subdomains.
//
// # Host Patterns
//
// Two pattern types are supported:
//
//   - Exact: "example.com" matches only that host
//   - Wildcard: "*.example.com" matches any locale subdomain (en.example.com, de.example.com)
//
// Exact matches take priority over wildcard matches. Host matching is case-insensitive,
// and ports are stripped before matching.
//
//	router := hostrouter.New(hostrouter.Routes{
//		"*.example.com": localizedApp,
//		"example.com":   localizedApp,
//	}, http.NotFoundHandler())
//
// # Helpers
//
// GetDomain normalizes the Host header, GetSubdomain returns everything in
// front of a base domain, and GetLocaleLabel returns the left-most label which
// carries the locale:
//
//	hostrouter.GetLocaleLabel(r, "example.co.uk") // "de" for de.example.co.uk:8080
//
// IPv6 addresses like "[::1]:8080" keep their brackets during normalization.
package hostrouter
