package hostrouter

import (
	"net"
	"net/http"
	"strings"
)

// GetDomain returns the normalized domain from the request Host header.
// Strips port, handles IPv6, and converts to lowercase.
//
// Examples:
//
//	"example.com:8080" -> "example.com"
//	"[::1]:8080" -> "[::1]"
//	"Example.COM" -> "example.com"
func GetDomain(r *http.Request) string {
	return normalizeHost(r.Host)
}

// GetSubdomain extracts the subdomain from a request given a base domain.
// Returns empty string if host doesn't match the base domain or has no subdomain.
//
// Examples:
//
//	GetSubdomain(req, "example.com") // req.Host = "foo.example.com" -> "foo"
//	GetSubdomain(req, "example.com") // req.Host = "bar.foo.example.com" -> "bar.foo"
//	GetSubdomain(req, "example.com") // req.Host = "example.com" -> ""
//	GetSubdomain(req, "example.com") // req.Host = "other.com" -> ""
func GetSubdomain(r *http.Request, baseDomain string) string {
	sub, ok := strings.CutSuffix(normalizeHost(r.Host), "."+strings.ToLower(baseDomain))
	if !ok {
		return ""
	}
	return sub
}

// GetLocaleLabel returns the left-most label of the request host, the label
// reserved for the locale.
//
// With a base domain only the part in front of it is considered, so the apex
// and foreign hosts yield an empty string. Without a base domain the first
// label of the host is returned as is, except for IP literals, which carry
// no locale label.
//
// Examples:
//
//	GetLocaleLabel(req, "example.com") // req.Host = "de.example.com" -> "de"
//	GetLocaleLabel(req, "example.com") // req.Host = "de.shop.example.com" -> "de"
//	GetLocaleLabel(req, "example.com") // req.Host = "example.com" -> ""
//	GetLocaleLabel(req, "")            // req.Host = "de.example.com:8080" -> "de"
//	GetLocaleLabel(req, "")            // req.Host = "127.0.0.1:8080" -> ""
func GetLocaleLabel(r *http.Request, baseDomain string) string {
	host := normalizeHost(r.Host)
	if baseDomain != "" {
		host = GetSubdomain(r, baseDomain)
	} else if isIPLiteral(host) {
		return ""
	}
	label, _, _ := strings.Cut(host, ".")
	return label
}

func isIPLiteral(host string) bool {
	return net.ParseIP(strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")) != nil
}
