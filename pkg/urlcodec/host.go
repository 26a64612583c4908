package urlcodec

import (
	"net"
	"strings"
)

// FirstLabel returns the left-most dot-separated label of host.
func FirstLabel(host string) string {
	label, _, _ := strings.Cut(host, ".")
	return label
}

// IsIP reports whether host, without port, is an IPv4 or IPv6 literal.
// IPv6 brackets are accepted.
func IsIP(host string) bool {
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	return net.ParseIP(host) != nil
}

// CarriesLocale reports whether a locale label can be put on host: always
// with a configured base domain, otherwise unless host is an IP literal.
func CarriesLocale(host, baseDomain string) bool {
	return baseDomain != "" || !IsIP(host)
}

// BaseHost returns the host without its locale label.
//
// With a configured base domain that domain is returned as is. Otherwise the
// last two labels of host are kept (sub.domain.tld -> domain.tld), and hosts
// with fewer than two labels or IP literals are returned unchanged.
func BaseHost(host, baseDomain string) string {
	if baseDomain != "" {
		return baseDomain
	}
	if IsIP(host) {
		return host
	}

	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return host
	}
	return strings.Join(labels[len(labels)-2:], ".")
}

// InjectLocale places locale as the left-most label of the base host,
// replacing any existing subdomain. IP literals without a base domain cannot
// carry a locale and are returned unchanged.
//
//	InjectLocale("foo.example.com", "de", "")             // "de.example.com"
//	InjectLocale("foo.example.co.uk", "de", "example.co.uk") // "de.example.co.uk"
//	InjectLocale("localhost", "de", "")                   // "de.localhost"
func InjectLocale(host, locale, baseDomain string) string {
	base := BaseHost(host, baseDomain)
	switch {
	case !CarriesLocale(host, baseDomain):
		return host
	case locale == "":
		return base
	case base == "":
		return locale
	default:
		return locale + "." + base
	}
}
