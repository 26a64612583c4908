// Package urlcodec splits URLs into their components and assembles them back.
//
// It also owns the host rewriting used for locale subdomains: the locale always
// occupies the left-most label of the host, in front of the base domain.
//
//	u, _ := urlcodec.Parse("http://foo.example.com/path?q=1")
//	u.Host = urlcodec.InjectLocale(u.Host, "en", "example.com")
//	u.String() // "http://en.example.com/path?q=1"
//
// When no base domain is configured the last two host labels are treated as
// the registrable domain. Hosts with a single label, like "localhost", keep
// the whole host and get the locale prepended.
package urlcodec
