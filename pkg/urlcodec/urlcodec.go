package urlcodec

import (
	"errors"
	"net"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned when a URL string cannot be parsed.
var ErrInvalidURL = errors.New("urlcodec: invalid URL")

// URL holds the components of a parsed URL.
// Path, RawQuery and Fragment are kept in their escaped form.
type URL struct {
	Scheme   string
	User     string
	Password string
	Host     string
	Port     string
	Path     string
	RawQuery string
	Fragment string
}

// Parse decomposes a URL string. An empty string yields the zero URL.
func Parse(raw string) (URL, error) {
	if raw == "" {
		return URL{}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return URL{}, errors.Join(ErrInvalidURL, err)
	}

	out := URL{
		Scheme:   u.Scheme,
		Host:     u.Hostname(),
		Port:     u.Port(),
		Path:     u.EscapedPath(),
		RawQuery: u.RawQuery,
		Fragment: u.EscapedFragment(),
	}
	if u.Opaque != "" {
		out.Path = u.Opaque
	}
	if u.User != nil {
		out.User = u.User.Username()
		out.Password, _ = u.User.Password()
	}

	return out, nil
}

// Unparse assembles the URL string from its components.
// Without scheme, host or credentials the path is emitted as is; otherwise a
// leading slash is enforced on a non-empty path.
func Unparse(u URL) string {
	var b strings.Builder

	if u.Scheme != "" {
		b.WriteString(u.Scheme)
		b.WriteString("://")
	}

	if u.User != "" || u.Password != "" {
		if u.Password != "" {
			b.WriteString(url.UserPassword(u.User, u.Password).String())
		} else {
			b.WriteString(url.User(u.User).String())
		}
		b.WriteByte('@')
	}

	if u.Host != "" {
		if strings.Contains(u.Host, ":") {
			b.WriteByte('[')
			b.WriteString(u.Host)
			b.WriteByte(']')
		} else {
			b.WriteString(u.Host)
		}
	}
	if u.Port != "" {
		b.WriteByte(':')
		b.WriteString(u.Port)
	}

	if u.Path != "" {
		if u.hasAuthority() && !strings.HasPrefix(u.Path, "/") {
			b.WriteByte('/')
		}
		b.WriteString(u.Path)
	}

	if u.RawQuery != "" {
		b.WriteByte('?')
		b.WriteString(u.RawQuery)
	}
	if u.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}

	return b.String()
}

// String is a shortcut for Unparse.
func (u URL) String() string {
	return Unparse(u)
}

// WithoutLocation returns a copy of u without path, query and fragment.
func (u URL) WithoutLocation() URL {
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u
}

func (u URL) hasAuthority() bool {
	return u.Scheme != "" || u.Host != "" || u.User != "" || u.Password != ""
}

// SplitHostPort splits a Host header value into host and port.
// IPv6 brackets are removed from the host; the port is empty when absent.
func SplitHostPort(hostport string) (host, port string) {
	if h, p, err := net.SplitHostPort(hostport); err == nil {
		return h, p
	}
	return strings.TrimSuffix(strings.TrimPrefix(hostport, "["), "]"), ""
}
