package cookie

import (
	"errors"
	"net/http"
	"time"
)

// ErrNotFound is returned by Get when the cookie is absent.
var ErrNotFound = errors.New("cookie: not found")

// Forever is the max age used for persistent cookies: five years, in seconds.
const Forever = int(5 * 365 * 24 * time.Hour / time.Second)

// Manager reads and writes plain cookies sharing one set of attributes.
type Manager struct {
	template http.Cookie
}

// Option adjusts the attributes every cookie is written with.
type Option func(*http.Cookie)

// New creates a Manager. Cookies default to path "/", HttpOnly and SameSite=Lax.
func New(opts ...Option) *Manager {
	m := &Manager{template: http.Cookie{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}}
	for _, opt := range opts {
		opt(&m.template)
	}
	return m
}

// WithDomain sets the cookie domain. Use the base domain to share the cookie
// between locale subdomains.
func WithDomain(domain string) Option {
	return func(c *http.Cookie) { c.Domain = domain }
}

// WithPath sets the cookie path.
func WithPath(path string) Option {
	return func(c *http.Cookie) { c.Path = path }
}

// WithSecure sets the Secure flag.
func WithSecure(secure bool) Option {
	return func(c *http.Cookie) { c.Secure = secure }
}

// WithHTTPOnly sets the HttpOnly flag.
func WithHTTPOnly(httpOnly bool) Option {
	return func(c *http.Cookie) { c.HttpOnly = httpOnly }
}

// WithSameSite sets the SameSite attribute.
func WithSameSite(ss http.SameSite) Option {
	return func(c *http.Cookie) { c.SameSite = ss }
}

// Get returns the value of the named cookie or ErrNotFound.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	switch {
	case errors.Is(err, http.ErrNoCookie):
		return "", ErrNotFound
	case err != nil:
		return "", err
	}
	return c.Value, nil
}

// Set queues a cookie on the response. A zero maxAge makes it a session cookie.
func (m *Manager) Set(w http.ResponseWriter, name, value string, maxAge int) {
	c := m.template
	c.Name, c.Value, c.MaxAge = name, value, maxAge
	http.SetCookie(w, &c)
}

// SetForever queues a cookie that expires after five years.
func (m *Manager) SetForever(w http.ResponseWriter, name, value string) {
	m.Set(w, name, value, Forever)
}

// Delete expires the named cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	m.Set(w, name, "", -1)
}
