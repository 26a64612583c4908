// Package cookie reads and writes plain HTTP cookies with shared attributes.
//
// The localization service stores the chosen locale in a persistent cookie.
// Scope the manager to the base domain so every locale subdomain sees it:
//
//	m := cookie.New(cookie.WithDomain("example.com"), cookie.WithSecure(true))
//	m.SetForever(w, "locale", "de")
//
//	locale, err := m.Get(r, "locale")
//	if errors.Is(err, cookie.ErrNotFound) {
//		// no preference stored yet
//	}
package cookie
