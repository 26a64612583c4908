// Package internal implements locale detection and localized routing.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/localization" instead, which re-exports the public API.
//
// # Core Types
//
//   - Service: immutable configuration and route translations, shared by all requests
//   - Localize: per-request locale detector (URL, cookie, browser, fallback)
//   - Router: per-request URL builder for named, translated routes
//
// The Service hands out a fresh Localize and Router for every request, so
// nothing cached while serving one request is visible to another:
//
//	svc, err := internal.New(table,
//		internal.WithAvailableLocales("en", "de"),
//		internal.WithDomain("example.com"),
//	)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		l := svc.Localize(r)
//		if l.ShouldRedirect() {
//			l.DetectLocale(w)
//			http.Redirect(w, r, svc.Router(r, l).RedirectURL(), http.StatusFound)
//			return
//		}
//		l.DetectLocale(w)
//	}
//
// The localization middleware performs exactly this and stores both values
// in the request context (see LocalizeFromContext and RouterFromContext).
//
// # Detection
//
// Detect is pure. Each source is consulted only while no available locale
// has been found: the first host label, then the locale cookie (when cookie
// localization is on), then Accept-Language (when browser localization is
// on), then the fallback locale. Apply activates a locale and persists it in
// the cookie.
//
// # Routes
//
// A route is a name with one path template per locale, for example
// hello_user = "hello/{username}" in en and "hallo/{username}" in de.
// Service.Handle registers all translated paths on a chi router; Router.URL,
// LocalizedURL and Current build absolute URLs on the locale's subdomain.
package internal
