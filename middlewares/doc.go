// Package middlewares provides net/http middleware for localized applications.
//
// # Localization
//
// Localization detects the locale of every request and redirects to the
// locale's subdomain when the host addresses another one. Handlers reach the
// per-request detector and router through the context:
//
//	r := chi.NewRouter()
//	r.Use(
//		middlewares.RequestID(),
//		middlewares.Recover(log),
//		middlewares.Localization(svc),
//	)
//
//	func hello(w http.ResponseWriter, r *http.Request) {
//		rt := localization.RouterFromContext(r.Context())
//		versions := rt.CurrentVersions() // locale -> URL of this page
//	}
//
// # Request ID
//
// RequestID assigns a unique ID to each request, keeping an upstream
// X-Request-ID when present. Pair it with RequestIDExtractor and
// LocaleExtractor to tag every log record:
//
//	log := logger.New(middlewares.RequestIDExtractor(), middlewares.LocaleExtractor())
//
// # Recover
//
// Recover turns panics into a logged 500 response.
package middlewares
