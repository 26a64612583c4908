// Package localization adds locale subdomains and translated route paths to
// chi applications.
//
// Every locale lives on its own subdomain (en.example.com, de.example.com)
// and every route has a path per locale:
//
//	de.example.com/guten-morgen
//	en.example.com/good-morning
//
// # Quick Start
//
// Load the route translations, create the Service and register routes by name:
//
//	//go:embed translations
//	var translations embed.FS
//
//	sub, _ := fs.Sub(translations, "translations") // en/routes.yaml, de/routes.yaml
//	store := routes.NewStore(routes.WithSource(routes.FromDir(sub)))
//	if err := store.Reload(ctx); err != nil {
//	    return err
//	}
//
//	svc, err := localization.New(store,
//	    localization.WithAvailableLocales("en", "de"),
//	    localization.WithDomain("example.com"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	r := chi.NewRouter()
//	r.Use(localization.Middleware(svc))
//	_ = svc.HandleFunc(r, http.MethodGet, "good_morning", goodMorning)
//
// # Locale Detection
//
// The locale is taken from the first source that yields an available locale:
//
//  1. the first label of the host
//  2. the locale cookie, when cookie localization is enabled
//  3. the Accept-Language header, when browser localization is enabled
//  4. the fallback locale
//
// A request whose host does not address the detected locale is redirected
// (302, "Vary: Accept-Language") to the same path on the right subdomain.
// The chosen locale is persisted in a long-lived cookie.
//
// # Building URLs
//
// Handlers get the per-request router from the context:
//
//	func goodMorning(w http.ResponseWriter, r *http.Request) {
//	    rt := localization.RouterFromContext(r.Context())
//
//	    u, _ := rt.URL("hello_user", map[string]string{"username": "sam"})
//	    // http://de.example.com/hallo/sam on the de subdomain
//
//	    versions := rt.CurrentVersions()
//	    // {"en": "http://en.example.com/good-morning", "de": "http://de.example.com/guten-morgen"}
//	}
//
// Path templates use "{name}" for required and "{name?}" for optional
// parameters; optional segments without a value are dropped.
//
// # Configuration
//
// LoadConfig reads LOCALIZATION_AVAILABLE_LOCALES, LOCALIZATION_COOKIE,
// LOCALIZATION_BROWSER, LOCALIZATION_COOKIE_NAME, LOCALIZATION_FALLBACK_LOCALE,
// LOCALIZATION_DOMAIN and LOCALIZATION_SCHEME:
//
//	cfg, err := localization.LoadConfig()
//	svc, err := localization.New(store, localization.WithConfig(cfg))
package localization
