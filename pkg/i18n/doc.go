// Package i18n provides an immutable, thread-safe translation catalog and
// Accept-Language negotiation.
//
// The localization service uses it as the store for translated route paths:
// every language keeps its paths under the "routes" namespace, keyed by route
// name. Lookups are O(1) on a flattened "lang:namespace:key" map.
//
// # Basic Usage
//
//	catalog, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithDir(translationsFS),
//	)
//
//	path, ok := catalog.Lookup("de", "routes", "hello_user")
//	// path == "hallo/{username}", ok == true
//
//	title := catalog.T("de-AT", "pages", "good_morning")
//	// "de-AT" falls back to "de", then to the default language
//
// Lookup never falls back to another language. T falls back to the base
// language and then to the default language, returning the key itself when
// nothing is found.
//
// # Files
//
// Load translations from JSON or YAML files in an fs.FS:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	subFS, _ := fs.Sub(translationsFS, "translations")
//	catalog, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithDir(subFS),
//	)
//
// File convention: {lang}/{namespace}.json (or .yaml/.yml). Nested maps are
// flattened using dot notation.
//
// # Accept-Language
//
// MatchAcceptLanguage negotiates a header against the available languages
// using golang.org/x/text/language:
//
//	lang, ok := i18n.MatchAcceptLanguage("de-AT,en;q=0.5", []string{"en", "de"})
//	// lang == "de", ok == true
package i18n
