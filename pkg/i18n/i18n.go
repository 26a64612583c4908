package i18n

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// DefaultLang is the default language code used when no default language is specified.
const DefaultLang = "en"

// I18n is an immutable store of translated strings keyed by language,
// namespace and key. It is safe for concurrent use.
type I18n struct {
	// Flattened translations map for O(1) lookups.
	// Key format: "lang:namespace:key.path"
	translations map[string]string

	// Optional handler called when T cannot find a key in any language.
	missingKeyHandler func(lang, namespace, key string)

	defaultLang string
	languages   []string
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates a new I18n instance with the given options.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	i.languages = i.buildLanguagesList()

	return i, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithMissingKeyHandler sets a handler called when T finds no translation in
// any language, including the default one.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// Lookup returns the translation for exactly the given language, without any
// fallback.
func (i *I18n) Lookup(lang, namespace, key string) (string, bool) {
	v, ok := i.translations[buildKey(lang, namespace, key)]
	return v, ok
}

// T retrieves a translation, falling back to the base language ("de" for
// "de-AT") and then to the default language. Returns the key itself if no
// translation exists.
func (i *I18n) T(lang, namespace, key string) string {
	if v, ok := i.Lookup(lang, namespace, key); ok {
		return v
	}

	if base := baseLanguage(lang); base != lang {
		if v, ok := i.Lookup(base, namespace, key); ok {
			return v
		}
	}

	if lang != i.defaultLang && baseLanguage(lang) != i.defaultLang {
		if v, ok := i.Lookup(i.defaultLang, namespace, key); ok {
			return v
		}
	}

	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}

	return key
}

// Namespace returns a copy of all keys of one namespace in one language.
func (i *I18n) Namespace(lang, namespace string) map[string]string {
	prefix := buildKey(lang, namespace, "")
	out := make(map[string]string)
	for k, v := range i.translations {
		if key, ok := strings.CutPrefix(k, prefix); ok {
			out[key] = v
		}
	}
	return out
}

// Languages returns the list of available languages.
func (i *I18n) Languages() []string {
	return i.languages
}

func (i *I18n) add(lang, namespace string, flattened map[string]string) {
	for key, value := range flattened {
		i.translations[buildKey(lang, namespace, key)] = value
	}
}

func (i *I18n) buildLanguagesList() []string {
	langs := make([]string, 0)
	for k := range i.translations {
		if lang, _, ok := strings.Cut(k, ":"); ok {
			langs = append(langs, lang)
		}
	}
	return sortLanguages(i.defaultLang, langs)
}

func sortLanguages(defaultLang string, langs []string) []string {
	set := make(map[string]bool, len(langs))
	for _, lang := range langs {
		if lang != "" {
			set[lang] = true
		}
	}
	delete(set, defaultLang)

	others := make([]string, 0, len(set))
	for lang := range set {
		others = append(others, lang)
	}
	sort.Strings(others)

	return append([]string{defaultLang}, others...)
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

// Flatten converts nested translation maps into a single-level map with
// dot-separated keys. Non-string leaves are formatted with %v.
func Flatten(data map[string]any) map[string]string {
	return flattenTranslations(data, "")
}

func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTranslations(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}

// baseLanguage strips the region from a language tag ("en-US" -> "en").
func baseLanguage(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}
