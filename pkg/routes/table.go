package routes

import (
	"maps"
	"slices"
)

// Entries maps locale to route name to path template.
type Entries map[string]map[string]string

// Set adds or replaces a single path template.
func (e Entries) Set(locale, name, path string) {
	if e[locale] == nil {
		e[locale] = make(map[string]string)
	}
	e[locale][name] = path
}

// Merge copies other into e. Entries from other win on conflict.
func (e Entries) Merge(other Entries) {
	for locale, paths := range other {
		for name, path := range paths {
			e.Set(locale, name, path)
		}
	}
}

// Table is an immutable route translation table. The zero value and a nil
// *Table are empty tables.
type Table struct {
	entries Entries
	size    int
}

// NewTable copies entries into a new table. Empty paths are skipped.
func NewTable(entries Entries) *Table {
	t := &Table{entries: make(Entries, len(entries))}
	for locale, paths := range entries {
		for name, path := range paths {
			if name == "" || path == "" {
				continue
			}
			t.entries.Set(locale, name, path)
			t.size++
		}
	}
	return t
}

// Has reports whether name has a path template in locale.
func (t *Table) Has(locale, name string) bool {
	_, ok := t.Translate(locale, name)
	return ok
}

// Translate returns the path template of name in locale.
func (t *Table) Translate(locale, name string) (string, bool) {
	if t == nil {
		return "", false
	}
	path, ok := t.entries[locale][name]
	return path, ok
}

// Locales returns the locales present in the table, sorted.
func (t *Table) Locales() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.entries))
}

// Names returns the route names translated in locale, sorted.
func (t *Table) Names(locale string) []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.entries[locale]))
}

// Len returns the number of path templates across all locales.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}
