package routes

import (
	"context"
	"fmt"
	"io/fs"
	"maps"

	"github.com/dmitrymomot/localization/pkg/i18n"
)

// Namespace is the translation namespace holding route paths.
const Namespace = "routes"

// Source loads route translations from a backing store.
type Source interface {
	Load(ctx context.Context) (Entries, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (Entries, error)

// Load calls f.
func (f SourceFunc) Load(ctx context.Context) (Entries, error) {
	return f(ctx)
}

// Static returns a source serving a copy of entries.
func Static(entries Entries) Source {
	snapshot := make(Entries, len(entries))
	snapshot.Merge(entries)
	return SourceFunc(func(context.Context) (Entries, error) {
		out := make(Entries, len(snapshot))
		out.Merge(snapshot)
		return out, nil
	})
}

// Catalog is the part of *i18n.I18n used to read route translations.
type Catalog interface {
	Languages() []string
	Namespace(lang, namespace string) map[string]string
}

// FromCatalog reads the "routes" namespace of every catalog language.
func FromCatalog(c Catalog) Source {
	return SourceFunc(func(context.Context) (Entries, error) {
		out := make(Entries)
		for _, lang := range c.Languages() {
			if paths := c.Namespace(lang, Namespace); len(paths) > 0 {
				out[lang] = maps.Clone(paths)
			}
		}
		return out, nil
	})
}

// FromDir reads {locale}/routes.{yaml,yml,json} files from fsys.
// Files of other namespaces are ignored.
func FromDir(fsys fs.FS) Source {
	return SourceFunc(func(ctx context.Context) (Entries, error) {
		catalog, err := i18n.New(i18n.WithDir(fsys, Namespace))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
		}
		return FromCatalog(catalog).Load(ctx)
	})
}
