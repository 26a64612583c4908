package routes

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/localization/pkg/i18n"
	"github.com/dmitrymomot/localization/pkg/storage"
)

// DefaultObjectName is the per-locale object read by StorageSource.
const DefaultObjectName = "routes.yaml"

// maxObjectSize caps a single translation file.
const maxObjectSize = 1 << 20

// StorageSource reads "{locale}/routes.yaml" objects from object storage.
type StorageSource struct {
	store   storage.Storage
	object  string
	locales []string
}

// FromStorage creates a source reading the objects of the given locales.
// Missing objects are skipped.
func FromStorage(store storage.Storage, locales ...string) *StorageSource {
	return &StorageSource{store: store, object: DefaultObjectName, locales: locales}
}

// Load implements Source.
func (s *StorageSource) Load(ctx context.Context) (Entries, error) {
	out := make(Entries, len(s.locales))
	for _, locale := range s.locales {
		key := locale + "/" + s.object
		paths, err := s.read(ctx, key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, errors.Join(ErrSourceFailed, fmt.Errorf("object %q: %w", key, err))
		}
		if len(paths) > 0 {
			out[locale] = paths
		}
	}
	return out, nil
}

func (s *StorageSource) read(ctx context.Context, key string) (map[string]string, error) {
	rc, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxObjectSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxObjectSize {
		return nil, fmt.Errorf("%w: larger than %d bytes", ErrInvalidFile, maxObjectSize)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return i18n.Flatten(raw), nil
}
