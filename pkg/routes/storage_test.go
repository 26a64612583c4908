package routes_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localization/pkg/routes"
	"github.com/dmitrymomot/localization/pkg/storage"
)

type fakeStorage struct {
	objects map[string]string
	err     error
}

func (s *fakeStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	if s.err != nil {
		return nil, s.err
	}
	obj, ok := s.objects[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(strings.NewReader(obj)), nil
}

func TestStorageSource(t *testing.T) {
	t.Parallel()

	t.Run("reads published objects", func(t *testing.T) {
		t.Parallel()

		store := &fakeStorage{objects: map[string]string{
			"de/routes.yaml": "good_morning: guten-morgen\nblog:\n  post: blog/{slug}\n",
		}}

		got, err := routes.FromStorage(store, "en", "de").Load(context.Background())
		require.NoError(t, err)
		require.Equal(t, routes.Entries{
			"de": {"good_morning": "guten-morgen", "blog.post": "blog/{slug}"},
		}, got)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		store := &fakeStorage{objects: map[string]string{"de/routes.yaml": "- a\n- b\n"}}
		_, err := routes.FromStorage(store, "de").Load(context.Background())
		require.ErrorIs(t, err, routes.ErrSourceFailed)
		require.ErrorIs(t, err, routes.ErrInvalidFile)
	})

	t.Run("oversized object", func(t *testing.T) {
		t.Parallel()

		// Cut at the size limit this would still be valid YAML.
		var b strings.Builder
		for i := 0; b.Len() <= 1<<20; i++ {
			fmt.Fprintf(&b, "route_%d: path-%d\n", i, i)
		}
		store := &fakeStorage{objects: map[string]string{"de/routes.yaml": b.String()}}

		_, err := routes.FromStorage(store, "de").Load(context.Background())
		require.ErrorIs(t, err, routes.ErrSourceFailed)
		require.ErrorIs(t, err, routes.ErrInvalidFile)
	})

	t.Run("object at the size limit", func(t *testing.T) {
		t.Parallel()

		line := "good_morning: guten-morgen\n"
		obj := line + strings.Repeat("#", 1<<20-len(line))
		store := &fakeStorage{objects: map[string]string{"de/routes.yaml": obj}}

		got, err := routes.FromStorage(store, "de").Load(context.Background())
		require.NoError(t, err)
		require.Equal(t, "guten-morgen", got["de"]["good_morning"])
	})

	t.Run("storage error", func(t *testing.T) {
		t.Parallel()

		store := &fakeStorage{err: errors.Join(storage.ErrAccessDenied, errors.New("403"))}
		_, err := routes.FromStorage(store, "de").Load(context.Background())
		require.ErrorIs(t, err, routes.ErrSourceFailed)
		require.ErrorIs(t, err, storage.ErrAccessDenied)
	})
}
