package routes_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localization/pkg/routes"
)

func TestStore(t *testing.T) {
	t.Parallel()

	t.Run("empty before reload", func(t *testing.T) {
		t.Parallel()

		store := routes.NewStore(routes.WithSource(routes.Static(routes.Entries{"en": {"a": "a"}})))
		require.False(t, store.Has("en", "a"))
		require.Zero(t, store.Table().Len())
		require.ErrorIs(t, store.Healthcheck()(context.Background()), routes.ErrEmptyTable)

		require.NoError(t, store.Reload(context.Background()))
		require.NoError(t, store.Healthcheck()(context.Background()))
	})

	t.Run("later sources win", func(t *testing.T) {
		t.Parallel()

		store := routes.NewStore(routes.WithSource(
			routes.Static(routes.Entries{"de": {"good_morning": "guten-morgen", "hello_user": "hallo/{username}"}}),
			routes.Static(routes.Entries{"de": {"good_morning": "morgen"}}),
		))
		require.NoError(t, store.Reload(context.Background()))

		path, ok := store.Translate("de", "good_morning")
		require.True(t, ok)
		require.Equal(t, "morgen", path)
		require.True(t, store.Has("de", "hello_user"))
	})

	t.Run("failed reload keeps previous table", func(t *testing.T) {
		t.Parallel()

		var fail atomic.Bool
		src := routes.SourceFunc(func(context.Context) (routes.Entries, error) {
			if fail.Load() {
				return nil, errors.New("boom")
			}
			return routes.Entries{"en": {"a": "a"}}, nil
		})

		store := routes.NewStore(routes.WithSource(src))
		require.NoError(t, store.Reload(context.Background()))

		fail.Store(true)
		err := store.Reload(context.Background())
		require.ErrorIs(t, err, routes.ErrReloadFailed)
		require.True(t, store.Has("en", "a"))
	})

	t.Run("concurrent reloads share a load", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		release := make(chan struct{})
		src := routes.SourceFunc(func(context.Context) (routes.Entries, error) {
			calls.Add(1)
			<-release
			return routes.Entries{"en": {"a": "a"}}, nil
		})
		store := routes.NewStore(routes.WithSource(src))

		var wg sync.WaitGroup
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = store.Reload(context.Background())
			}()
		}

		require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		require.LessOrEqual(t, calls.Load(), int32(5))
		require.True(t, store.Has("en", "a"))
	})
}

func TestStoreSchedule(t *testing.T) {
	t.Parallel()

	t.Run("invalid expression", func(t *testing.T) {
		t.Parallel()

		store := routes.NewStore()
		require.ErrorIs(t, store.Schedule("every now and then"), routes.ErrInvalidSchedule)
	})

	t.Run("reloads periodically", func(t *testing.T) {
		t.Parallel()

		var version atomic.Int32
		src := routes.SourceFunc(func(context.Context) (routes.Entries, error) {
			if version.Load() == 0 {
				return routes.Entries{"de": {"good_morning": "guten-morgen"}}, nil
			}
			return routes.Entries{"de": {"good_morning": "morgen"}}, nil
		})

		store := routes.NewStore(routes.WithSource(src), routes.WithReloadTimeout(time.Second))
		require.NoError(t, store.Reload(context.Background()))
		require.NoError(t, store.Schedule("@every 1s"))
		t.Cleanup(func() { _ = store.Stop(context.Background()) })

		version.Store(1)
		require.Eventually(t, func() bool {
			path, _ := store.Translate("de", "good_morning")
			return path == "morgen"
		}, 3*time.Second, 50*time.Millisecond)
	})

	t.Run("stop without schedule", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, routes.NewStore().Shutdown()(context.Background()))
	})
}
