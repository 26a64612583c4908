package routes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/localization/pkg/logger"
)

// DefaultReloadTimeout bounds a scheduled reload.
const DefaultReloadTimeout = 30 * time.Second

// Store serves the current route table and rebuilds it from its sources.
// Lookups never block: a reload builds a new Table and swaps it in.
type Store struct {
	table   atomic.Pointer[Table]
	group   singleflight.Group
	sources []Source
	log     *slog.Logger
	timeout time.Duration

	mu   sync.Mutex
	cron *cron.Cron
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithSource appends sources. Later sources override earlier ones.
func WithSource(sources ...Source) StoreOption {
	return func(s *Store) {
		s.sources = append(s.sources, sources...)
	}
}

// WithLogger sets the logger used for reload results.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithReloadTimeout bounds scheduled reloads. Defaults to DefaultReloadTimeout.
func WithReloadTimeout(d time.Duration) StoreOption {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewStore creates an empty store. Call Reload to fill it.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		log:     logger.NewNope(),
		timeout: DefaultReloadTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.table.Store(NewTable(nil))
	return s
}

// Reload loads every source and swaps in the merged table. Concurrent calls
// share one load. On failure the previous table stays in place.
func (s *Store) Reload(ctx context.Context) error {
	_, err, _ := s.group.Do("reload", func() (any, error) {
		merged := make(Entries)
		for i, src := range s.sources {
			entries, err := src.Load(ctx)
			if err != nil {
				return nil, fmt.Errorf("source #%d: %w", i, err)
			}
			merged.Merge(entries)
		}

		table := NewTable(merged)
		s.table.Store(table)
		s.log.InfoContext(ctx, "route translations loaded",
			slog.Int("routes", table.Len()),
			slog.Any("locales", table.Locales()),
		)
		return table, nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "failed to reload route translations", slog.String("error", err.Error()))
		return errors.Join(ErrReloadFailed, err)
	}
	return nil
}

// Table returns the current table.
func (s *Store) Table() *Table {
	return s.table.Load()
}

// Has reports whether name has a path template in locale.
func (s *Store) Has(locale, name string) bool {
	return s.Table().Has(locale, name)
}

// Translate returns the path template of name in locale.
func (s *Store) Translate(locale, name string) (string, bool) {
	return s.Table().Translate(locale, name)
}

// Healthcheck returns a readiness check failing while the table is empty.
func (s *Store) Healthcheck() func(context.Context) error {
	return func(context.Context) error {
		if s.Table().Len() == 0 {
			return ErrEmptyTable
		}
		return nil
	}
}

// Schedule reloads the store periodically. expr is a five-field cron
// expression or a descriptor such as "@every 5m" or "@hourly".
// Calling Schedule again replaces the previous schedule.
func (s *Store) Schedule(expr string) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	schedule, err := parser.Parse(expr)
	if err != nil {
		return errors.Join(ErrInvalidSchedule, err)
	}

	reload := cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		_ = s.Reload(ctx)
	})

	c := cron.New(cron.WithParser(parser))
	c.Schedule(schedule, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(reload))

	s.mu.Lock()
	prev := s.cron
	s.cron = c
	s.mu.Unlock()

	if prev != nil {
		prev.Stop()
	}
	c.Start()

	s.log.Info("route translations reload scheduled", slog.String("schedule", expr))
	return nil
}

// Stop stops scheduled reloads and waits for a running reload to finish or
// ctx to expire.
func (s *Store) Stop(ctx context.Context) error {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	if c == nil {
		return nil
	}

	select {
	case <-c.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown returns Stop as a shutdown hook.
func (s *Store) Shutdown() func(context.Context) error {
	return s.Stop
}
