package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Healthcheck pings the pool. A nil pool always fails.
func Healthcheck(pool *pgxpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		if pool == nil {
			return ErrPingFailed
		}
		if err := pool.Ping(ctx); err != nil {
			return errors.Join(ErrPingFailed, err)
		}
		return nil
	}
}

// Shutdown adapts pool.Close to a shutdown hook.
func Shutdown(pool *pgxpool.Pool) func(context.Context) error {
	return func(context.Context) error {
		pool.Close()
		return nil
	}
}
