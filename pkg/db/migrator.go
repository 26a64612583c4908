package db

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

// DefaultMigrationsTable records applied versions when no table is configured.
const DefaultMigrationsTable = "localization_migrations"

// Migrate applies every pending migration found at the root of migrations
// and logs each applied version.
func Migrate(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS, table string, log *slog.Logger) error {
	if table == "" {
		table = DefaultMigrationsTable
	}

	store, err := database.NewStore(database.DialectPostgres, table)
	if err != nil {
		return errors.Join(ErrMigrationsFailed, err)
	}

	// Shares the pool's connections; closing it would close the pool.
	sqlDB := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider("", sqlDB, migrations, goose.WithStore(store))
	if err != nil {
		return errors.Join(ErrMigrationsFailed, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return errors.Join(ErrMigrationsFailed, err)
	}

	for _, res := range results {
		log.InfoContext(ctx, "migration applied",
			slog.Int64("version", res.Source.Version),
			slog.String("path", res.Source.Path),
			slog.Duration("duration", res.Duration),
		)
	}
	if len(results) == 0 {
		log.DebugContext(ctx, "no pending migrations", slog.String("table", table))
	}

	return nil
}
