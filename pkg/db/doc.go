// Package db provides PostgreSQL connection and migration helpers.
//
// It wraps [github.com/jackc/pgx/v5/pgxpool] for connection pooling and
// [github.com/pressly/goose/v3] for migrations. The localization service uses
// it to keep route translations in a route_translations table.
//
// # Configuration
//
//	DATABASE_CONN_URL           - PostgreSQL connection URL (empty disables the database)
//	DATABASE_MIGRATIONS_TABLE   - goose version table (default: localization_migrations)
//	DATABASE_MAX_OPEN_CONNS     - Maximum open connections (default: 4)
//	DATABASE_MIN_CONNS          - Minimum idle connections (default: 1)
//	DATABASE_HEALTHCHECK_PERIOD - Health check interval (default: 1m)
//	DATABASE_MAX_CONN_IDLE_TIME - Maximum connection idle time (default: 10m)
//	DATABASE_MAX_CONN_LIFETIME  - Maximum connection lifetime (default: 30m)
//	DATABASE_RETRY_ATTEMPTS     - Connection retry attempts (default: 3)
//	DATABASE_RETRY_INTERVAL     - Base retry interval (default: 5s)
//
// # Usage
//
//	var cfg db.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := db.Migrate(ctx, pool, routes.Migrations(), cfg.MigrationsTable, log); err != nil {
//		return err
//	}
package db
