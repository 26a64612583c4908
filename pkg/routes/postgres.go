package routes

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DefaultTable is the table created by the bundled migrations.
const DefaultTable = "route_translations"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrations returns the goose migrations creating DefaultTable.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// Querier is the part of *pgxpool.Pool used by PostgresSource.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Execer is the part of *pgxpool.Pool used by SaveToPostgres.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresSource reads (locale, name, path) rows from a table.
type PostgresSource struct {
	db    Querier
	query string
}

// FromPostgres creates a source reading table. An empty table selects DefaultTable.
func FromPostgres(db Querier, table string) *PostgresSource {
	if table == "" {
		table = DefaultTable
	}
	return &PostgresSource{
		db:    db,
		query: "SELECT locale, name, path FROM " + pgx.Identifier{table}.Sanitize(),
	}
}

// Load implements Source.
func (s *PostgresSource) Load(ctx context.Context) (Entries, error) {
	rows, err := s.db.Query(ctx, s.query)
	if err != nil {
		return nil, errors.Join(ErrSourceFailed, fmt.Errorf("query route translations: %w", err))
	}
	defer rows.Close()

	out := make(Entries)
	for rows.Next() {
		var locale, name, path string
		if err := rows.Scan(&locale, &name, &path); err != nil {
			return nil, errors.Join(ErrSourceFailed, fmt.Errorf("scan route translation: %w", err))
		}
		out.Set(locale, name, path)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrSourceFailed, err)
	}

	return out, nil
}

// SaveToPostgres upserts entries into table. An empty table selects DefaultTable.
func SaveToPostgres(ctx context.Context, db Execer, table string, entries Entries) error {
	if table == "" {
		table = DefaultTable
	}
	query := "INSERT INTO " + pgx.Identifier{table}.Sanitize() + ` (locale, name, path, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (locale, name) DO UPDATE SET path = EXCLUDED.path, updated_at = now()`

	for locale, paths := range entries {
		for name, path := range paths {
			if _, err := db.Exec(ctx, query, locale, name, path); err != nil {
				return errors.Join(ErrSourceFailed, fmt.Errorf("save route %q (%s): %w", name, locale, err))
			}
		}
	}
	return nil
}
