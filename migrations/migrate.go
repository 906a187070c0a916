// Package migrations owns the catalog schema. The SQL is embedded per dialect
// and applied with goose, which records applied versions so running Migrate
// again is a no-op.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// dialects maps a database/sql driver name to the goose dialect and the
// embedded directory holding its migrations.
var dialects = map[string]struct {
	goose string
	dir   string
}{
	"sqlite3": {goose: "sqlite3", dir: "sqlite"},
	"pgx":     {goose: "postgres", dir: "postgres"},
}

// Migrate applies every pending migration for driver. A nil logger silences goose.
func Migrate(ctx context.Context, db *sql.DB, driver string, logger goose.Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: nil database handle")
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	if logger == nil {
		logger = goose.NopLogger()
	}
	goose.SetLogger(logger)
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(d.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Version returns the highest applied migration version.
func Version(ctx context.Context, db *sql.DB, driver string) (int64, error) {
	d, ok := dialects[driver]
	if !ok {
		return 0, fmt.Errorf("unsupported driver %q", driver)
	}
	if err := goose.SetDialect(d.goose); err != nil {
		return 0, fmt.Errorf("setting dialect: %w", err)
	}
	return goose.GetDBVersionContext(ctx, db)
}
