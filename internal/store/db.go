// Package store is the persistence layer for the food catalog. It opens a
// database/sql handle for either SQLite (go-sqlite3) or PostgreSQL (pgx
// stdlib), applies the embedded migrations and exposes typed queries built
// with squirrel.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/JonMunkholm/foodseed/internal/config"
	"github.com/JonMunkholm/foodseed/internal/logging"
	"github.com/JonMunkholm/foodseed/migrations"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrUnsupportedDriver is returned by Open for drivers other than
	// sqlite3 and pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// DB is the single connection handle shared by every component of a run.
type DB struct {
	*sql.DB
	driver string
	logger *logging.Logger
}

// Open connects to the configured database and verifies the connection with
// a ping bounded by cfg.ConnectTimeout. The pool is limited to one open
// connection; a run is a single sequential writer.
func Open(ctx context.Context, cfg config.DatabaseConfig, log *logging.Logger) (*DB, error) {
	dsn := cfg.URL

	switch cfg.Driver {
	case config.DriverSQLite:
		if err := ensureParentDir(dsn); err != nil {
			log.Err(err).Str("func", "store.Open").Msg("error creating database directory")
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		dsn = sqliteDSN(dsn)
	case config.DriverPostgres:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	conn, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "store.Open").Msg("error opening database")
		return nil, fmt.Errorf("open database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "store.Open").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Debug().Str("driver", cfg.Driver).Msg("connected to database")

	return Wrap(conn, cfg.Driver, log), nil
}

// Wrap adapts an existing *sql.DB, typically one produced by sqlmock in tests.
func Wrap(conn *sql.DB, driver string, log *logging.Logger) *DB {
	if log == nil {
		log = logging.Nop()
	}
	return &DB{DB: conn, driver: driver, logger: log}
}

// Driver returns the database/sql driver name the handle was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Queries returns a query set bound to the connection itself (outside any
// transaction).
func (db *DB) Queries() *Queries {
	return New(db.DB, db.driver)
}

// Migrate brings the schema up to date. Safe to call on every start.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver, gooseLogger{db.logger})
}

// MigrationVersion reports the latest applied schema version.
func (db *DB) MigrationVersion(ctx context.Context) (int64, error) {
	return migrations.Version(ctx, db.DB, db.driver)
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off per
// connection unless asked.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys=") || strings.Contains(path, "_fk=") {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

func ensureParentDir(dsn string) error {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// gooseLogger routes goose's printf-style output into zerolog.
type gooseLogger struct {
	log *logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("component", "migrations").Msgf(strings.TrimSpace(format), v...)
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Str("component", "migrations").Msgf(strings.TrimSpace(format), v...)
}
