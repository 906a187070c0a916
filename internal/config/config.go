// Package config provides centralized configuration management for foodseed.
// It loads configuration from environment variables with sensible defaults,
// lets command-line flags override individual values, and validates the result
// on startup to fail fast on misconfiguration.
package config

import "time"

// Supported database drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Database DatabaseConfig
	Source   SourceConfig
	Ingest   IngestConfig
	Demo     DemoConfig
	Remote   RemoteConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// Driver selects the backend: sqlite3 or pgx (default: sqlite3)
	Driver string `env:"DB_DRIVER" envDefault:"sqlite3"`

	// URL is the connection string. For sqlite3 this is a file path.
	URL string `env:"DATABASE_URL" envDefault:"data/nutrition.db"`

	// ConnectTimeout bounds the initial ping (default: 10s)
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s"`
}

// SourceConfig describes where candidate CSV files are searched for.
type SourceConfig struct {
	// PrimaryDir is searched first (default: current directory)
	PrimaryDir string `env:"SOURCE_DIR" envDefault:"."`

	// FallbackDirs are searched, in order, after the primary directory.
	FallbackDirs []string `env:"SOURCE_FALLBACK_DIRS" envDefault:"data,/data" envSeparator:","`

	// Pattern is the glob matched against file names (default: *.csv)
	Pattern string `env:"SOURCE_PATTERN" envDefault:"*.csv"`

	// PriorityKeywords move matching file names to the front of each set.
	PriorityKeywords []string `env:"SOURCE_PRIORITY_KEYWORDS" envDefault:"branded" envSeparator:","`
}

// IngestConfig holds CSV ingestion settings.
type IngestConfig struct {
	// RowCap is the maximum number of rows processed per file (default: 100000)
	RowCap int `env:"INGEST_ROW_CAP" envDefault:"100000"`

	// BatchSize is the number of successful inserts per commit (default: 500)
	BatchSize int `env:"INGEST_BATCH_SIZE" envDefault:"500"`

	// MaxReportedErrors caps how many row failures are logged per file (default: 5)
	MaxReportedErrors int `env:"INGEST_MAX_REPORTED_ERRORS" envDefault:"5"`

	// MaxFileSize is the largest accepted file in bytes (default: 1GB)
	MaxFileSize int64 `env:"INGEST_MAX_FILE_SIZE" envDefault:"1073741824"`
}

// DemoConfig holds the demonstration user seeded after the catalog load.
type DemoConfig struct {
	Enabled       bool   `env:"DEMO_ENABLED" envDefault:"true"`
	Username      string `env:"DEMO_USERNAME" envDefault:"demo_user"`
	Email         string `env:"DEMO_EMAIL" envDefault:"demo@example.com"`
	Password      string `env:"DEMO_PASSWORD" envDefault:"demo_password"`
	BcryptCost    int    `env:"DEMO_BCRYPT_COST" envDefault:"10"`
	FavoriteLimit int    `env:"DEMO_FAVORITE_LIMIT" envDefault:"5"`
}

// RemoteConfig points at an S3-compatible bucket holding CSV exports.
// Leaving Endpoint empty disables the remote mirror.
type RemoteConfig struct {
	Endpoint  string `env:"REMOTE_ENDPOINT"`
	AccessKey string `env:"REMOTE_ACCESS_KEY"`
	SecretKey string `env:"REMOTE_SECRET_KEY"`
	Bucket    string `env:"REMOTE_BUCKET"`
	Prefix    string `env:"REMOTE_PREFIX"`
	UseSSL    bool   `env:"REMOTE_USE_SSL" envDefault:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Enabled reports whether a remote bucket is configured.
func (r RemoteConfig) Enabled() bool {
	return r.Endpoint != ""
}
