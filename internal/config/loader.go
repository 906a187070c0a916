package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Load reads configuration from environment variables, applies defaults for
// unset values, merges non-zero fields of override on top (typically parsed
// command-line flags) and validates the result.
// Returns an error if parsing, merging or validation fails.
func Load(override *Config) (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if override != nil {
		if err := mergo.Merge(cfg, *override, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("config merge: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) normalize() {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Source.FallbackDirs = compact(c.Source.FallbackDirs)
	c.Source.PriorityKeywords = compact(c.Source.PriorityKeywords)
}

// compact trims each entry and removes empty ones.
func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Database validation
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Sprintf("DB_DRIVER (%q) must be one of: %s, %s",
			c.Database.Driver, DriverSQLite, DriverPostgres))
	}
	if c.Database.URL == "" {
		errs = append(errs, "DATABASE_URL is required")
	}
	if c.Database.ConnectTimeout <= 0 {
		errs = append(errs, "DB_CONNECT_TIMEOUT must be positive")
	}

	// Source validation
	if c.Source.PrimaryDir == "" {
		errs = append(errs, "SOURCE_DIR is required")
	}
	if c.Source.Pattern == "" {
		errs = append(errs, "SOURCE_PATTERN is required")
	} else if _, err := filepath.Match(c.Source.Pattern, ""); err != nil {
		errs = append(errs, fmt.Sprintf("SOURCE_PATTERN (%q) is not a valid glob", c.Source.Pattern))
	}

	// Ingest validation
	if c.Ingest.RowCap <= 0 {
		errs = append(errs, "INGEST_ROW_CAP must be positive")
	}
	if c.Ingest.BatchSize <= 0 {
		errs = append(errs, "INGEST_BATCH_SIZE must be positive")
	}
	if c.Ingest.MaxReportedErrors < 0 {
		errs = append(errs, "INGEST_MAX_REPORTED_ERRORS must be non-negative")
	}
	if c.Ingest.MaxFileSize <= 0 {
		errs = append(errs, "INGEST_MAX_FILE_SIZE must be positive")
	}

	// Demo validation
	if c.Demo.Enabled {
		if c.Demo.Username == "" || c.Demo.Email == "" {
			errs = append(errs, "DEMO_USERNAME and DEMO_EMAIL are required when DEMO_ENABLED is true")
		}
		if c.Demo.BcryptCost < 4 || c.Demo.BcryptCost > 31 {
			errs = append(errs, fmt.Sprintf("DEMO_BCRYPT_COST (%d) must be 4-31", c.Demo.BcryptCost))
		}
		if c.Demo.FavoriteLimit < 0 {
			errs = append(errs, "DEMO_FAVORITE_LIMIT must be non-negative")
		}
	}

	// Remote validation
	if c.Remote.Enabled() {
		if c.Remote.Bucket == "" {
			errs = append(errs, "REMOTE_BUCKET is required when REMOTE_ENDPOINT is set")
		}
		if c.Remote.AccessKey == "" || c.Remote.SecretKey == "" {
			errs = append(errs, "REMOTE_ACCESS_KEY and REMOTE_SECRET_KEY are required when REMOTE_ENDPOINT is set")
		}
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a safe string representation of the config for logging.
// Sensitive values like database URLs and secrets are masked.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Database: {Driver: %q, URL: [MASKED]}, ", c.Database.Driver))
	b.WriteString(fmt.Sprintf("Source: {PrimaryDir: %q, FallbackDirs: %q, Pattern: %q}, ",
		c.Source.PrimaryDir, c.Source.FallbackDirs, c.Source.Pattern))
	b.WriteString(fmt.Sprintf("Ingest: {RowCap: %d, BatchSize: %d}, ",
		c.Ingest.RowCap, c.Ingest.BatchSize))
	b.WriteString(fmt.Sprintf("Demo: {Enabled: %v, Username: %q}, ", c.Demo.Enabled, c.Demo.Username))
	b.WriteString(fmt.Sprintf("Remote: {Enabled: %v, Bucket: %q, Secret: [MASKED]}, ",
		c.Remote.Enabled(), c.Remote.Bucket))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}",
		c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
