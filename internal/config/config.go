// Package config defines generator configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer sources.
// - External errors must be wrapped via this package's error helpers.
package config

import "context"

// Default generation parameters. They mirror the documented defaults of the
// dataset: 1000 users over a trailing 30-day window, seed 42.
const (
	defaultSeed     = 42
	defaultUsers    = 1000
	defaultDays     = 30
	defaultTopPages = 10
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Seed is the pseudo-random seed. Runs with the same seed, user count
	// and day count reproduce byte-identical tables.
	Seed int64 `koanf:"seed"`

	// Users is the number of synthetic user profiles to generate.
	Users int `koanf:"users"`

	// Days is the length of the trailing calendar window to generate
	// events for.
	Days int `koanf:"days"`

	// OutDir is the directory the parquet tables are written to.
	OutDir string `koanf:"out_dir"`

	// TopPages caps the "top pages" section of the run summary.
	TopPages int `koanf:"top_pages"`

	// ClickHouseAddr enables the optional ClickHouse sink when non-empty,
	// e.g. "localhost:9000". The three tables are batch-inserted in
	// addition to the parquet files.
	ClickHouseAddr     string `koanf:"clickhouse_addr"`
	ClickHouseDatabase string `koanf:"clickhouse_database"`
	ClickHouseUsername string `koanf:"clickhouse_username"`
	ClickHousePassword string `koanf:"clickhouse_password"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and is currently
// unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:           "info",
		Seed:               defaultSeed,
		Users:              defaultUsers,
		Days:               defaultDays,
		OutDir:             ".",
		TopPages:           defaultTopPages,
		ClickHouseDatabase: "analytics",
	}
}
