// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Storage backend identifiers accepted in [Storage.Backend].
const (
	// BackendFile keeps every persisted slot in its own file inside the
	// data directory. This is the default backend.
	BackendFile = "file"

	// BackendSQLite keeps all persisted slots in a single local SQLite
	// database file.
	BackendSQLite = "sqlite"
)

// StructuredConfig is the top-level configuration container for the
// go-task-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log file location
	// and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend holding the
	// todo, note and theme slots.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogFile is the path of the client log file. The TUI owns the
	// terminal, so logs go to a file rather than stdout. When empty the
	// file is created next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Printed at startup.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds the configuration of the persistence backend.
type Storage struct {
	// Backend selects the persistence implementation: [BackendFile] or
	// [BackendSQLite]. Empty means [BackendFile].
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DB holds the local SQLite settings, used when Backend is
	// [BackendSQLite].
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system settings, used when Backend is
	// [BackendFile].
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local SQLite backend.
type DB struct {
	// DSN is the SQLite data source name, usually a plain file path
	// (e.g. "keeper.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the file backend.
type Files struct {
	// DataDir is the directory where persisted slots are stored, one
	// file per slot key.
	// Env: STORAGE_FILES_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
