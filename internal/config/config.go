// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage drivers understood by the client.
const (
	// DriverSQLite keeps the notes slot in a SQLite database.
	DriverSQLite = "sqlite"
	// DriverFile keeps the notes slot in a JSON document on disk.
	DriverFile = "file"
)

// StructuredConfig is the top-level configuration container for the
// go-note-keeper client. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the remote notes endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration of the local key-value slot store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for the auto-refresh job.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the file the client appends its JSON log to. Relative
	// paths are resolved next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings for the remote notes endpoint.
type Adapter struct {
	// NotesURL is the full URL answered by GET with the note list.
	// Env: ADAPTER_NOTES_URL
	NotesURL string `env:"NOTES_URL"`

	// RequestTimeout bounds a single fetch (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the local persistence substrate.
type Storage struct {
	// Driver selects the key-value backend: [DriverSQLite] or [DriverFile].
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// SlotKey is the key under which the notes snapshot is stored.
	// Env: STORAGE_SLOT_KEY
	SlotKey string `env:"SLOT_KEY"`

	// DB holds the SQLite settings used by [DriverSQLite].
	DB DB `envPrefix:"DB_"`

	// Files holds the JSON file settings used by [DriverFile].
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the SQLite backend.
type DB struct {
	// DSN is the SQLite database file (or DSN) path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system settings for the JSON slot file.
type Files struct {
	// Path is the slot file location. ":memory:" keeps slots in memory.
	// Env: STORAGE_FILES_PATH
	Path string `env:"PATH"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// AutoRefreshInterval is the pause before every auto-refresh tick.
	// Env: WORKERS_AUTO_REFRESH_INTERVAL
	AutoRefreshInterval time.Duration `env:"AUTO_REFRESH_INTERVAL"`

	// AutoRefreshOnStart enables auto-refresh right after startup.
	// Env: WORKERS_AUTO_REFRESH_ON_START
	AutoRefreshOnStart bool `env:"AUTO_REFRESH_ON_START"`
}

// defaultConfig returns the built-in defaults. They are merged first, so
// every other source overrides them.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
			LogFile:  "notes-client.log",
		},
		Adapter: Adapter{
			NotesURL:       "https://mej1g.wiremockapi.cloud/notes",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			Driver:  DriverSQLite,
			SlotKey: "notes_json",
			DB:      DB{DSN: "notes.db"},
			Files:   Files{Path: "notes_prefs.json"},
		},
		Workers: Workers{
			AutoRefreshInterval: time.Minute,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
