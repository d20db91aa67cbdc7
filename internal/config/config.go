// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// atmost-notes application. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags
// and an optional configuration file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log destination.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local database and the note
	// exchange directory handling.
	Storage Storage `envPrefix:"STORAGE_"`

	// Assistant holds the settings of the remote text-generation API used by
	// the AI writing-assistant panel.
	Assistant Assistant `envPrefix:"ASSISTANT_"`

	// Security holds the password hashing parameters.
	Security Security `envPrefix:"SECURITY_"`

	// UI holds presentation defaults applied to every new session.
	UI UI `envPrefix:"UI_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. When non-empty, the file is parsed and merged on top of the
	// values already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds process-level configuration values.
type App struct {
	// LogFile is the path of the JSON log file. Empty places a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds settings for note import and export.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the SQLite database.
type DB struct {
	// DSN is the SQLite database file path or URI
	// (e.g. "atmostnotes.db" or "file:notes.db?_foreign_keys=on").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds settings for the note exchange directory.
type Files struct {
	// ImportPattern is the doublestar glob matched against file names in an
	// import directory (e.g. "*.html" or "**/*.html").
	// Env: STORAGE_FILES_IMPORT_PATTERN
	ImportPattern string `env:"IMPORT_PATTERN"`
}

// Assistant holds the settings of the generative-text API.
type Assistant struct {
	// URL is the base models endpoint of the Gemini API.
	// Env: ASSISTANT_URL
	URL string `env:"URL"`

	// Model is the model name appended to URL
	// (e.g. "gemini-1.5-flash-latest").
	// Env: ASSISTANT_MODEL
	Model string `env:"MODEL"`

	// APIKey is sent as the "key" query parameter. Must be kept confidential.
	// Env: ASSISTANT_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds a single generation round trip (e.g. "60s").
	// Env: ASSISTANT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Security holds the Argon2id parameters used for password digests.
type Security struct {
	// HashTime is the Argon2id time cost (iterations).
	// Env: SECURITY_HASH_TIME
	HashTime uint32 `env:"HASH_TIME"`

	// HashMemoryKiB is the Argon2id memory cost in KiB.
	// Env: SECURITY_HASH_MEMORY_KIB
	HashMemoryKiB uint32 `env:"HASH_MEMORY_KIB"`

	// HashThreads is the Argon2id parallelism.
	// Env: SECURITY_HASH_THREADS
	HashThreads uint8 `env:"HASH_THREADS"`
}

// UI holds presentation defaults.
type UI struct {
	// Theme is the initial theme name: Light, Dark or Custom.
	// Env: UI_THEME
	Theme string `env:"THEME"`

	// AIDisabled starts sessions with the assistant panel switched off.
	// Env: UI_AI_DISABLED
	AIDisabled bool `env:"AI_DISABLED"`
}

// Defaults returns the configuration used when no other source sets a field.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB:    DB{DSN: "atmostnotes.db"},
			Files: Files{ImportPattern: "*.html"},
		},
		Assistant: Assistant{
			URL:            "https://generativelanguage.googleapis.com/v1beta/models",
			Model:          "gemini-1.5-flash-latest",
			RequestTimeout: 60 * time.Second,
		},
		Security: Security{
			HashTime:      1,
			HashMemoryKiB: 64 * 1024,
			HashThreads:   4,
		},
		UI: UI{Theme: "Light"},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (args, without the program name)
//  4. Configuration file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
