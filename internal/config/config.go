// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-user-directory client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds UI-level settings such as how long notices stay visible.
	App App `envPrefix:"APP_"`

	// Adapter holds the addresses and timeout used to reach the remote user
	// store and the random identity generator.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds the destination and verbosity of the client log.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// NoticeTTL is how long a transient notice stays on screen
	// (e.g. "3s").
	// Env: APP_NOTICE_TTL
	NoticeTTL time.Duration `env:"NOTICE_TTL"`
}

// Adapter holds outbound transport settings.
type Adapter struct {
	// StoreAddress is the base URL of the JSON collection service that
	// exposes the /users resource (e.g. "http://localhost:3000").
	// Env: ADAPTER_STORE_ADDRESS
	StoreAddress string `env:"STORE_ADDRESS"`

	// IdentityAddress is the full URL of the random identity generator
	// (e.g. "https://randomuser.me/api/").
	// Env: ADAPTER_IDENTITY_ADDRESS
	IdentityAddress string `env:"IDENTITY_ADDRESS"`

	// RequestTimeout bounds every outbound request. Zero disables the
	// timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// File is the path the client log is appended to. Empty means a "logs"
	// file next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Default values applied by [GetClientConfig] to settings left empty by every
// source.
const (
	DefaultStoreAddress    = "http://localhost:3000"
	DefaultIdentityAddress = "https://randomuser.me/api/"
	DefaultLogLevel        = "debug"
	DefaultNoticeTTL       = 3 * time.Second
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
