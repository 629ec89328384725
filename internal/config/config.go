// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client behaviour switches and presentation settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote API address and request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local durable storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Feed holds feed loading settings.
	Feed Feed `envPrefix:"FEED_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// RollbackTokenOnLoadFailure clears the freshly issued token when signup
	// or login succeeds but loading the user or profile afterwards fails.
	// Off by default: the token is kept so that a later load can succeed.
	// Env: APP_ROLLBACK_TOKEN_ON_LOAD_FAILURE
	RollbackTokenOnLoadFailure bool `env:"ROLLBACK_TOKEN_ON_LOAD_FAILURE"`

	// Currency is the ISO 4217 code used to render profile amounts.
	// Env: APP_CURRENCY
	Currency string `env:"CURRENCY"`

	// LogFile is the path of the client log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings of the HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the remote API
	// (e.g. "http://localhost:8000"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout overrides the transport timeout. Zero keeps the
	// platform default.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local storage settings.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings of the local SQLite database used to persist
// the session token.
type DB struct {
	// DSN is the SQLite file path (e.g. "okto.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Feed holds news feed settings.
type Feed struct {
	// PageSize bounds the number of articles requested per load.
	// Env: FEED_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// RefreshInterval enables periodic feed reloads when positive.
	// Env: FEED_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Default values applied before any other source.
const (
	DefaultHTTPAddress = "http://localhost:8000"
	DefaultDSN         = "okto.db"
	DefaultPageSize    = 20
	DefaultCurrency    = "DKK"
	DefaultLogFile     = "logs"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Currency: DefaultCurrency,
			LogFile:  DefaultLogFile,
		},
		Adapter: Adapter{HTTPAddress: DefaultHTTPAddress},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Feed:    Feed{PageSize: DefaultPageSize},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
