// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientConfig is the top-level configuration container of the client.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type ClientConfig struct {
	// App holds application-level settings.
	App ClientApp `envPrefix:"APP_"`

	// Adapter holds the backend endpoint and timeout.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Catalog holds the public anime catalog endpoint and its rate limit.
	Catalog ClientCatalog `envPrefix:"CATALOG_"`

	// Storage holds local persistence settings.
	Storage ClientStorage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers ClientWorkers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the optional path to a .env file loaded into the process
	// environment before it is parsed. Env: DOTENV_FILE
	DotEnvPath string `env:"DOTENV_FILE"`
}

// ClientApp holds client-side application settings.
type ClientApp struct {
	// SealKey, when set, is the secret from which the key sealing persisted
	// tokens is derived. Env: APP_SEAL_KEY
	SealKey string `env:"SEAL_KEY"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// ClientAdapter holds network settings of the backend transport.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL (e.g. "http://localhost:4000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every backend call. Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientCatalog holds settings of the public catalog transport.
type ClientCatalog struct {
	// HTTPAddress is the catalog base URL. Env: CATALOG_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every catalog call. Env: CATALOG_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RequestsPerSecond is the sustained request rate allowed against the
	// catalog. Env: CATALOG_REQUESTS_PER_SECOND
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND"`

	// Burst is the number of requests allowed at once.
	// Env: CATALOG_BURST
	Burst int `env:"BURST"`
}

// ClientDB contains local database settings.
type ClientDB struct {
	// DSN is the SQLite database file path. Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB `envPrefix:"DB_"`
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the session profile is refreshed.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Defaults returns the built-in configuration.
func Defaults() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:4000",
			RequestTimeout: 10 * time.Second,
		},
		Catalog: ClientCatalog{
			HTTPAddress:       "https://api.jikan.moe",
			RequestTimeout:    10 * time.Second,
			RequestsPerSecond: 3,
			Burst:             1,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: "animeverse.db"},
		},
		Workers: ClientWorkers{RefreshInterval: 15 * time.Minute},
	}
}

// GetClientConfig loads, merges, and validates the client configuration.
// args are the command-line arguments without the program name; the
// arguments left after flag parsing (the command and its operands) are
// returned alongside the config.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	b := newConfigBuilder().
		withFlags(args).
		withDotEnv().
		withEnv().
		withJSON().
		withDefaults()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, fmt.Errorf("error get client config: %w", err)
	}

	return cfg, b.rest, nil
}
