package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses configuration flags from args and returns the remaining
// positional arguments.
//
// Flags:
//
//	-a backend base URL
//	-catalog-address catalog base URL
//	-d local database path
//	-c/-config json file path with configs
//	-env-file .env file path
//	-request-timeout backend request timeout (e.g. "10s")
//	-catalog-rps catalog requests per second
//	-catalog-burst catalog burst size
//	-refresh-interval session refresh interval (e.g. "15m")
//	-seal-key secret used to seal persisted tokens
//	-log-level log level
func ParseFlags(args []string) (*ClientConfig, []string, error) {
	fs := flag.NewFlagSet("animeverse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		backendAddress  string
		catalogAddress  string
		databaseDSN     string
		jsonConfigPath  string
		dotEnvPath      string
		requestTimeout  time.Duration
		catalogRPS      float64
		catalogBurst    int
		refreshInterval time.Duration
		sealKey         string
		logLevel        string
	)

	fs.StringVar(&backendAddress, "a", "", "Backend base URL")
	fs.StringVar(&catalogAddress, "catalog-address", "", "Catalog base URL")
	fs.StringVar(&databaseDSN, "d", "", "Local database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dotEnvPath, "env-file", "", ".env file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Backend request timeout (e.g., 10s)")
	fs.Float64Var(&catalogRPS, "catalog-rps", 0, "Catalog requests per second")
	fs.IntVar(&catalogBurst, "catalog-burst", 0, "Catalog burst size")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Session refresh interval (e.g., 15m)")
	fs.StringVar(&sealKey, "seal-key", "", "Secret used to seal persisted tokens")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &ClientConfig{
		App: ClientApp{
			SealKey:  sealKey,
			LogLevel: logLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    backendAddress,
			RequestTimeout: requestTimeout,
		},
		Catalog: ClientCatalog{
			HTTPAddress:       catalogAddress,
			RequestsPerSecond: catalogRPS,
			Burst:             catalogBurst,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: databaseDSN},
		},
		Workers:      ClientWorkers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
		DotEnvPath:   dotEnvPath,
	}

	return cfg, fs.Args(), nil
}
