package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// chdirTemp moves into an empty directory so that no stray .env file is
// picked up by the default dotenv lookup.
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// ── builder ───────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestBuild_DefaultsAreValid(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://first:4000"}},
		&ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://second:4000", RequestTimeout: time.Minute}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://first:4000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_Priority(t *testing.T) {
	chdirTemp(t)

	jsonPath := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"http_address": "http://json:4000", "request_timeout": "3s"},
		"storage": map[string]any{"db": map[string]any{"dsn": "json.db"}},
		"workers": map[string]any{"refresh_interval": "1m"},
	})
	setEnvVars(t, map[string]string{
		"CONFIG":          jsonPath,
		"ADAPTER_ADDRESS": "http://env:4000",
		"STORAGE_DB_DSN":  "env.db",
	})

	cfg, rest, err := GetClientConfig([]string{"-d", "flag.db", "login", "user@x.com"})
	require.NoError(t, err)

	assert.Equal(t, []string{"login", "user@x.com"}, rest)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN, "flags win over env")
	assert.Equal(t, "http://env:4000", cfg.Adapter.HTTPAddress, "env wins over json")
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout, "json wins over defaults")
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "https://api.jikan.moe", cfg.Catalog.HTTPAddress, "defaults fill the rest")
}

func TestGetClientConfig_DotEnv(t *testing.T) {
	chdirTemp(t)

	dotenv := filepath.Join(t.TempDir(), "client.env")
	require.NoError(t, os.WriteFile(dotenv, []byte("APP_LOG_LEVEL=warn\nCATALOG_BURST=4\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("APP_LOG_LEVEL")
		_ = os.Unsetenv("CATALOG_BURST")
	})

	cfg, _, err := GetClientConfig([]string{"-env-file", dotenv})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 4, cfg.Catalog.Burst)
}

func TestGetClientConfig_MissingExplicitDotEnv(t *testing.T) {
	chdirTemp(t)

	_, _, err := GetClientConfig([]string{"-env-file", filepath.Join(t.TempDir(), "nope.env")})
	assert.Error(t, err)
}

func TestGetClientConfig_BadFlag(t *testing.T) {
	chdirTemp(t)

	_, _, err := GetClientConfig([]string{"-request-timeout", "soon"})
	assert.Error(t, err)
}

// ── env ───────────────────────────────────────────────────────────────────────

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG":                      "/path/to/config.json",
		"DOTENV_FILE":                 "/path/to/.env",
		"APP_SEAL_KEY":                "seal",
		"APP_LOG_LEVEL":               "info",
		"ADAPTER_ADDRESS":             "http://localhost:4000",
		"ADAPTER_REQUEST_TIMEOUT":     "30s",
		"CATALOG_ADDRESS":             "https://api.jikan.moe",
		"CATALOG_REQUEST_TIMEOUT":     "5s",
		"CATALOG_REQUESTS_PER_SECOND": "2.5",
		"CATALOG_BURST":               "2",
		"STORAGE_DB_DSN":              "/tmp/animeverse.db",
		"WORKERS_REFRESH_INTERVAL":    "10m",
	})

	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/path/to/.env", cfg.DotEnvPath)
	assert.Equal(t, "seal", cfg.App.SealKey)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "http://localhost:4000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "https://api.jikan.moe", cfg.Catalog.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Catalog.RequestTimeout)
	assert.Equal(t, 2.5, cfg.Catalog.RequestsPerSecond)
	assert.Equal(t, 2, cfg.Catalog.Burst)
	assert.Equal(t, "/tmp/animeverse.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "not-a-duration"})

	err := parseEnv(&ClientConfig{})
	assert.Error(t, err)
}

// ── flags ─────────────────────────────────────────────────────────────────────

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, rest, err := ParseFlags([]string{
		"-a", "http://backend:4000",
		"-catalog-address", "https://catalog",
		"-d", "local.db",
		"-config", "cfg.json",
		"-request-timeout", "7s",
		"-catalog-rps", "1.5",
		"-catalog-burst", "3",
		"-refresh-interval", "2m",
		"-seal-key", "k",
		"-log-level", "error",
		"whoami",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"whoami"}, rest)
	assert.Equal(t, "http://backend:4000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "https://catalog", cfg.Catalog.HTTPAddress)
	assert.Equal(t, 1.5, cfg.Catalog.RequestsPerSecond)
	assert.Equal(t, 3, cfg.Catalog.Burst)
	assert.Equal(t, "local.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "k", cfg.App.SealKey)
	assert.Equal(t, "error", cfg.App.LogLevel)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, rest, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, &ClientConfig{}, cfg)
}

// ── json ──────────────────────────────────────────────────────────────────────

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"seal_key": "s", "log_level": "debug"},
		"adapter": map[string]any{"http_address": "http://b", "request_timeout": "1s"},
		"catalog": map[string]any{"http_address": "http://c", "request_timeout": 2000000000, "requests_per_second": 2, "burst": 5},
		"storage": map[string]any{"db": map[string]any{"dsn": "x.db"}},
		"workers": map[string]any{"refresh_interval": "90s"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "s", cfg.App.SealKey)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "http://b", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Catalog.RequestTimeout)
	assert.Equal(t, 2.0, cfg.Catalog.RequestsPerSecond)
	assert.Equal(t, 5, cfg.Catalog.Burst)
	assert.Equal(t, "x.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 90*time.Second, cfg.Workers.RefreshInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"request_timeout": true},
	})

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}

// ── validation ────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{"defaults", func(*ClientConfig) {}, nil},
		{"adapter without scheme", func(c *ClientConfig) { c.Adapter.HTTPAddress = "localhost:4000" }, ErrInvalidAdapterConfigs},
		{"adapter zero timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"catalog zero rate", func(c *ClientConfig) { c.Catalog.RequestsPerSecond = 0 }, ErrInvalidCatalogConfigs},
		{"catalog zero burst", func(c *ClientConfig) { c.Catalog.Burst = 0 }, ErrInvalidCatalogConfigs},
		{"empty dsn", func(c *ClientConfig) { c.Storage.DB.DSN = "  " }, ErrInvalidStorageConfigs},
		{"zero refresh", func(c *ClientConfig) { c.Workers.RefreshInterval = 0 }, ErrInvalidWorkerConfigs},
		{"bad log level", func(c *ClientConfig) { c.App.LogLevel = "shout" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
