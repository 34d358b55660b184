package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

func Test_FromEnv_Defaults(t *testing.T) {
	// act
	cfg, err := fromLookup(lookupFrom(nil))

	// assert
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "locallibrary.db", cfg.SQLiteFile)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 10, cfg.PageSize)
	assert.False(t, cfg.ObservabilityEnabled)
	assert.False(t, cfg.SecureCookies)
}

func Test_FromEnv_Overrides(t *testing.T) {
	// arrange
	env := map[string]string{
		"LIBRARY_HTTP_ADDR":       "127.0.0.1:9000",
		"LIBRARY_DB_DRIVER":       "PGX",
		"LIBRARY_DB_DSN":          "postgres://x@db/lib",
		"LIBRARY_LOG_LEVEL":       "debug",
		"LIBRARY_PAGE_SIZE":       "25",
		"LIBRARY_SECURE_COOKIES":  "true",
		"OBSERVABILITY_ENABLED":   "true",
		"OTEL_COLLECTOR_ENDPOINT": "otel:4317",
	}

	// act
	cfg, err := fromLookup(lookupFrom(env))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, DriverPGX, cfg.DBDriver)
	assert.Equal(t, "postgres://x@db/lib", cfg.DBDSN)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 25, cfg.PageSize)
	assert.True(t, cfg.ObservabilityEnabled)
	assert.True(t, cfg.SecureCookies)
	assert.Equal(t, "otel:4317", cfg.OTELEndpoint)
}

func Test_FromEnv_RejectsInvalidValues(t *testing.T) {
	for key, value := range map[string]string{
		"LIBRARY_DB_DRIVER":      "oracle",
		"LIBRARY_LOG_LEVEL":      "loud",
		"LIBRARY_PAGE_SIZE":      "0",
		"OBSERVABILITY_ENABLED":  "maybe",
		"LIBRARY_SECURE_COOKIES": "sometimes",
	} {
		_, err := fromLookup(lookupFrom(map[string]string{key: value}))
		assert.ErrorIs(t, err, ErrInvalidConfig, key)
	}
}

func Test_SQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:/tmp/lib.db?_foreign_keys=on&_busy_timeout=5000", SQLiteDSN("/tmp/lib.db"))
}
