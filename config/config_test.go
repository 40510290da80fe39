package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, DefaultSQLiteURL, cfg.DatabaseURL)
	assert.Equal(t, 5000, cfg.ServerPort)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.Storage.Configured())
}

func TestFromEnv_Postgres(t *testing.T) {
	_, err := FromEnv(envOf(map[string]string{"DATABASE_DRIVER": "postgres"}))
	assert.ErrorContains(t, err, "DATABASE_URL")

	cfg, err := FromEnv(envOf(map[string]string{
		"DATABASE_DRIVER":      "Postgres",
		"DATABASE_URL":         "postgres://bgt@localhost/bgt?sslmode=disable",
		"SERVER_PORT":          "8081",
		"CORS_ALLOWED_ORIGINS": "http://a.test, http://b.test,",
		"LOG_LEVEL":            "debug",
		"S3_BUCKET":            "snapshots",
		"S3_ACCESS_KEY_ID":     "key",
		"S3_SECRET_ACCESS_KEY": "secret",
	}))
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, 8081, cfg.ServerPort)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.Storage.Configured())
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"driver":     {"DATABASE_DRIVER": "mysql"},
		"port":       {"SERVER_PORT": "http"},
		"port range": {"SERVER_PORT": "70000"},
		"log level":  {"LOG_LEVEL": "loud"},
	}

	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(envOf(vars))
			assert.Error(t, err)
		})
	}
}
