package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"SERVER_PORT", "RATE_LIMIT_PER_MINUTE", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS",
	"SITE_BASE_URL", "SEARCH_DEBOUNCE", "CATALOG_SOURCE",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
}

// clearEnv blanks every variable Load reads for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func setDatabaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "catalog")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "nextlearn")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimitPerMinute)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, SourceStatic, cfg.Catalog.Source)
	assert.Equal(t, "http://localhost:8080", cfg.Site.BaseURL)
	assert.Equal(t, 300*time.Millisecond, cfg.Site.SearchDebounce)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "20")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://nextlearn.dev, ,https://www.nextlearn.dev")
	t.Setenv("SITE_BASE_URL", "https://nextlearn.dev/")
	t.Setenv("SEARCH_DEBOUNCE", "150ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 20, cfg.Server.RateLimitPerMinute)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"https://nextlearn.dev", "https://www.nextlearn.dev"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "https://nextlearn.dev", cfg.Site.BaseURL)
	assert.Equal(t, 150*time.Millisecond, cfg.Site.SearchDebounce)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		expectedError string
	}{
		{
			name:          "invalid server port",
			env:           map[string]string{"SERVER_PORT": "http"},
			expectedError: "invalid SERVER_PORT",
		},
		{
			name:          "zero rate limit",
			env:           map[string]string{"RATE_LIMIT_PER_MINUTE": "0"},
			expectedError: "invalid RATE_LIMIT_PER_MINUTE",
		},
		{
			name:          "invalid debounce",
			env:           map[string]string{"SEARCH_DEBOUNCE": "soon"},
			expectedError: "invalid SEARCH_DEBOUNCE",
		},
		{
			name:          "unknown catalog source",
			env:           map[string]string{"CATALOG_SOURCE": "postgres"},
			expectedError: "invalid CATALOG_SOURCE",
		},
		{
			name:          "mysql without host",
			env:           map[string]string{"CATALOG_SOURCE": "mysql"},
			expectedError: "DB_HOST is required",
		},
		{
			name: "mysql with invalid port",
			env: map[string]string{
				"CATALOG_SOURCE": "mysql",
				"DB_HOST":        "localhost",
				"DB_PORT":        "abc",
			},
			expectedError: "invalid DB_PORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestLoad_MySQLSource(t *testing.T) {
	clearEnv(t)
	setDatabaseEnv(t)
	t.Setenv("CATALOG_SOURCE", "MySQL")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourceMySQL, cfg.Catalog.Source)
	assert.Equal(t, "catalog:secret@tcp(localhost:3306)/nextlearn?parseTime=true&charset=utf8mb4&multiStatements=true", cfg.DSN())
}

func TestLoadDatabase(t *testing.T) {
	clearEnv(t)

	_, err := LoadDatabase()
	assert.EqualError(t, err, "DB_HOST is required")

	setDatabaseEnv(t)
	cfg, err := LoadDatabase()
	require.NoError(t, err)
	assert.Equal(t, "nextlearn", cfg.Database.DBName)
	assert.Equal(t, 3306, cfg.Database.Port)
}
