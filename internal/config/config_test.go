package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars unsets every variable Load reads and restores them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "SERVICE_NAME", "VERSION", "ENVIRONMENT",
		"STORE_DRIVER", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
		"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME", "SQLITE_PATH",
		"CATALOG_PATH", "PRICE_SEED_MODE", "SESSION_CACHE_SIZE", "SESSION_TTL",
		"TRUSTED_PROXIES", "MAX_BODY_BYTES", "DEAD_LETTER_PATH", "SHUTDOWN_TIMEOUT",
		"ENV_SCHEMA_VERSION",
	}
	for _, key := range envVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, EnvironmentDev, cfg.Environment)
		assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
		assert.Equal(t, SeedModeMissing, cfg.PriceSeedMode)
		assert.Equal(t, DefaultSessionCacheSize, cfg.SessionCacheSize)
		assert.Equal(t, DefaultSessionTTL, cfg.SessionTTL)
		assert.Empty(t, cfg.APIKey, "authentication is optional outside production")
		assert.Empty(t, cfg.CatalogPath)
		assert.Empty(t, cfg.DeadLetterPath)
		assert.Nil(t, cfg.TrustedProxies)
	})

	t.Run("from environment", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("STORE_DRIVER", "Postgres")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("SQLITE_PATH", "/tmp/farm.db")
		t.Setenv("CATALOG_PATH", "crops.yaml")
		t.Setenv("PRICE_SEED_MODE", "all")
		t.Setenv("SESSION_CACHE_SIZE", "16")
		t.Setenv("SESSION_TTL", "90s")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2,")
		t.Setenv("DEAD_LETTER_PATH", "/var/lib/farmcalc/deadletter.jsonl")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
		assert.Equal(t, "db.example.com", cfg.DBHost)
		assert.Equal(t, "5433", cfg.DBPort)
		assert.Equal(t, "/tmp/farm.db", cfg.SQLitePath)
		assert.Equal(t, "crops.yaml", cfg.CatalogPath)
		assert.Equal(t, SeedModeAll, cfg.PriceSeedMode)
		assert.Equal(t, 16, cfg.SessionCacheSize)
		assert.Equal(t, 90*time.Second, cfg.SessionTTL)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, "/var/lib/farmcalc/deadletter.jsonl", cfg.DeadLetterPath)
	})

	errorCases := []struct {
		name    string
		env     map[string]string
		message string
	}{
		{name: "invalid port", env: map[string]string{"PORT": "not-a-number"}, message: "invalid PORT"},
		{name: "float port", env: map[string]string{"PORT": "8080.5"}, message: "invalid PORT"},
		{name: "empty port", env: map[string]string{"PORT": ""}, message: "invalid PORT"},
		{name: "unknown driver", env: map[string]string{"STORE_DRIVER": "redis"}, message: "STORE_DRIVER"},
		{name: "unknown seed mode", env: map[string]string{"PRICE_SEED_MODE": "sometimes"}, message: "PRICE_SEED_MODE"},
		{name: "production without key", env: map[string]string{"ENVIRONMENT": "production"}, message: "API_KEY"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnvVars(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tc.message)
		})
	}

	t.Run("production with key", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("API_KEY", "k")

		cfg, err := Load()

		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})
}

func TestLoad_DatabasePoolConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns)
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime)
	})

	t.Run("custom", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("DB_MAX_CONNS", "50")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "10m")
		t.Setenv("DB_MAX_CONN_LIFETIME", "1h")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 50, cfg.DBMaxConns)
		assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("DB_MAX_CONNS", "not-a-number")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "invalid")
		t.Setenv("DB_MAX_CONN_LIFETIME", "100")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultDBMaxConnIdleTime, cfg.DBMaxConnIdleTime)
		assert.Equal(t, DefaultDBMaxConnLifetime, cfg.DBMaxConnLifetime)
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "testuser",
		DBPassword: "p@ss:word",
		DBHost:     "testhost",
		DBPort:     "5433",
		DBName:     "testdb",
	}

	assert.Equal(t, "postgres://testuser:p@ss:word@testhost:5433/testdb?sslmode=disable", cfg.GetDBConnString())
}
