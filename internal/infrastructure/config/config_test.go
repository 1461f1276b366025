package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"MISOFT_APP_NAME":            os.Getenv("MISOFT_APP_NAME"),
		"MISOFT_APP_ENV":             os.Getenv("MISOFT_APP_ENV"),
		"MISOFT_APP_PORT":            os.Getenv("MISOFT_APP_PORT"),
		"MISOFT_UPSTREAM_BASE_URL":   os.Getenv("MISOFT_UPSTREAM_BASE_URL"),
		"MISOFT_UPSTREAM_TIMEOUT":    os.Getenv("MISOFT_UPSTREAM_TIMEOUT"),
		"MISOFT_SESSION_STORE":       os.Getenv("MISOFT_SESSION_STORE"),
		"MISOFT_SESSION_TTL":         os.Getenv("MISOFT_SESSION_TTL"),
		"MISOFT_SESSION_COOKIE_NAME": os.Getenv("MISOFT_SESSION_COOKIE_NAME"),
		"MISOFT_REDIS_HOST":          os.Getenv("MISOFT_REDIS_HOST"),
		"MISOFT_STORAGE_DRIVER":      os.Getenv("MISOFT_STORAGE_DRIVER"),
		"APP_ENV":                    os.Getenv("APP_ENV"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "misoft-web", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
		assert.Equal(t, 2, cfg.Upstream.RetryCount)
		assert.Equal(t, "misoft_session", cfg.Session.CookieName)
		assert.Equal(t, "memory", cfg.Session.Store)
		assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
		assert.Equal(t, 2*time.Minute, cfg.Session.RefreshSkew)
		assert.Equal(t, "stub", cfg.Storage.Driver)
	})

	t.Run("loads values from environment variables with MISOFT prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("MISOFT_APP_NAME", "test-app")
		os.Setenv("MISOFT_APP_ENV", "testing")
		os.Setenv("MISOFT_APP_PORT", "9000")
		os.Setenv("MISOFT_UPSTREAM_BASE_URL", "http://core.local:9100/api/v1")
		os.Setenv("MISOFT_UPSTREAM_TIMEOUT", "10s")
		os.Setenv("MISOFT_SESSION_STORE", "redis")
		os.Setenv("MISOFT_SESSION_TTL", "1h")
		os.Setenv("MISOFT_REDIS_HOST", "cache.local")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "http://core.local:9100/api/v1", cfg.Upstream.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
		assert.Equal(t, "redis", cfg.Session.Store)
		assert.Equal(t, time.Hour, cfg.Session.TTL)
		assert.Equal(t, "cache.local", cfg.Redis.Host)
	})

	t.Run("rejects malformed upstream base URL", func(t *testing.T) {
		clearEnv()
		os.Setenv("MISOFT_UPSTREAM_BASE_URL", "not-a-url")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upstream.base_url")
	})

	t.Run("rejects unknown session store", func(t *testing.T) {
		clearEnv()
		os.Setenv("MISOFT_SESSION_STORE", "memcached")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "session.store")
	})

	t.Run("rejects unknown storage driver", func(t *testing.T) {
		clearEnv()
		os.Setenv("MISOFT_STORAGE_DRIVER", "gcs")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.driver")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"MISOFT_APP_ENV":                  os.Getenv("MISOFT_APP_ENV"),
		"MISOFT_UPSTREAM_BASE_URL":        os.Getenv("MISOFT_UPSTREAM_BASE_URL"),
		"MISOFT_SESSION_SECURE":           os.Getenv("MISOFT_SESSION_SECURE"),
		"MISOFT_HTTP_CORS_ALLOW_ORIGINS":  os.Getenv("MISOFT_HTTP_CORS_ALLOW_ORIGINS"),
		"MISOFT_SWAGGER_ENABLED":          os.Getenv("MISOFT_SWAGGER_ENABLED"),
		"MISOFT_SWAGGER_REQUIRE_AUTH":     os.Getenv("MISOFT_SWAGGER_REQUIRE_AUTH"),
		"MISOFT_PRINTING_UPLOAD_ENABLED":  os.Getenv("MISOFT_PRINTING_UPLOAD_ENABLED"),
		"MISOFT_STORAGE_DRIVER":           os.Getenv("MISOFT_STORAGE_DRIVER"),
		"APP_ENV":                         os.Getenv("APP_ENV"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	// Helper to set valid production base config
	setValidProductionBase := func() {
		os.Setenv("MISOFT_APP_ENV", "production")
		os.Setenv("MISOFT_UPSTREAM_BASE_URL", "https://core.misoft.pk/api/v1")
		os.Setenv("MISOFT_SESSION_SECURE", "true")
		os.Setenv("MISOFT_SWAGGER_ENABLED", "false")
	}

	t.Run("requires upstream.base_url in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("MISOFT_APP_ENV", "production")
		os.Setenv("MISOFT_SESSION_SECURE", "true")
		os.Setenv("MISOFT_SWAGGER_ENABLED", "false")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upstream.base_url is required in production")
	})

	t.Run("requires https upstream in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("MISOFT_APP_ENV", "production")
		os.Setenv("MISOFT_UPSTREAM_BASE_URL", "http://core.misoft.pk/api/v1")
		os.Setenv("MISOFT_SESSION_SECURE", "true")
		os.Setenv("MISOFT_SWAGGER_ENABLED", "false")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must use https in production")
	})

	t.Run("requires secure session cookie in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("MISOFT_APP_ENV", "production")
		os.Setenv("MISOFT_UPSTREAM_BASE_URL", "https://core.misoft.pk/api/v1")
		os.Setenv("MISOFT_SESSION_SECURE", "false")
		os.Setenv("MISOFT_SWAGGER_ENABLED", "false")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "session.secure must be true in production")
	})

	t.Run("rejects wildcard CORS origin in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("MISOFT_HTTP_CORS_ALLOW_ORIGINS", "*")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins cannot be '*' in production")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})

	t.Run("fails if swagger enabled without protection in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("MISOFT_SWAGGER_ENABLED", "true")
		os.Setenv("MISOFT_SWAGGER_REQUIRE_AUTH", "false")
		// No IP whitelist set

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "swagger endpoint must be disabled, require authentication, or have IP restriction")
	})

	t.Run("passes with swagger enabled and require_auth in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("MISOFT_SWAGGER_ENABLED", "true")
		os.Setenv("MISOFT_SWAGGER_REQUIRE_AUTH", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Swagger.Enabled)
		assert.True(t, cfg.Swagger.RequireAuth)
	})

	t.Run("rejects stub storage with uploads enabled in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("MISOFT_PRINTING_UPLOAD_ENABLED", "true")
		os.Setenv("MISOFT_STORAGE_DRIVER", "stub")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.driver cannot be 'stub'")
	})
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{Host: "cache.local", Port: 6380}
	assert.Equal(t, "cache.local:6380", cfg.Addr())
}
