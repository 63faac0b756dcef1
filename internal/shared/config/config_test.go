package config_test

import (
	"testing"
	"time"

	"go-fieldtrack/internal/shared/config"

	"github.com/stretchr/testify/assert"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup(t *testing.T) {
	t.Run("defaults with required secret", func(t *testing.T) {
		cfg, err := config.FromLookup(lookupFrom(map[string]string{
			"JWT_SECRET": "a-very-long-test-secret",
		}))

		assert.NoError(t, err)
		assert.Equal(t, "9007", cfg.Port)
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
		assert.Equal(t, time.UTC, cfg.Location())
		assert.False(t, cfg.IsProduction())
		assert.Contains(t, cfg.DB.DSN(), "dbname=fieldtrack")
	})

	t.Run("missing secret is rejected", func(t *testing.T) {
		_, err := config.FromLookup(lookupFrom(map[string]string{}))
		assert.Error(t, err)
	})

	t.Run("invalid ttl", func(t *testing.T) {
		_, err := config.FromLookup(lookupFrom(map[string]string{
			"JWT_SECRET": "a-very-long-test-secret",
			"TOKEN_TTL":  "forever",
		}))
		assert.Error(t, err)
	})

	t.Run("custom timezone and origins", func(t *testing.T) {
		cfg, err := config.FromLookup(lookupFrom(map[string]string{
			"JWT_SECRET":           "a-very-long-test-secret",
			"APP_TIMEZONE":         "Asia/Kolkata",
			"CORS_ALLOWED_ORIGINS": "http://a.test, http://b.test",
			"APP_ENV":              "production",
		}))

		assert.NoError(t, err)
		assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
		assert.True(t, cfg.IsProduction())
	})
}
