package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	cleanup := func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("HTTP_ADDR")
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("APP_URL")
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("RELATED_OVERFETCH")
		os.Unsetenv("RELATED_DISPLAY_LIMIT")
		os.Unsetenv("HTTP_READ_TIMEOUT")
	}

	t.Run("should_return_error_if_database_url_is_missing", func(t *testing.T) {
		cleanup()
		cfg, err := Load()
		assert.Nil(t, cfg)
		assert.Error(t, err)
		assert.Equal(t, "missing DATABASE_URL", err.Error())
	})

	t.Run("should_return_error_if_jwt_secret_is_missing", func(t *testing.T) {
		cleanup()
		os.Setenv("DATABASE_URL", "postgres://localhost:5432/db")
		cfg, err := Load()
		assert.Nil(t, cfg)
		assert.Error(t, err)
		assert.Equal(t, "missing JWT_SECRET", err.Error())
	})

	t.Run("should_load_successfully_with_valid_env", func(t *testing.T) {
		cleanup()
		os.Setenv("DATABASE_URL", "postgres://localhost:5432/db")
		os.Setenv("JWT_SECRET", "super-secret")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)
		assert.Equal(t, "http://localhost:8080", cfg.AppURL)
		assert.Equal(t, "movie.events", cfg.RabbitExchange)
		assert.Equal(t, 20, cfg.RelatedOverFetch)
		assert.Equal(t, 10, cfg.RelatedDisplayLimit)
	})

	t.Run("should_reject_overfetch_below_display_limit", func(t *testing.T) {
		cleanup()
		os.Setenv("DATABASE_URL", "postgres://localhost:5432/db")
		os.Setenv("JWT_SECRET", "super-secret")
		os.Setenv("RELATED_OVERFETCH", "5")
		os.Setenv("RELATED_DISPLAY_LIMIT", "10")

		cfg, err := Load()
		assert.Nil(t, cfg)
		assert.Error(t, err)
	})

	t.Run("should_parse_durations", func(t *testing.T) {
		cleanup()
		os.Setenv("DATABASE_URL", "postgres://localhost:5432/db")
		os.Setenv("JWT_SECRET", "super-secret")
		os.Setenv("HTTP_READ_TIMEOUT", "5s")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, 5*time.Second, cfg.HTTPReadTimeout)
	})
}
