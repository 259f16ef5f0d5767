package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Loads from environment", func(t *testing.T) {
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("API_BASE_URL", "https://api.dudhiya.example")
		t.Setenv("SECRET_KEY", "shh")
		t.Setenv("STORE_DRIVER", "postgres")
		t.Setenv("STORE_PATH", "/tmp/guest")
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "https://api.dudhiya.example", cfg.APIBaseURL)
		assert.Equal(t, "shh", cfg.JWTSecret)
		assert.Equal(t, "postgres", cfg.StoreDriver)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "5432", cfg.DBPort)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://api.dudhiya.example")
		t.Setenv("APP_PORT", "")
		t.Setenv("APP_ENV", "")
		t.Setenv("STORE_DRIVER", "")
		t.Setenv("STORE_PATH", "")

		cfg := LoadConfig()

		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "development", cfg.AppEnv)
		assert.Equal(t, "file", cfg.StoreDriver)
		assert.Equal(t, "./data/guest", cfg.StorePath)
	})
}
