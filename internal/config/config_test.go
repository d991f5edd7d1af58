package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply when only the secret is set", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "localhost", cfg.DB.Host)
		assert.Equal(t, "5432", cfg.DB.Port)
		assert.False(t, cfg.DB.RunMigrations)
		assert.Equal(t, "test-secret", cfg.Token.Secret)
		assert.Equal(t, 24*time.Hour, cfg.Token.TTL)
	})

	t.Run("explicit values win over defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_TTL_HOURS", "2")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("RUN_MIGRATIONS", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.True(t, cfg.DB.RunMigrations)
		assert.Equal(t, 2*time.Hour, cfg.Token.TTL)
	})

	t.Run("missing secret fails", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-numeric TTL fails", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_TTL_HOURS", "soon")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDBConfig_DSN(t *testing.T) {
	cfg := DBConfig{Host: "db", Port: "5432", User: "app", Password: "pw", Name: "recipes"}
	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=recipes sslmode=disable", cfg.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	assert.Equal(t, "", RedisConfig{}.Addr(), "no host means Redis is disabled")
	assert.Equal(t, "cache:6379", RedisConfig{Host: "cache", Port: "6379"}.Addr())
}
