// Package config loads process configuration from the environment into an
// explicit struct that is constructed once in main and passed by reference.
// Business logic never reads environment variables directly.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// DBConfig holds relational database connection settings.
type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	RunMigrations bool
}

// DSN builds a PostgreSQL connection string from the config.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

// RedisConfig holds Redis connection settings. An empty Host disables Redis;
// the service then runs without the list cache and without token revocation.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// Addr returns the host:port address, or "" when Redis is not configured.
func (c RedisConfig) Addr() string {
	if c.Host == "" {
		return ""
	}
	return c.Host + ":" + c.Port
}

// TokenConfig holds session token settings.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

// Config is the root configuration for the service.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	Token  TokenConfig
}

// Load reads configuration from environment variables, applying defaults
// where a value is optional. It fails when the token secret is missing.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	ttl := 24 * time.Hour
	if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("invalid JWT_TTL_HOURS %q", v)
		}
		ttl = time.Duration(hours) * time.Hour
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvDefault("SERVER_PORT", "8080"),
		},
		DB: DBConfig{
			Host:          getenvDefault("DB_HOST", "localhost"),
			Port:          getenvDefault("DB_PORT", "5432"),
			User:          os.Getenv("DB_USER"),
			Password:      os.Getenv("DB_PASSWORD"),
			Name:          os.Getenv("DB_NAME"),
			RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getenvDefault("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Token: TokenConfig{
			Secret: secret,
			TTL:    ttl,
		},
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
