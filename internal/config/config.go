package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	SessionSecret  string
	SeedAdminName  string
	SeedAdminEmail string
	SeedAdminPass  string
}

// ErrMissingSessionSecret aborts startup when SESSION_SECRET is unset. A
// fallback constant would silently weaken every cookie the server signs.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET environment variable is required")

// Load builds Config from environment with sensible defaults. The session
// secret has no default on purpose.
func Load() (*Config, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, ErrMissingSessionSecret
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/adminpanel?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		SessionSecret:  secret,
		SeedAdminName:  getEnv("SEED_ADMIN_NAME", "Super Admin"),
		SeedAdminEmail: getEnv("SEED_ADMIN_EMAIL", "admin@example.com"),
		SeedAdminPass:  os.Getenv("SEED_ADMIN_PASSWORD"),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
