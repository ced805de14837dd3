package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. Values come from environment
// variables with sensible defaults.
type Config struct {
	Port     int
	LogLevel string

	// SessionTTL is the idle timeout after which a session's in-memory
	// state is dropped.
	SessionTTL time.Duration

	// SeedDemoData preloads every new session with the exemplary data set.
	SeedDemoData bool

	AllowedOrigins []string
}

// Load reads configuration from the environment, after best-effort loading
// a local .env file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnvInt("PORT", 8111),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SessionTTL:     getEnvDuration("SESSION_TTL", 12*time.Hour),
		SeedDemoData:   getEnv("SEED_DEMO_DATA", "false") == "true",
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:1234", "http://127.0.0.1:1234"}),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return fallback
}
