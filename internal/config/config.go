package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Save store backends
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds the application configuration
type Config struct {
	Port       int
	LogLevel   string
	SaveStore  string // "memory" or "postgres"
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	APIKey     string // API key for authentication

	// UnlocksAPIURL points at the backend collaborator that reports which
	// talismans a session has unlocked. Empty disables shop gating.
	UnlocksAPIURL string
	// DeadLetterPath is where undeliverable telemetry events are appended.
	DeadLetterPath string

	// SessionCacheSize bounds the number of live game sessions held in memory.
	SessionCacheSize int
	// SessionTTLMinutes is the idle eviction window for cached sessions.
	SessionTTLMinutes int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:   getEnv("LOG_LEVEL", "INFO"),
		SaveStore:  getEnv("SAVE_STORE", StoreMemory),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "skullpit"),
		APIKey:     getEnv("API_KEY", ""),

		UnlocksAPIURL:  getEnv("UNLOCKS_API_URL", ""),
		DeadLetterPath: getEnv("EVENT_DEAD_LETTER_PATH", "events_deadletter.jsonl"),
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cfg.SessionCacheSize, err = getEnvInt("SESSION_CACHE_SIZE", 1024)
	if err != nil {
		return nil, err
	}

	cfg.SessionTTLMinutes, err = getEnvInt("SESSION_TTL_MINUTES", 120)
	if err != nil {
		return nil, err
	}

	if cfg.SaveStore != StoreMemory && cfg.SaveStore != StorePostgres {
		return nil, fmt.Errorf("invalid SAVE_STORE value: %q", cfg.SaveStore)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
