// Package config loads configuration from a .env file and environment variables.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultProviders lists the search providers in priority order.
var DefaultProviders = []string{"duckduckgo", "wikipedia", "reddit", "github", "stackoverflow"}

// Config holds runtime settings.
type Config struct {
	DatabaseURL      string
	ListenAddr       string
	LogLevel         slog.Level
	SearchTimeout    time.Duration
	SearchRate       float64
	SearchBurst      int
	SearchMaxResults int
	SearchProviders  []string
	SearchUserAgent  string
	LearningCooldown time.Duration
	// RandomSeed of 0 seeds from the clock.
	RandomSeed       uint64
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
}

// Load reads an optional .env file, then env vars, and applies defaults.
// Nothing is required: an empty DATABASE_URL selects the in-memory store.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to read .env file", "error", err)
	}

	cfg := Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		ListenAddr:      os.Getenv("LISTEN_ADDR"),
		SearchUserAgent: os.Getenv("SEARCH_USER_AGENT"),
	}

	cfg.LogLevel = parseLevel(os.Getenv("LOG_LEVEL"))
	cfg.SearchTimeout = getEnvDuration("SEARCH_TIMEOUT", 5*time.Second)
	cfg.SearchRate = getEnvFloat("SEARCH_RATE", 2)
	cfg.SearchBurst = getEnvInt("SEARCH_BURST", 4)
	cfg.SearchMaxResults = getEnvInt("SEARCH_MAX_RESULTS", 6)
	cfg.SearchProviders = getEnvList("SEARCH_PROVIDERS", DefaultProviders)
	cfg.LearningCooldown = getEnvDuration("LEARNING_COOLDOWN", 5*time.Minute)
	cfg.RandomSeed = getEnvUint("RANDOM_SEED", 0)
	cfg.HTTPReadTimeout = getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	cfg.HTTPWriteTimeout = getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second)

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.SearchUserAgent == "" {
		cfg.SearchUserAgent = "Oriona-AI-Bot/1.0"
	}

	return cfg
}

func parseLevel(val string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvUint(key string, defaultVal uint64) uint64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.ParseUint(strings.TrimSpace(val), 10, 64)
	if err != nil {
		slog.Warn("ignoring invalid unsigned value", "key", key, "value", val)
		return defaultVal
	}
	return parsed
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if strings.TrimSpace(val) == "" {
		return append([]string(nil), defaultVal...)
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
