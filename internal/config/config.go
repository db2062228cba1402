// Package config handles loading and validating configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/zappabad/pulse/internal/feed"
	"github.com/zappabad/pulse/internal/pulse/service"
	"github.com/zappabad/pulse/internal/token"
)

// Config holds all configuration values for the Pulse dashboard.
type Config struct {
	// Logging
	LogLevel string
	LogFile  string

	// MetricsAddr serves /metrics when non-empty.
	MetricsAddr string

	// UI
	EnableTUI     bool
	UIRefreshRate time.Duration

	// Randomness; 0 picks a time-based seed.
	Seed int64

	// Feed
	FeedMinInterval time.Duration
	FeedMaxInterval time.Duration
	FeedMinBatch    int
	FeedMaxBatch    int

	// Columns
	MaxColumnLen     int
	NewPairsSize     int
	FinalStretchSize int
	MigratedSize     int
	EventBuffer      int
}

// Load reads configuration from environment variables with fallback to .env file.
// Priority order: Environment variables > .env file > hardcoded defaults
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel: getEnv("PULSE_LOG_LEVEL", "INFO"),
		LogFile:  getEnv("PULSE_LOG_FILE", "pulse.log"),

		MetricsAddr: getEnv("PULSE_METRICS_ADDR", ""),

		EnableTUI:     getEnvBool("PULSE_ENABLE_TUI", true),
		UIRefreshRate: time.Duration(getEnvInt("PULSE_UI_REFRESH_MS", 250)) * time.Millisecond,

		Seed: getEnvInt64("PULSE_SEED", 0),

		FeedMinInterval: time.Duration(getEnvInt("PULSE_FEED_MIN_INTERVAL_MS", 2000)) * time.Millisecond,
		FeedMaxInterval: time.Duration(getEnvInt("PULSE_FEED_MAX_INTERVAL_MS", 5000)) * time.Millisecond,
		FeedMinBatch:    getEnvInt("PULSE_FEED_MIN_BATCH", 1),
		FeedMaxBatch:    getEnvInt("PULSE_FEED_MAX_BATCH", 3),

		MaxColumnLen:     getEnvInt("PULSE_MAX_COLUMN_LEN", 20),
		NewPairsSize:     getEnvInt("PULSE_NEW_PAIRS", 15),
		FinalStretchSize: getEnvInt("PULSE_FINAL_STRETCH", 12),
		MigratedSize:     getEnvInt("PULSE_MIGRATED", 18),
		EventBuffer:      getEnvInt("PULSE_EVENT_BUFFER", 64),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are consistent.
func (c *Config) Validate() error {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("PULSE_LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel)
	}

	if c.FeedMinInterval <= 0 {
		return fmt.Errorf("PULSE_FEED_MIN_INTERVAL_MS must be positive")
	}
	if c.FeedMaxInterval < c.FeedMinInterval {
		return fmt.Errorf("PULSE_FEED_MAX_INTERVAL_MS must not be below PULSE_FEED_MIN_INTERVAL_MS")
	}
	if c.FeedMinBatch < 1 {
		return fmt.Errorf("PULSE_FEED_MIN_BATCH must be at least 1")
	}
	if c.FeedMaxBatch < c.FeedMinBatch {
		return fmt.Errorf("PULSE_FEED_MAX_BATCH must not be below PULSE_FEED_MIN_BATCH")
	}

	if c.MaxColumnLen < 1 {
		return fmt.Errorf("PULSE_MAX_COLUMN_LEN must be at least 1")
	}
	if c.EventBuffer < 1 {
		return fmt.Errorf("PULSE_EVENT_BUFFER must be at least 1")
	}
	if c.UIRefreshRate <= 0 {
		return fmt.Errorf("PULSE_UI_REFRESH_MS must be positive")
	}

	if err := c.Service().Initial.Validate(); err != nil {
		return fmt.Errorf("column sizes: %w", err)
	}

	return nil
}

// Feed returns the simulated feed configuration.
func (c *Config) Feed() feed.Config {
	return feed.Config{
		MinInterval: c.FeedMinInterval,
		MaxInterval: c.FeedMaxInterval,
		MinBatch:    c.FeedMinBatch,
		MaxBatch:    c.FeedMaxBatch,
	}
}

// Service returns the pulse service configuration. Index offsets are spaced
// so no two columns ever share an index.
func (c *Config) Service() service.Config {
	cfg := service.DefaultConfig()
	cfg.MaxLen = c.MaxColumnLen
	cfg.EventBuffer = c.EventBuffer

	sizes := map[token.Category]int{
		token.CategoryNewPairs:     c.NewPairsSize,
		token.CategoryFinalStretch: c.FinalStretchSize,
		token.CategoryMigrated:     c.MigratedSize,
	}
	offset := 0
	for i := range cfg.Initial.Columns {
		col := &cfg.Initial.Columns[i]
		col.Size = sizes[col.Category]
		if col.Offset < offset {
			col.Offset = offset
		}
		offset = col.Offset + col.Size
	}
	return cfg
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as an integer or returns a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvBool retrieves an environment variable as a boolean or returns a default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
