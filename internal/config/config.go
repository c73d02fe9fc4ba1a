package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultRelayURL is the hosted relay that emails leads to the business inbox.
const DefaultRelayURL = "https://formsubmit.co/ajax/contact@wirralcarpetcleaning.com"

// Config holds all configuration for the site server
type Config struct {
	// Server configuration
	Port         string
	GinMode      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Form relay
	RelayURL     string
	RelayTimeout time.Duration

	// Visitor sessions
	SessionTTL             time.Duration
	SessionCleanupInterval time.Duration
	SecureCookies          bool

	// Redis, optional; empty Addr keeps sessions in memory
	Redis RedisConfig

	// CORS for the JSON API; empty means same-origin only
	CORSAllowedOrigins []string

	// Content override; empty uses the embedded catalog
	ContentFile string

	// Logging
	LogFile    string
	LogVerbose bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads .env if present, then environment variables.
func Load() *Config {
	// .env is optional; real environment wins
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8080"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		ReadTimeout:  getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getDurationEnv("WRITE_TIMEOUT", 15*time.Second),

		RelayURL:     getEnv("FORM_RELAY_URL", DefaultRelayURL),
		RelayTimeout: getDurationEnv("FORM_RELAY_TIMEOUT", 10*time.Second),

		SessionTTL:             getDurationEnv("SESSION_TTL", time.Hour),
		SessionCleanupInterval: getDurationEnv("SESSION_CLEANUP_INTERVAL", 10*time.Minute),
		SecureCookies:          getBoolEnv("SECURE_COOKIES", false),

		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},

		CORSAllowedOrigins: getStringSliceEnv("CORS_ALLOWED_ORIGINS", nil),

		ContentFile: getEnv("CONTENT_FILE", ""),

		LogFile:    getEnv("LOG_FILE", ""),
		LogVerbose: getBoolEnv("LOG_VERBOSE", true),
	}
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		var result []string
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// IsProduction returns true if the server runs in gin release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// UsesRedis reports whether sessions should be shared through Redis.
func (c *Config) UsesRedis() bool {
	return c.Redis.Addr != ""
}

// GetServerAddress returns the listen address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}
