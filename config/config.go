package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = 3000
	DefaultModel          = "gpt-4o-mini"
	DefaultOpenAIEndpoint = "https://api.openai.com/v1/chat/completions"
	DefaultStaticDir      = "public"
	DefaultMaxBodyBytes   = 1_000_000
)

// ErrMissingAPIKey is returned by Validate when no upstream credential is configured.
var ErrMissingAPIKey = errors.New("missing OPENAI_API_KEY. Add it to your .env file before starting the server")

// Config holds all configuration for the tutor service.
// It is built once at startup and treated as read-only afterwards.
type Config struct {
	// Server configuration
	Port           int
	StaticDir      string
	MaxBodyBytes   int64
	AllowedOrigins []string

	// OpenAI configuration
	OpenAIAPIKey   string
	OpenAIModel    string
	OpenAIEndpoint string
	OpenAITimeout  time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:           getPortEnv("PORT", DefaultPort),
		StaticDir:      getEnv("STATIC_DIR", DefaultStaticDir),
		MaxBodyBytes:   int64(getIntEnv("MAX_BODY_BYTES", DefaultMaxBodyBytes)),
		AllowedOrigins: getStringSliceEnv("ALLOWED_ORIGINS", ""),

		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL", DefaultModel),
		OpenAIEndpoint: getEnv("OPENAI_ENDPOINT", DefaultOpenAIEndpoint),
		OpenAITimeout:  getDurationEnv("OPENAI_TIMEOUT", 0),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// Validate reports configuration the service cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OpenAIAPIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// LoadDotEnv seeds the process environment from a KEY=VALUE file.
// Keys that are already set are left untouched. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv gets an integer environment variable or returns a default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

// getPortEnv is getIntEnv restricted to valid TCP ports.
func getPortEnv(key string, defaultValue int) int {
	port := getIntEnv(key, defaultValue)
	if port > 65535 {
		return defaultValue
	}
	return port
}

// getDurationEnv gets a duration environment variable or returns a default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil && duration >= 0 {
			return duration
		}
	}
	return defaultValue
}

// getStringSliceEnv gets a comma-separated environment variable as a slice, dropping empty items
func getStringSliceEnv(key, defaultValue string) []string {
	value := getEnv(key, defaultValue)
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
