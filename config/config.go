package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	DefaultAPIURL = "https://reqres.in/api"
	DefaultAPIKey = "reqres-free-v1"
)

// Config holds all application configuration loaded from environment.
type Config struct {
	APIURL  string
	APIKey  string
	Timeout time.Duration

	// Login form defaults
	Email    string
	Password string

	LogFile  string
	LogLevel zerolog.Level

	ExportRecipients []string
	DemoMode         bool
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment is enough.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIURL:   strings.TrimRight(getEnv("USERHUB_API_URL", DefaultAPIURL), "/"),
		APIKey:   getEnv("USERHUB_API_KEY", DefaultAPIKey),
		Email:    os.Getenv("USERHUB_EMAIL"),
		Password: os.Getenv("USERHUB_PASSWORD"),
		LogFile:  getEnv("USERHUB_LOG_FILE", "userhub.log"),
		DemoMode: os.Getenv("USERHUB_DEMO_MODE") != "",
	}
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("USERHUB_API_URL must not be empty")
	}

	ttlStr := getEnv("USERHUB_TIMEOUT", "10s")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid USERHUB_TIMEOUT: %w", err)
	}
	if ttl < 0 {
		return nil, fmt.Errorf("invalid USERHUB_TIMEOUT: %s is negative", ttlStr)
	}
	cfg.Timeout = ttl

	cfg.LogLevel, err = zerolog.ParseLevel(getEnv("USERHUB_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid USERHUB_LOG_LEVEL: %w", err)
	}

	cfg.ExportRecipients = splitList(os.Getenv("USERHUB_EXPORT_RECIPIENTS"))

	return cfg, nil
}

// getEnv returns the value of the environment variable if set and non-empty,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
