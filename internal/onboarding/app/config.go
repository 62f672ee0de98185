package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer     string // Required: issuer claim for session tokens
	SetupToken string // Optional: token required to perform bootstrap

	DatabaseFile string // Optional: path to SQLite database file (default: ./onboarding.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	SessionTTL          time.Duration // Session token lifetime (default: 30m)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	SweepInterval       time.Duration // Housekeeping interval (default: 15m)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              os.Getenv("ONBOARDING_ISSUER"),
		SetupToken:          os.Getenv("SETUP_TOKEN"),
		DatabaseFile:        getEnvOrDefault("ONBOARDING_DATABASE_FILE", "onboarding.db"),
		PepperFile:          getEnvOrDefault("ONBOARDING_PEPPER_FILE", "pepper"),
		SessionTTL:          getEnvDurationOrDefault("SESSION_TTL", 30*time.Minute),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		SweepInterval:       getEnvDurationOrDefault("SWEEP_INTERVAL", 15*time.Minute),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "classtrack-onboarding"
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are read as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
