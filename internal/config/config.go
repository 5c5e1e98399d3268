package config

import (
	"os"
	"strconv"
	"time"
)

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level    string
	Pretty   bool
	Timezone string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables; every value has a default so the
// service runs with no environment at all.
type AppConfig struct {
	Port               string
	AdminAddr          string
	ShutdownTimeoutSec int
	Log                LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the .env file.
func Load() *AppConfig {
	return &AppConfig{
		Port:               getEnv("PORT", "3000"),
		AdminAddr:          getEnv("ADMIN_ADDR", ""), // empty disables the admin listener
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Pretty:   getEnvBool("LOG_PRETTY", false),
			Timezone: getEnv("APP_TIMEZONE", "UTC"),
		},
	}
}

// Addr is the public listen address.
func (c *AppConfig) Addr() string {
	return ":" + c.Port
}

// ShutdownTimeout is the graceful shutdown budget.
func (c *AppConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

// Location resolves the log timezone, falling back to UTC when it is unknown.
func (c LogConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
