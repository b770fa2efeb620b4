package config

import (
	"os"
	"strconv"
)

// ViewConfig selects how HTML responses are produced.
type ViewConfig struct {
	// Engine is either "inline" or "template".
	Engine string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Nothing is persisted.
type AppConfig struct {
	AppHost            string
	Port               string
	Debug              bool
	LogLevel           string
	MetricsEnabled     bool
	ShutdownTimeoutSec int
	View               ViewConfig
}

// Addr returns the listen address in host:port form.
func (c *AppConfig) Addr() string {
	return c.AppHost + ":" + c.Port
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:            getEnv("APP_HOST", "0.0.0.0"),
		Port:               getEnv("PORT", "8080"),
		Debug:              getEnvBool("APP_DEBUG", false),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
		View: ViewConfig{
			Engine: getEnv("VIEW_ENGINE", "template"),
		},
	}
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
