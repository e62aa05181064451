// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP Server
	Port        string
	Env         string
	StaticDir   string
	MaxUploadMB int

	// Logging
	LogLevel string

	// Uploads and text extraction
	UploadDir      string
	PdftotextPath  string
	ExtractTimeout time.Duration

	// Year for statement dates written without one, 0 for the current year
	StatementYear int

	// Insights
	MinVisualShare   float64
	PeerAverageShare float64

	// Postgres parse history, disabled when empty
	DatabaseURL string

	// Redis result cache, disabled when empty
	RedisURL string
	CacheTTL time.Duration

	// AMQP notifications, disabled when empty
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// Load reads a .env file when present and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "5000"),
		Env:         getEnv("APP_ENV", "development"),
		StaticDir:   getEnv("STATIC_DIR", ""),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 20),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
		PdftotextPath:  getEnv("PDFTOTEXT_PATH", "pdftotext"),
		ExtractTimeout: getEnvDuration("EXTRACT_TIMEOUT", 30*time.Second),

		StatementYear: getEnvInt("STATEMENT_YEAR", 0),

		MinVisualShare:   getEnvFloat("MIN_VISUAL_SHARE", 0.10),
		PeerAverageShare: getEnvFloat("PEER_AVERAGE_SHARE", 0.18),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: getEnvDuration("CACHE_TTL", 10*time.Minute),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "statements"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "statement_parsed"),
	}
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if c.UploadDir == "" {
		errors = append(errors, "upload directory cannot be empty")
	}
	if c.MaxUploadMB < 1 {
		errors = append(errors, fmt.Sprintf("invalid max upload size %d MB: must be at least 1", c.MaxUploadMB))
	}
	if c.ExtractTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid extract timeout %v: must be at least 1 second", c.ExtractTimeout))
	}

	if c.StatementYear != 0 && (c.StatementYear < 1000 || c.StatementYear > 9999) {
		errors = append(errors, fmt.Sprintf("invalid statement year %d: must have four digits", c.StatementYear))
	}

	if c.MinVisualShare <= 0 || c.MinVisualShare >= 1 {
		errors = append(errors, fmt.Sprintf("invalid minimum visual share %v: must be between 0 and 1", c.MinVisualShare))
	}
	if c.PeerAverageShare <= 0 || c.PeerAverageShare >= 1 {
		errors = append(errors, fmt.Sprintf("invalid peer average share %v: must be between 0 and 1", c.PeerAverageShare))
	}

	if c.RedisURL != "" && c.CacheTTL < time.Second {
		errors = append(errors, fmt.Sprintf("invalid cache TTL %v: must be at least 1 second", c.CacheTTL))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
