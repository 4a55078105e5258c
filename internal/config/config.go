package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultAPIBaseURL = "https://10.react.pages.academy/six-cities"

// Config holds all application configuration
type Config struct {
	BotToken string
	Env      string
	API      APIConfig
	Database DatabaseConfig

	// SessionRetentionDays is how long an idle session keeps its token
	SessionRetentionDays int
}

// APIConfig holds six-cities server settings
type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	timeout, err := getEnvInt("API_TIMEOUT_SECONDS", 5)
	if err != nil {
		return nil, err
	}
	rateLimit, err := getEnvFloat("API_RATE_LIMIT", 5)
	if err != nil {
		return nil, err
	}
	rateBurst, err := getEnvInt("API_RATE_BURST", 10)
	if err != nil {
		return nil, err
	}
	retention, err := getEnvInt("SESSION_RETENTION_DAYS", 30)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Env:      getEnv("APP_ENV", "prod"),
		API: APIConfig{
			BaseURL:   getEnv("API_BASE_URL", defaultAPIBaseURL),
			Timeout:   time.Duration(timeout) * time.Second,
			RateLimit: rateLimit,
			RateBurst: rateBurst,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "sixcities"),
			User:     getEnv("DB_USER", "sixcities"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		SessionRetentionDays: retention,
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("API_TIMEOUT_SECONDS must be positive")
	}
	if retention <= 0 {
		return nil, fmt.Errorf("SESSION_RETENTION_DAYS must be positive")
	}

	return cfg, nil
}

// IsDev reports whether development logging is enabled
func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
