// Package config loads application configuration from the environment
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Prediction PredictionConfig
	Ingestion  IngestionConfig
	Monitor    MonitorConfig
	Telegram   TelegramConfig
}

// DatabaseConfig holds SQLite-related configuration
type DatabaseConfig struct {
	Path string
}

// PredictionConfig holds settings for the external ML prediction service
type PredictionConfig struct {
	URL          string
	Timeout      time.Duration
	HorizonHours int
	Enabled      bool
}

// IngestionConfig holds settings for the weather and river-level fetchers
type IngestionConfig struct {
	OpenMeteoURL string
	BulletinURL  string
}

// MonitorConfig holds settings for the scheduled evaluation job
type MonitorConfig struct {
	CronSpec string
}

// TelegramConfig holds bot credentials
type TelegramConfig struct {
	BotToken string
}

// Load loads configuration from environment variables with sensible
// defaults. Malformed values fall back to the default rather than
// failing, so loading always succeeds.
func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: getEnv("SDSS_DB_PATH", ""),
		},
		Prediction: PredictionConfig{
			URL:          getEnv("PREDICTION_URL", "http://localhost:8200/predict"),
			Timeout:      getEnvDuration("PREDICTION_TIMEOUT", 5*time.Second),
			HorizonHours: getEnvInt("PREDICTION_HORIZON_HOURS", 24),
			Enabled:      getEnvBool("PREDICTION_ENABLED", true),
		},
		Ingestion: IngestionConfig{
			OpenMeteoURL: getEnv("OPEN_METEO_URL", "https://api.open-meteo.com/v1"),
			BulletinURL:  getEnv("RIVER_BULLETIN_URL", ""),
		},
		Monitor: MonitorConfig{
			CronSpec: getEnv("MONITOR_CRON", "0 * * * *"),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		},
	}
}

// Helper functions to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
