package config

import (
	"testing"
	"time"
)

// TestLoadDefaults verifies the defaults used when no environment is set
func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Prediction.URL != "http://localhost:8200/predict" {
		t.Errorf("Unexpected default prediction URL: %s", cfg.Prediction.URL)
	}
	if cfg.Prediction.Timeout != 5*time.Second {
		t.Errorf("Unexpected default prediction timeout: %v", cfg.Prediction.Timeout)
	}
	if cfg.Prediction.HorizonHours != 24 {
		t.Errorf("Unexpected default horizon: %d", cfg.Prediction.HorizonHours)
	}
	if !cfg.Prediction.Enabled {
		t.Error("Expected prediction to be enabled by default")
	}
	if cfg.Monitor.CronSpec != "0 * * * *" {
		t.Errorf("Unexpected default cron spec: %s", cfg.Monitor.CronSpec)
	}
	if cfg.Ingestion.OpenMeteoURL != "https://api.open-meteo.com/v1" {
		t.Errorf("Unexpected default Open-Meteo URL: %s", cfg.Ingestion.OpenMeteoURL)
	}
}

// TestLoadOverrides verifies environment variables win over defaults
func TestLoadOverrides(t *testing.T) {
	t.Setenv("PREDICTION_URL", "http://model.internal:9000/predict")
	t.Setenv("PREDICTION_TIMEOUT", "10s")
	t.Setenv("PREDICTION_HORIZON_HOURS", "48")
	t.Setenv("PREDICTION_ENABLED", "false")
	t.Setenv("SDSS_DB_PATH", "/tmp/override.db")
	t.Setenv("MONITOR_CRON", "*/15 * * * *")

	cfg := Load()

	if cfg.Prediction.URL != "http://model.internal:9000/predict" {
		t.Errorf("Expected overridden prediction URL, got %s", cfg.Prediction.URL)
	}
	if cfg.Prediction.Timeout != 10*time.Second {
		t.Errorf("Expected overridden timeout 10s, got %v", cfg.Prediction.Timeout)
	}
	if cfg.Prediction.HorizonHours != 48 {
		t.Errorf("Expected overridden horizon 48, got %d", cfg.Prediction.HorizonHours)
	}
	if cfg.Prediction.Enabled {
		t.Error("Expected prediction to be disabled")
	}
	if cfg.Database.Path != "/tmp/override.db" {
		t.Errorf("Expected overridden database path, got %s", cfg.Database.Path)
	}
	if cfg.Monitor.CronSpec != "*/15 * * * *" {
		t.Errorf("Expected overridden cron spec, got %s", cfg.Monitor.CronSpec)
	}
}

// TestLoadIgnoresMalformedValues verifies garbage values fall back to
// defaults instead of failing
func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("PREDICTION_TIMEOUT", "not-a-duration")
	t.Setenv("PREDICTION_HORIZON_HOURS", "soon")
	t.Setenv("PREDICTION_ENABLED", "maybe")

	cfg := Load()
	if cfg.Prediction.Timeout != 5*time.Second {
		t.Errorf("Expected default timeout on malformed value, got %v", cfg.Prediction.Timeout)
	}
	if cfg.Prediction.HorizonHours != 24 {
		t.Errorf("Expected default horizon on malformed value, got %d", cfg.Prediction.HorizonHours)
	}
	if !cfg.Prediction.Enabled {
		t.Error("Expected default enabled flag on malformed value")
	}
}
