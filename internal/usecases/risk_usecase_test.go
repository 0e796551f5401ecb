package usecases

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebchi-crtl/sdss/internal/entities"
	"github.com/sebchi-crtl/sdss/internal/repository"
	"github.com/sebchi-crtl/sdss/internal/risk"
)

// stubPredictor returns a fixed prediction or unavailability
type stubPredictor struct {
	prediction entities.Prediction
	err        error
}

func (s *stubPredictor) Predict(ctx context.Context, regionCode string, conditions entities.ConditionVector, horizonHours int) (entities.Prediction, error) {
	if s.err != nil {
		return entities.Prediction{}, s.err
	}
	return s.prediction, nil
}

// newTestStore creates a SQLite store backed by a temp directory
func newTestStore(t *testing.T) *repository.SQLiteStore {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "sdss-usecase-test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := repository.NewSQLiteStore(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newRiskUseCase(store *repository.SQLiteStore, predictor risk.Predictor) *RiskUseCase {
	aggregator := risk.NewAggregator(store)
	blender := risk.NewBlender(predictor, 24)
	return NewRiskUseCase(store, store, aggregator, blender)
}

// TestCalculateRiskSingleRegion tests the single-region path end to end
// against a real store
func TestCalculateRiskSingleRegion(t *testing.T) {
	store := newTestStore(t)
	if err := store.SeedRegions([]entities.Region{
		{Code: "LA", Name: "Lagos", RiskLabel: entities.RiskLow, Lat: 6.5244, Lon: 3.3792},
	}); err != nil {
		t.Fatalf("Failed to seed regions: %v", err)
	}

	// Heavy rain near Lagos pushes the weather signal up.
	if err := store.SaveReadings([]entities.SensorReading{
		{SensorID: "rain-1", Type: entities.SensorRain, Value: 55, Status: entities.StatusOK, Lat: 6.5, Lon: 3.4, Timestamp: time.Now().Add(-time.Hour)},
		{SensorID: "river-1", Type: entities.SensorRiver, Value: 4.8, Status: entities.StatusOK, Lat: 6.6, Lon: 3.3, Timestamp: time.Now().Add(-time.Hour)},
	}); err != nil {
		t.Fatalf("Failed to save readings: %v", err)
	}

	predictor := &stubPredictor{prediction: entities.Prediction{Risk: 0.95, Confidence: 0.9}}
	uc := newRiskUseCase(store, predictor)

	results, err := uc.CalculateRisk(context.Background(), "LA", false, true)
	if err != nil {
		t.Fatalf("CalculateRisk failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	result := results[0]
	if result.RegionCode != "LA" {
		t.Errorf("Expected region LA, got %s", result.RegionCode)
	}
	if !result.Factors.MLUsed {
		t.Error("Expected the model prediction to be used")
	}
	if result.Conditions.Rainfall24h != 55 {
		t.Errorf("Expected aggregated rainfall 55, got %v", result.Conditions.Rainfall24h)
	}
	if result.Conditions.RiverLevel != 4.8 {
		t.Errorf("Expected aggregated river level 4.8, got %v", result.Conditions.RiverLevel)
	}

	// The recalculated label must be stored.
	region, err := store.GetRegion("LA")
	if err != nil {
		t.Fatalf("GetRegion failed: %v", err)
	}
	if region.RiskLabel != result.Level {
		t.Errorf("Expected stored label %s, got %s", result.Level, region.RiskLabel)
	}
}

// TestCalculateRiskUnknownRegion verifies single-region mode surfaces
// the sentinel error
func TestCalculateRiskUnknownRegion(t *testing.T) {
	store := newTestStore(t)
	uc := newRiskUseCase(store, &stubPredictor{})

	_, err := uc.CalculateRisk(context.Background(), "XX", false, false)
	if !errors.Is(err, entities.ErrRegionNotFound) {
		t.Errorf("Expected ErrRegionNotFound, got %v", err)
	}
}

// TestCalculateRiskAllRegions verifies batch mode evaluates every seeded
// region even when the prediction service is down
func TestCalculateRiskAllRegions(t *testing.T) {
	store := newTestStore(t)
	if err := store.SeedRegions([]entities.Region{
		{Code: "BY", Name: "Bayelsa", RiskLabel: entities.RiskCritical, Lat: 4.9167, Lon: 6.2667},
		{Code: "KT", Name: "Katsina", RiskLabel: entities.RiskLow, Lat: 12.9908, Lon: 7.6019},
		{Code: "KO", Name: "Kogi", RiskLabel: entities.RiskMedium, Lat: 7.8019, Lon: 6.7446},
	}); err != nil {
		t.Fatalf("Failed to seed regions: %v", err)
	}

	predictor := &stubPredictor{err: fmt.Errorf("%w: service down", entities.ErrPredictionUnavailable)}
	uc := newRiskUseCase(store, predictor)

	results, err := uc.CalculateRisk(context.Background(), "", false, true)
	if err != nil {
		t.Fatalf("CalculateRisk failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	for _, result := range results {
		if result.Factors.MLUsed {
			t.Errorf("Expected fallback scoring for %s", result.RegionCode)
		}
		if result.Confidence != 0.6 {
			t.Errorf("Expected fallback confidence 0.6 for %s, got %v", result.RegionCode, result.Confidence)
		}
	}
}

// TestCriticalResultRaisesFloodAlert verifies the flood alert path and
// its de-duplication window
func TestCriticalResultRaisesFloodAlert(t *testing.T) {
	store := newTestStore(t)
	if err := store.SeedRegions([]entities.Region{
		{Code: "RI", Name: "Rivers", RiskLabel: entities.RiskCritical, Lat: 4.75, Lon: 7.0},
	}); err != nil {
		t.Fatalf("Failed to seed regions: %v", err)
	}

	// Saturated rainfall near the region plus a maximal model prediction
	// pushes the blended score past the critical boundary.
	if err := store.SaveReadings([]entities.SensorReading{
		{SensorID: "rain-1", Type: entities.SensorRain, Value: 80, Status: entities.StatusOK, Lat: 4.8, Lon: 7.1, Timestamp: time.Now().Add(-time.Hour)},
	}); err != nil {
		t.Fatalf("Failed to save readings: %v", err)
	}
	predictor := &stubPredictor{prediction: entities.Prediction{Risk: 1.0, Confidence: 0.95}}
	uc := newRiskUseCase(store, predictor)

	if _, err := uc.CalculateRisk(context.Background(), "RI", false, true); err != nil {
		t.Fatalf("CalculateRisk failed: %v", err)
	}

	alerts, err := store.ListAlerts(10)
	if err != nil {
		t.Fatalf("ListAlerts failed: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("Expected 1 flood alert, got %d", len(alerts))
	}
	if alerts[0].Type != entities.AlertFlood || alerts[0].Level != entities.RiskCritical {
		t.Errorf("Expected a critical FLOOD alert, got %s/%s", alerts[0].Type, alerts[0].Level)
	}

	// A second critical evaluation inside the window is suppressed.
	if _, err := uc.CalculateRisk(context.Background(), "RI", false, true); err != nil {
		t.Fatalf("CalculateRisk failed: %v", err)
	}
	alerts, err = store.ListAlerts(10)
	if err != nil {
		t.Fatalf("ListAlerts failed: %v", err)
	}
	if len(alerts) != 1 {
		t.Errorf("Expected the duplicate flood alert to be suppressed, got %d alerts", len(alerts))
	}
}

// TestGetAvailableRegions verifies the display list format
func TestGetAvailableRegions(t *testing.T) {
	store := newTestStore(t)
	if err := store.SeedRegions([]entities.Region{
		{Code: "LA", Name: "Lagos", RiskLabel: entities.RiskCritical, Lat: 6.5244, Lon: 3.3792},
		{Code: "AB", Name: "Abia", RiskLabel: entities.RiskHigh, Lat: 5.5333, Lon: 7.4833},
	}); err != nil {
		t.Fatalf("Failed to seed regions: %v", err)
	}
	uc := newRiskUseCase(store, &stubPredictor{})

	regions, err := uc.GetAvailableRegions()
	if err != nil {
		t.Fatalf("GetAvailableRegions failed: %v", err)
	}
	if len(regions) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(regions))
	}
	// Ordered by code.
	if regions[0] != "AB Abia" || regions[1] != "LA Lagos" {
		t.Errorf("Unexpected region list: %v", regions)
	}
}
