package risk

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/sebchi-crtl/sdss/internal/entities"
)

// fakeReadingSource serves canned readings per sensor type and records
// the windows it was queried with
type fakeReadingSource struct {
	readings map[entities.SensorType][]entities.SensorReading
	err      error
	queries  []time.Time
}

func (f *fakeReadingSource) ReadingsNear(lat, lon, radiusDeg float64, sensorType entities.SensorType, since time.Time) ([]entities.SensorReading, error) {
	f.queries = append(f.queries, since)
	if f.err != nil {
		return nil, f.err
	}
	return f.readings[sensorType], nil
}

func reading(sensorType entities.SensorType, value float64, age time.Duration) entities.SensorReading {
	return entities.SensorReading{
		SensorID:  "test-sensor",
		Type:      sensorType,
		Value:     value,
		Status:    entities.StatusOK,
		Timestamp: time.Now().Add(-age),
	}
}

// TestBuildConditionsDefaults verifies every quantity keeps its neutral
// default when no readings exist
func TestBuildConditionsDefaults(t *testing.T) {
	source := &fakeReadingSource{readings: map[entities.SensorType][]entities.SensorReading{}}
	aggregator := NewAggregator(source)

	conditions := aggregator.BuildConditions(6.5, 3.4, DefaultLookback)

	if conditions != entities.NeutralConditions() {
		t.Errorf("Expected neutral conditions with no sensor coverage, got %+v", conditions)
	}
}

// TestBuildConditionsReductions verifies the per-quantity reduction rules
func TestBuildConditionsReductions(t *testing.T) {
	source := &fakeReadingSource{readings: map[entities.SensorType][]entities.SensorReading{
		entities.SensorRain: {
			reading(entities.SensorRain, 12, 2*time.Hour),
			reading(entities.SensorRain, 30, 10*time.Hour),
			reading(entities.SensorRain, 5, 20*time.Hour),
		},
		entities.SensorRiver: {
			reading(entities.SensorRiver, 2.4, time.Hour),
			reading(entities.SensorRiver, 3.1, 5*time.Hour),
		},
		entities.SensorSoil: {
			reading(entities.SensorSoil, 0.7, time.Hour),
			reading(entities.SensorSoil, 0.2, 6*time.Hour),
		},
		entities.SensorTemp: {
			reading(entities.SensorTemp, 31, 30*time.Minute),
			reading(entities.SensorTemp, 22, 12*time.Hour),
		},
	}}
	aggregator := NewAggregator(source)

	conditions := aggregator.BuildConditions(6.5, 3.4, DefaultLookback)

	// Rainfall 24h uses the peak reading; the weekly figure sums
	// everything the 7-day query returned.
	if conditions.Rainfall24h != 30 {
		t.Errorf("Expected peak 24h rainfall 30, got %v", conditions.Rainfall24h)
	}
	if conditions.Rainfall7d != 47 {
		t.Errorf("Expected 7d rainfall sum 47, got %v", conditions.Rainfall7d)
	}

	// River level uses the peak reading.
	if conditions.RiverLevel != 3.1 {
		t.Errorf("Expected peak river level 3.1, got %v", conditions.RiverLevel)
	}

	// Point quantities use the most recent reading.
	if conditions.SoilMoisture != 0.7 {
		t.Errorf("Expected latest soil moisture 0.7, got %v", conditions.SoilMoisture)
	}
	if conditions.Temperature != 31 {
		t.Errorf("Expected latest temperature 31, got %v", conditions.Temperature)
	}

	// Quantities with no readings keep their defaults.
	if conditions.Humidity != entities.DefaultHumidity {
		t.Errorf("Expected default humidity, got %v", conditions.Humidity)
	}
	if conditions.WindDirection != entities.DefaultWindDirection {
		t.Errorf("Expected default wind direction, got %v", conditions.WindDirection)
	}
}

// TestBuildConditionsWaterLevelFallback verifies WATER_LEVEL sensors are
// used where no dedicated river gauges exist
func TestBuildConditionsWaterLevelFallback(t *testing.T) {
	source := &fakeReadingSource{readings: map[entities.SensorType][]entities.SensorReading{
		entities.SensorWaterLevel: {
			reading(entities.SensorWaterLevel, 4.2, time.Hour),
		},
	}}
	aggregator := NewAggregator(source)

	conditions := aggregator.BuildConditions(6.5, 3.4, DefaultLookback)

	if conditions.RiverLevel != 4.2 {
		t.Errorf("Expected river level 4.2 from WATER_LEVEL fallback, got %v", conditions.RiverLevel)
	}
}

// TestBuildConditionsExcludesInvalidReadings verifies NaN and
// out-of-range values never reach the reductions
func TestBuildConditionsExcludesInvalidReadings(t *testing.T) {
	source := &fakeReadingSource{readings: map[entities.SensorType][]entities.SensorReading{
		entities.SensorRain: {
			reading(entities.SensorRain, math.NaN(), time.Hour),
			reading(entities.SensorRain, -5, 2*time.Hour),
			reading(entities.SensorRain, 2000, 3*time.Hour),
			reading(entities.SensorRain, 18, 4*time.Hour),
		},
		entities.SensorTemp: {
			reading(entities.SensorTemp, math.Inf(1), time.Hour),
		},
	}}
	aggregator := NewAggregator(source)

	conditions := aggregator.BuildConditions(6.5, 3.4, DefaultLookback)

	if conditions.Rainfall24h != 18 {
		t.Errorf("Expected only the valid rainfall reading to survive, got %v", conditions.Rainfall24h)
	}
	if conditions.Temperature != entities.DefaultTemperature {
		t.Errorf("Expected default temperature after dropping the Inf reading, got %v", conditions.Temperature)
	}
}

// TestBuildConditionsNeverFails verifies query errors degrade to
// defaults instead of propagating
func TestBuildConditionsNeverFails(t *testing.T) {
	source := &fakeReadingSource{err: errors.New("database is locked")}
	aggregator := NewAggregator(source)

	conditions := aggregator.BuildConditions(6.5, 3.4, DefaultLookback)

	if conditions != entities.NeutralConditions() {
		t.Errorf("Expected neutral conditions on query failure, got %+v", conditions)
	}
}
