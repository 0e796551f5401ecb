package risk

import (
	"log"
	"time"

	"github.com/sebchi-crtl/sdss/internal/entities"
)

// ReadingSource is the query capability the aggregator needs from the
// reading store
type ReadingSource interface {
	ReadingsNear(lat, lon, radiusDeg float64, sensorType entities.SensorType, since time.Time) ([]entities.SensorReading, error)
}

const (
	// SensorRadiusDeg is the bounding-box half-width used to select
	// sensors around a region's center (±0.5° is roughly 50km).
	SensorRadiusDeg = 0.5

	// DefaultLookback is the window used for current-condition queries.
	DefaultLookback = 24 * time.Hour

	rainfall7dWindow = 7 * 24 * time.Hour
)

// Aggregator reduces recent sensor readings near a location into a
// fixed-shape condition vector
type Aggregator struct {
	source ReadingSource
}

// NewAggregator creates a new condition aggregator
func NewAggregator(source ReadingSource) *Aggregator {
	return &Aggregator{source: source}
}

// BuildConditions collects readings within the bounding box around
// (lat, lon) and reduces them per quantity. Any quantity without usable
// readings keeps its neutral default, so the aggregator always returns a
// fully populated vector and never fails; sparse sensor coverage only
// degrades it toward neutral assumptions. Query errors are logged and
// treated the same as missing data.
func (a *Aggregator) BuildConditions(lat, lon float64, lookback time.Duration) entities.ConditionVector {
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	now := time.Now()
	conditions := entities.NeutralConditions()

	// Rainfall: peak 24h reading for the short-term figure, and the sum
	// over a dedicated 7-day window for the weekly figure. When the
	// lookback is shorter than 7 days the sum over the lookback window is
	// used instead, which understates the true 7-day total.
	if rain := a.fetch(lat, lon, entities.SensorRain, now.Add(-lookback)); len(rain) > 0 {
		conditions.Rainfall24h = maxValue(rain)
	}
	weekWindow := rainfall7dWindow
	if lookback < rainfall7dWindow {
		weekWindow = lookback
	}
	if rain7d := a.fetch(lat, lon, entities.SensorRain, now.Add(-weekWindow)); len(rain7d) > 0 {
		conditions.Rainfall7d = sumValues(rain7d)
	}

	// River level: peak RIVER reading, falling back to WATER_LEVEL
	// sensors where no dedicated river gauges exist.
	river := a.fetch(lat, lon, entities.SensorRiver, now.Add(-lookback))
	if len(river) == 0 {
		river = a.fetch(lat, lon, entities.SensorWaterLevel, now.Add(-lookback))
	}
	if len(river) > 0 {
		conditions.RiverLevel = maxValue(river)
	}

	// Point-in-time quantities use the most recent reading.
	if soil := a.fetch(lat, lon, entities.SensorSoil, now.Add(-lookback)); len(soil) > 0 {
		conditions.SoilMoisture = latestValue(soil)
	}
	if temp := a.fetch(lat, lon, entities.SensorTemp, now.Add(-lookback)); len(temp) > 0 {
		conditions.Temperature = latestValue(temp)
	}
	if humidity := a.fetch(lat, lon, entities.SensorHumidity, now.Add(-lookback)); len(humidity) > 0 {
		conditions.Humidity = latestValue(humidity)
	}
	if pressure := a.fetch(lat, lon, entities.SensorPressure, now.Add(-lookback)); len(pressure) > 0 {
		conditions.Pressure = latestValue(pressure)
	}
	if wind := a.fetch(lat, lon, entities.SensorWind, now.Add(-lookback)); len(wind) > 0 {
		conditions.WindSpeed = latestValue(wind)
	}

	return conditions
}

// fetch queries one quantity and drops readings with unusable values
func (a *Aggregator) fetch(lat, lon float64, sensorType entities.SensorType, since time.Time) []entities.SensorReading {
	readings, err := a.source.ReadingsNear(lat, lon, SensorRadiusDeg, sensorType, since)
	if err != nil {
		log.Printf("Warning: failed to fetch %s readings near (%.4f, %.4f): %v", sensorType, lat, lon, err)
		return nil
	}

	valid := readings[:0]
	dropped := 0
	for _, r := range readings {
		if r.Valid() {
			valid = append(valid, r)
		} else {
			dropped++
		}
	}
	if dropped > 0 {
		log.Printf("Excluded %d invalid %s readings near (%.4f, %.4f)", dropped, sensorType, lat, lon)
	}
	return valid
}

func maxValue(readings []entities.SensorReading) float64 {
	max := readings[0].Value
	for _, r := range readings[1:] {
		if r.Value > max {
			max = r.Value
		}
	}
	return max
}

func sumValues(readings []entities.SensorReading) float64 {
	var sum float64
	for _, r := range readings {
		sum += r.Value
	}
	return sum
}

// latestValue relies on the store returning readings newest-first
func latestValue(readings []entities.SensorReading) float64 {
	latest := readings[0]
	for _, r := range readings[1:] {
		if r.Timestamp.After(latest.Timestamp) {
			latest = r
		}
	}
	return latest.Value
}
