// Package entities contains the core domain objects for the flood monitoring system
package entities

import (
	"math"
	"time"
)

// SensorType identifies the physical quantity a sensor measures
type SensorType string

const (
	SensorRain       SensorType = "RAIN"
	SensorRiver      SensorType = "RIVER"
	SensorWaterLevel SensorType = "WATER_LEVEL"
	SensorSoil       SensorType = "SOIL"
	SensorTemp       SensorType = "TEMP"
	SensorHumidity   SensorType = "HUMIDITY"
	SensorPressure   SensorType = "PRESSURE"
	SensorWind       SensorType = "WIND"
)

// ReadingStatus is the health flag a sensor attaches to a measurement
type ReadingStatus string

const (
	StatusOK   ReadingStatus = "OK"
	StatusWarn ReadingStatus = "WARN"
	StatusCrit ReadingStatus = "CRIT"
)

// SensorReading represents a single immutable measurement from a sensor.
// Readings are append-only and never mutated once written.
type SensorReading struct {
	ID        int64
	SensorID  string
	Type      SensorType
	Value     float64
	Status    ReadingStatus // optional, empty when the sensor reports none
	Lat       float64
	Lon       float64
	Timestamp time.Time
}

// physical plausibility bounds per sensor type, used to reject garbage
// values before they reach aggregation
var valueBounds = map[SensorType][2]float64{
	SensorRain:       {0, 1000},
	SensorRiver:      {0, 50},
	SensorWaterLevel: {0, 50},
	SensorSoil:       {0, 1},
	SensorTemp:       {-60, 60},
	SensorHumidity:   {0, 100},
	SensorPressure:   {800, 1200},
	SensorWind:       {0, 150},
}

// Valid reports whether the reading carries a usable numeric value.
// Readings failing this check are excluded from aggregation rather than
// aborting it.
func (r SensorReading) Valid() bool {
	if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return false
	}
	bounds, ok := valueBounds[r.Type]
	if !ok {
		// Unknown sensor types pass through; the aggregator ignores
		// quantities it has no use for.
		return true
	}
	return r.Value >= bounds[0] && r.Value <= bounds[1]
}
