package entities

import "time"

// ConditionVector is the reduced numeric snapshot of current weather and
// hydrological state around a region. It is built fresh per risk
// calculation and never persisted as its own entity; missing quantities
// are filled with neutral defaults at construction so consumers never
// have to handle absent fields.
type ConditionVector struct {
	Rainfall24h   float64 `json:"rainfall_24h"`   // mm, peak reading over the last 24h
	Rainfall7d    float64 `json:"rainfall_7d"`    // mm, total over the last 7 days
	RiverLevel    float64 `json:"river_level"`    // m
	SoilMoisture  float64 `json:"soil_moisture"`  // fraction in [0,1]
	Temperature   float64 `json:"temperature"`    // °C
	Humidity      float64 `json:"humidity"`       // %
	Pressure      float64 `json:"pressure"`       // hPa
	WindSpeed     float64 `json:"wind_speed"`     // m/s
	WindDirection float64 `json:"wind_direction"` // degrees
}

// Neutral defaults applied when no sensor coverage exists for a quantity.
const (
	DefaultRainfall24h   = 0
	DefaultRainfall7d    = 0
	DefaultRiverLevel    = 2.0
	DefaultSoilMoisture  = 0.5
	DefaultTemperature   = 25
	DefaultHumidity      = 65
	DefaultPressure      = 1013
	DefaultWindSpeed     = 3
	DefaultWindDirection = 180
)

// NeutralConditions returns a condition vector populated entirely with
// the documented fallback defaults.
func NeutralConditions() ConditionVector {
	return ConditionVector{
		Rainfall24h:   DefaultRainfall24h,
		Rainfall7d:    DefaultRainfall7d,
		RiverLevel:    DefaultRiverLevel,
		SoilMoisture:  DefaultSoilMoisture,
		Temperature:   DefaultTemperature,
		Humidity:      DefaultHumidity,
		Pressure:      DefaultPressure,
		WindSpeed:     DefaultWindSpeed,
		WindDirection: DefaultWindDirection,
	}
}

// FactorScores is the per-signal breakdown of a risk calculation
type FactorScores struct {
	Weather    float64 `json:"weather"`
	Historical float64 `json:"historical"`
	ML         float64 `json:"ml"` // zero when ML blending was not used
	MLUsed     bool    `json:"ml_used"`
}

// RiskResult is the output of a single risk evaluation for one region
type RiskResult struct {
	RegionCode      string
	Level           RiskLabel
	Score           float64 // [0,1]
	Confidence      float64 // [0,1]
	Factors         FactorScores
	Conditions      ConditionVector
	Recommendations []string
	Timestamp       time.Time
}

// Prediction is the risk/confidence pair returned by the external model
// for a single forecast horizon
type Prediction struct {
	Risk       float64
	Confidence float64
}
