// Package risk implements the flood-risk scoring core: condition
// aggregation, the weather and historical risk functions, and the
// blender that combines them with the external model prediction.
package risk

import "github.com/sebchi-crtl/sdss/internal/entities"

// Weights of the weather risk function. They sum to 1.0 and each term is
// clamped to [0,1] before weighting, so the result stays in [0,1].
const (
	rainfallWeight    = 0.4
	riverWeight       = 0.3
	soilWeight        = 0.2
	temperatureWeight = 0.1

	rainfallSaturation = 50 // mm in 24h at which the rainfall term maxes out
	riverBase          = 2  // m, normal river level
	riverSaturation    = 3  // m above base at which the river term maxes out
	temperatureBase    = 25 // °C
	temperatureSpan    = 15 // °C above base at which the temperature term maxes out
)

// WeatherRisk maps a condition vector to a weather-risk score in [0,1].
// It is pure and deterministic.
func WeatherRisk(c entities.ConditionVector) float64 {
	rainfallTerm := clamp01(c.Rainfall24h / rainfallSaturation)
	riverTerm := clamp01((c.RiverLevel - riverBase) / riverSaturation)
	soilTerm := clamp01(c.SoilMoisture)
	temperatureTerm := clamp01((c.Temperature - temperatureBase) / temperatureSpan)

	return rainfallWeight*rainfallTerm +
		riverWeight*riverTerm +
		soilWeight*soilTerm +
		temperatureWeight*temperatureTerm
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
