package risk

import "github.com/sebchi-crtl/sdss/internal/entities"

// HistoricalRisk maps a region's qualitative flood-risk label to a prior
// in [0,1]. Unknown or missing labels fall back to the medium prior, so
// the function is total.
func HistoricalRisk(label entities.RiskLabel) float64 {
	switch label {
	case entities.RiskLow:
		return 0.1
	case entities.RiskMedium:
		return 0.3
	case entities.RiskHigh:
		return 0.6
	case entities.RiskCritical:
		return 0.8
	default:
		return 0.3
	}
}
