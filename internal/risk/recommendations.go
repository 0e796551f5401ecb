package risk

import "github.com/sebchi-crtl/sdss/internal/entities"

// Recommendations returns the advisory lines for a classified risk
// level, with condition-specific notes appended.
func Recommendations(level entities.RiskLabel, conditions entities.ConditionVector) []string {
	var recommendations []string

	switch level {
	case entities.RiskCritical:
		recommendations = append(recommendations,
			"EMERGENCY: Evacuate low-lying areas immediately",
			"Activate emergency response protocols")
	case entities.RiskHigh:
		recommendations = append(recommendations,
			"WARNING: Prepare for potential flooding",
			"Monitor river levels closely")
	case entities.RiskMedium:
		recommendations = append(recommendations,
			"WATCH: Monitor conditions closely",
			"Prepare emergency supplies")
	default:
		recommendations = append(recommendations,
			"INFO: Normal conditions expected")
	}

	if conditions.Rainfall24h > 30 {
		recommendations = append(recommendations, "High rainfall detected - monitor drainage systems")
	}
	if conditions.RiverLevel > 4 {
		recommendations = append(recommendations, "River levels elevated - check flood barriers")
	}
	if conditions.SoilMoisture > 0.8 {
		recommendations = append(recommendations, "High soil moisture - increased runoff risk")
	}

	return recommendations
}
