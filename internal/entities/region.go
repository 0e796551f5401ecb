package entities

// RiskLabel is the qualitative historical flood-risk classification of a region
type RiskLabel string

const (
	RiskLow      RiskLabel = "low"
	RiskMedium   RiskLabel = "medium"
	RiskHigh     RiskLabel = "high"
	RiskCritical RiskLabel = "critical"
)

// Region represents a monitored geographic unit
type Region struct {
	Code      string // unique identifying code, e.g. a state code
	Name      string
	RiskLabel RiskLabel // historical flood-risk label, updated on recalculation
	Lat       float64
	Lon       float64
}
