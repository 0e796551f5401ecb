package risk

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/sebchi-crtl/sdss/internal/entities"
)

// Predictor is the contract for the external flood-prediction model. A
// failed call must return entities.ErrPredictionUnavailable; the blender
// treats that as a signal to fall back, never as a hard failure.
type Predictor interface {
	Predict(ctx context.Context, regionCode string, conditions entities.ConditionVector, horizonHours int) (entities.Prediction, error)
}

// Blending weights. The ML path trusts the model most; the fallback path
// redistributes its weight between the two local signals.
const (
	mlWeight            = 0.6
	mlWeatherWeight     = 0.25
	mlHistoricalWeight  = 0.15
	fallbackWeather     = 0.7
	fallbackHistorical  = 0.3
	fallbackConfidence  = 0.6
	defaultHorizonHours = 24
)

// Classification boundaries, inclusive on the lower bound of each tier.
const (
	criticalThreshold = 0.8
	highThreshold     = 0.6
	mediumThreshold   = 0.4
)

// Blender combines the weather, historical and model signals into a
// final risk result
type Blender struct {
	predictor    Predictor
	horizonHours int
}

// NewBlender creates a risk blender. predictor may be nil, in which case
// ML blending is never attempted.
func NewBlender(predictor Predictor, horizonHours int) *Blender {
	if horizonHours <= 0 {
		horizonHours = defaultHorizonHours
	}
	return &Blender{predictor: predictor, horizonHours: horizonHours}
}

// Evaluate produces a risk result for one region. It never fails: when
// ML blending is requested but the prediction service is unavailable, it
// degrades to the weather+historical path instead of propagating the
// error.
func (b *Blender) Evaluate(ctx context.Context, regionCode string, conditions entities.ConditionVector, label entities.RiskLabel, useML bool) entities.RiskResult {
	weatherRisk := WeatherRisk(conditions)
	historicalRisk := HistoricalRisk(label)

	score := fallbackWeather*weatherRisk + fallbackHistorical*historicalRisk
	confidence := fallbackConfidence
	factors := entities.FactorScores{
		Weather:    weatherRisk,
		Historical: historicalRisk,
	}

	if useML && b.predictor != nil {
		prediction, err := b.predictor.Predict(ctx, regionCode, conditions, b.horizonHours)
		switch {
		case err == nil:
			score = mlWeight*prediction.Risk + mlWeatherWeight*weatherRisk + mlHistoricalWeight*historicalRisk
			confidence = prediction.Confidence
			factors.ML = prediction.Risk
			factors.MLUsed = true
		case errors.Is(err, entities.ErrPredictionUnavailable):
			log.Printf("Prediction service unavailable for region %s, using weather+historical blend: %v", regionCode, err)
		default:
			// Unexpected errors get the same non-fatal treatment.
			log.Printf("Prediction call failed for region %s, using weather+historical blend: %v", regionCode, err)
		}
	}

	score = clamp01(score)
	level := Classify(score)

	return entities.RiskResult{
		RegionCode:      regionCode,
		Level:           level,
		Score:           score,
		Confidence:      confidence,
		Factors:         factors,
		Conditions:      conditions,
		Recommendations: Recommendations(level, conditions),
		Timestamp:       time.Now(),
	}
}

// Classify maps a risk score to its discrete level. A score of exactly
// 0.8 is critical; the lower bound of each tier is inclusive.
func Classify(score float64) entities.RiskLabel {
	switch {
	case score >= criticalThreshold:
		return entities.RiskCritical
	case score >= highThreshold:
		return entities.RiskHigh
	case score >= mediumThreshold:
		return entities.RiskMedium
	default:
		return entities.RiskLow
	}
}
