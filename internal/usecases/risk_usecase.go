// Package usecases contains the application's business logic
package usecases

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sebchi-crtl/sdss/internal/entities"
	"github.com/sebchi-crtl/sdss/internal/repository"
	"github.com/sebchi-crtl/sdss/internal/risk"
)

// RiskUseCase orchestrates flood-risk calculation for regions
type RiskUseCase struct {
	regions    repository.RegionRepository
	alertStore repository.AlertRepository
	aggregator *risk.Aggregator
	blender    *risk.Blender
}

// NewRiskUseCase creates a new risk calculation use case
func NewRiskUseCase(regions repository.RegionRepository, alertStore repository.AlertRepository, aggregator *risk.Aggregator, blender *risk.Blender) *RiskUseCase {
	return &RiskUseCase{
		regions:    regions,
		alertStore: alertStore,
		aggregator: aggregator,
		blender:    blender,
	}
}

// CalculateRisk evaluates flood risk for one region (when regionCode is
// set) or all regions. In batch mode a failure on one region is logged
// and the remaining regions are still evaluated; only an unknown code in
// single-region mode is returned to the caller.
func (uc *RiskUseCase) CalculateRisk(ctx context.Context, regionCode string, forceUpdate, useML bool) ([]entities.RiskResult, error) {
	var regions []entities.Region

	if regionCode != "" {
		region, err := uc.regions.GetRegion(regionCode)
		if err != nil {
			return nil, err
		}
		regions = []entities.Region{region}
	} else {
		var err error
		regions, err = uc.regions.ListRegions()
		if err != nil {
			return nil, fmt.Errorf("failed to list regions: %v", err)
		}
	}

	log.Printf("Calculating flood risk for %d region(s), useML=%v", len(regions), useML)

	results := make([]entities.RiskResult, 0, len(regions))
	for _, region := range regions {
		conditions := uc.aggregator.BuildConditions(region.Lat, region.Lon, risk.DefaultLookback)
		result := uc.blender.Evaluate(ctx, region.Code, conditions, region.RiskLabel, useML)
		results = append(results, result)

		log.Printf("Region %s: score=%.3f level=%s confidence=%.2f", region.Code, result.Score, result.Level, result.Confidence)

		if result.Level != region.RiskLabel || forceUpdate {
			if err := uc.regions.UpdateRiskLabel(region.Code, result.Level); err != nil {
				log.Printf("Warning: failed to update risk label for %s: %v", region.Code, err)
			}
		}

		if result.Level == entities.RiskCritical {
			uc.raiseFloodAlert(region, result)
		}
	}

	return results, nil
}

// raiseFloodAlert emits a FLOOD alert for a critically classified region,
// applying the same one-hour de-duplication window the rule evaluator
// uses
func (uc *RiskUseCase) raiseFloodAlert(region entities.Region, result entities.RiskResult) {
	recent, err := uc.alertStore.FindRecentAlert(entities.AlertFlood, entities.RiskCritical, time.Now().Add(-entities.DedupWindow))
	if err != nil {
		log.Printf("Warning: failed to check recent flood alerts for %s: %v", region.Code, err)
		return
	}
	if recent != nil {
		log.Printf("Suppressing duplicate FLOOD alert for %s (last fired %s)", region.Code, recent.CreatedAt.Format(time.RFC3339))
		return
	}

	message := fmt.Sprintf("Flood risk critical for %s (%s): score %.2f", region.Name, region.Code, result.Score)
	if _, err := uc.alertStore.InsertAlert(entities.AlertFlood, entities.RiskCritical, message); err != nil {
		log.Printf("Warning: failed to insert flood alert for %s: %v", region.Code, err)
		return
	}
	log.Printf("Created FLOOD alert for region %s", region.Code)
}

// GetAvailableRegions returns "CODE Name" entries for every region
func (uc *RiskUseCase) GetAvailableRegions() ([]string, error) {
	log.Println("Retrieving list of monitored regions")
	regions, err := uc.regions.ListRegions()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(regions))
	for _, region := range regions {
		names = append(names, fmt.Sprintf("%s %s", region.Code, region.Name))
	}
	return names, nil
}

// FormatRiskResult formats a risk result for display
func (uc *RiskUseCase) FormatRiskResult(region entities.Region, result entities.RiskResult) string {
	var out strings.Builder
	out.WriteString(fmt.Sprintf("Flood risk for %s (%s):\n\n", region.Name, region.Code))
	out.WriteString(fmt.Sprintf("⚠️ Level: %s\n", strings.ToUpper(string(result.Level))))
	out.WriteString(fmt.Sprintf("📊 Score: %.2f (confidence %.0f%%)\n", result.Score, result.Confidence*100))
	out.WriteString(fmt.Sprintf("🌧 Rainfall 24h: %.1f mm\n", result.Conditions.Rainfall24h))
	out.WriteString(fmt.Sprintf("🌊 River level: %.2f m\n", result.Conditions.RiverLevel))
	out.WriteString(fmt.Sprintf("🌡 Temperature: %.1f °C\n", result.Conditions.Temperature))

	out.WriteString("\nRecommendations:\n")
	for _, line := range result.Recommendations {
		out.WriteString("• " + line + "\n")
	}

	out.WriteString(fmt.Sprintf("\n🕒 Evaluated at: %s", result.Timestamp.Format("2006-01-02 15:04:05 MST")))
	return out.String()
}

// GetRegion exposes region lookup to the API layer
func (uc *RiskUseCase) GetRegion(code string) (entities.Region, error) {
	return uc.regions.GetRegion(code)
}
