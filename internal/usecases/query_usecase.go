package usecases

import (
	"context"
	"fmt"
	"log"

	"github.com/sebchi-crtl/sdss/internal/integration/openai"
)

// QueryUseCase routes free-text user questions to the risk and alert
// use cases via the OpenAI interpreter
type QueryUseCase struct {
	riskUC        *RiskUseCase
	alertUC       *AlertUseCase
	openAIService openai.OpenAIService
}

// NewQueryUseCase creates a new natural language query use case
func NewQueryUseCase(riskUC *RiskUseCase, alertUC *AlertUseCase, openAIService openai.OpenAIService) *QueryUseCase {
	return &QueryUseCase{
		riskUC:        riskUC,
		alertUC:       alertUC,
		openAIService: openAIService,
	}
}

// HandleNaturalLanguageQuery interprets a user's free-text query using
// the AI service and returns an appropriate response string.
func (uc *QueryUseCase) HandleNaturalLanguageQuery(ctx context.Context, query string) (string, error) {
	log.Printf("Interpreting natural language query: %s", query)

	regions, err := uc.riskUC.GetAvailableRegions()
	if err != nil {
		log.Printf("Error fetching available regions: %v", err)
		return "Sorry, I couldn't fetch the list of regions right now.", nil
	}

	agentResp, err := uc.openAIService.InterpretUserQuery(ctx, query, regions)
	if err != nil {
		log.Printf("Error interpreting user query via OpenAI: %v", err)
		// Return a generic error message for the user
		return "Sorry, I'm having trouble understanding right now. Please try again later or use /help.", nil
	}

	log.Printf("Agent response: Command='%s', Region='%s', Message='%s'",
		agentResp.CommandName, agentResp.RegionCode, agentResp.UserMessage)

	switch agentResp.CommandName {
	case "GetRegionRisk":
		if agentResp.RegionCode == "" {
			// Agent identified intent but not a specific region.
			log.Printf("Agent identified intent GetRegionRisk but no specific region found.")
			return agentResp.UserMessage, nil
		}
		log.Printf("Agent identified region: %s. Calculating risk...", agentResp.RegionCode)
		region, err := uc.riskUC.GetRegion(agentResp.RegionCode)
		if err != nil {
			msg := agentResp.UserMessage
			if msg != "" {
				msg += "\n\n"
			}
			msg += fmt.Sprintf("However, I couldn't find the region '%s'. Use /regions to see the monitored ones.", agentResp.RegionCode)
			return msg, nil
		}
		results, err := uc.riskUC.CalculateRisk(ctx, region.Code, false, true)
		if err != nil || len(results) == 0 {
			log.Printf("Error calculating risk after agent interpretation: %v", err)
			return "Sorry, I couldn't calculate the risk for that region right now.", nil
		}
		msg := agentResp.UserMessage
		if msg != "" {
			msg += "\n\n"
		}
		msg += uc.riskUC.FormatRiskResult(region, results[0])
		return msg, nil

	case "ListAlerts":
		alertList, err := uc.alertUC.RecentAlerts(10)
		if err != nil {
			log.Printf("Error fetching alerts after agent interpretation: %v", err)
			return "Sorry, I couldn't fetch the alerts right now.", nil
		}
		msg := agentResp.UserMessage
		if msg != "" {
			msg += "\n\n"
		}
		msg += uc.alertUC.FormatAlerts(alertList)
		return msg, nil

	case "GeneralQuery":
		log.Printf("Agent identified general query.")
		return agentResp.UserMessage, nil

	default:
		log.Printf("Agent returned unexpected command: %s", agentResp.CommandName)
		return "I'm not sure how to respond to that. You can use /help for commands.", nil
	}
}
