package usecases

import (
	"fmt"
	"log"
	"strings"

	"github.com/sebchi-crtl/sdss/internal/alerts"
	"github.com/sebchi-crtl/sdss/internal/entities"
	"github.com/sebchi-crtl/sdss/internal/repository"
)

// AlertUseCase exposes alert evaluation and browsing
type AlertUseCase struct {
	evaluator *alerts.Evaluator
	store     repository.AlertRepository
}

// NewAlertUseCase creates a new alert use case
func NewAlertUseCase(evaluator *alerts.Evaluator, store repository.AlertRepository) *AlertUseCase {
	return &AlertUseCase{
		evaluator: evaluator,
		store:     store,
	}
}

// EvaluateAlerts runs one evaluation pass over all configured rules and
// returns the number of alerts created along with the alerts themselves
func (uc *AlertUseCase) EvaluateAlerts() (int, []entities.Alert, error) {
	log.Println("Starting alert evaluation pass...")
	result, err := uc.evaluator.Evaluate()
	if err != nil {
		return 0, nil, fmt.Errorf("failed to evaluate alerts: %v", err)
	}
	return result.Created, result.Alerts, nil
}

// RecentAlerts returns the newest alerts, up to limit
func (uc *AlertUseCase) RecentAlerts(limit int) ([]entities.Alert, error) {
	return uc.store.ListAlerts(limit)
}

// FormatAlerts formats a list of alerts for display
func (uc *AlertUseCase) FormatAlerts(alertList []entities.Alert) string {
	if len(alertList) == 0 {
		return "No active alerts."
	}

	var out strings.Builder
	out.WriteString(fmt.Sprintf("Latest alerts (%d):\n\n", len(alertList)))
	for _, alert := range alertList {
		out.WriteString(fmt.Sprintf("🚨 [%s/%s] %s\n", alert.Type, strings.ToUpper(string(alert.Level)), alert.Message))
		out.WriteString(fmt.Sprintf("    🕒 %s\n\n", alert.CreatedAt.Format("2006-01-02 15:04:05")))
	}
	return out.String()
}
