// Package alerts implements the rule-driven alert evaluator
package alerts

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sebchi-crtl/sdss/internal/entities"
)

// ReadingSource is the query capability the evaluator needs from the
// reading store
type ReadingSource interface {
	ReadingsSince(sensorType entities.SensorType, since time.Time) ([]entities.SensorReading, error)
}

// RuleSource lists the configured alert rules; read-only to the evaluator
type RuleSource interface {
	ListRules() ([]entities.AlertRule, error)
}

// AlertStore persists emitted alerts and answers the de-duplication query
type AlertStore interface {
	InsertAlert(alertType entities.AlertType, level entities.RiskLabel, message string) (entities.Alert, error)
	FindRecentAlert(alertType entities.AlertType, level entities.RiskLabel, since time.Time) (*entities.Alert, error)
}

// Lookback windows per alert type.
const (
	rainWindow   = 24 * time.Hour
	riverWindow  = time.Hour
	statusWindow = time.Hour

	warnCountLimit = 2 // SYSTEM rules fire above this many WARN readings
)

// RuleOutcome records what happened to one rule during an evaluation
// pass. Collecting outcomes explicitly keeps the partial-failure
// semantics visible instead of hiding them behind suppressed errors.
type RuleOutcome struct {
	Rule       entities.AlertRule
	Fired      bool
	Suppressed bool // fired but de-duplicated against a recent alert
	Alert      *entities.Alert
	Err        error
}

// PassResult summarizes one evaluation pass over all rules
type PassResult struct {
	Created  int
	Alerts   []entities.Alert
	Outcomes []RuleOutcome
}

// Evaluator runs configured alert rules against recent sensor readings
type Evaluator struct {
	readings ReadingSource
	rules    RuleSource
	alerts   AlertStore
}

// NewEvaluator creates a new alert rule evaluator
func NewEvaluator(readings ReadingSource, rules RuleSource, alerts AlertStore) *Evaluator {
	return &Evaluator{
		readings: readings,
		rules:    rules,
		alerts:   alerts,
	}
}

// Evaluate runs a single pass over all configured rules. A failure on
// one rule is logged and recorded in its outcome; the pass continues
// with the remaining rules and reports the partial result. Only a
// failure to list the rules themselves aborts the pass.
func (e *Evaluator) Evaluate() (PassResult, error) {
	rules, err := e.rules.ListRules()
	if err != nil {
		return PassResult{}, fmt.Errorf("failed to list alert rules: %v", err)
	}
	log.Printf("Evaluating %d alert rules", len(rules))

	var result PassResult
	for _, rule := range rules {
		outcome := e.evaluateRule(rule)
		if outcome.Err != nil {
			log.Printf("Warning: rule %q evaluation failed, skipping: %v", rule.Name, outcome.Err)
		}
		if outcome.Alert != nil {
			result.Created++
			result.Alerts = append(result.Alerts, *outcome.Alert)
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	log.Printf("Alert evaluation pass complete: %d alerts created", result.Created)
	return result, nil
}

// evaluateRule aggregates the readings relevant to one rule and decides
// whether to fire
func (e *Evaluator) evaluateRule(rule entities.AlertRule) RuleOutcome {
	outcome := RuleOutcome{Rule: rule}

	var fired bool
	var message string

	switch rule.Type {
	case entities.AlertRain:
		readings, err := e.fetch(entities.SensorRain, rainWindow, rule)
		if err != nil {
			outcome.Err = err
			return outcome
		}
		if len(readings) == 0 {
			return outcome
		}
		var total float64
		for _, r := range readings {
			total += r.Value
		}
		if total > rule.Threshold {
			fired = true
			message = e.formatMessage(rule, "Heavy rainfall: %.1fmm in the last 24h (threshold %gmm)", total, rule.Threshold)
		}

	case entities.AlertRiverRise:
		readings, err := e.fetch(entities.SensorRiver, riverWindow, rule)
		if err != nil {
			outcome.Err = err
			return outcome
		}
		if len(readings) == 0 {
			return outcome
		}
		// Readings come back newest-first.
		latest := readings[0].Value
		if latest > rule.Threshold {
			fired = true
			message = e.formatMessage(rule, "River level rising: %.2fm (threshold %.2fm)", latest, rule.Threshold)
		}

	case entities.AlertSystem:
		readings, err := e.fetch("", statusWindow, rule)
		if err != nil {
			outcome.Err = err
			return outcome
		}
		if len(readings) == 0 {
			return outcome
		}
		var critCount, warnCount int
		for _, r := range readings {
			if rule.StatusFilter != "" && r.Status != rule.StatusFilter {
				continue
			}
			switch r.Status {
			case entities.StatusCrit:
				critCount++
			case entities.StatusWarn:
				warnCount++
			}
		}
		if critCount > 0 || warnCount > warnCountLimit {
			fired = true
			message = e.formatMessage(rule, "Sensor health degraded: %d critical, %d warning readings in the last hour", critCount, warnCount)
		}

	default:
		// FLOOD alerts are raised by the risk pipeline, not by reading
		// aggregation; rules of that type (and unknown types) are skipped.
		log.Printf("Skipping rule %q: no reading aggregation for alert type %s", rule.Name, rule.Type)
		return outcome
	}

	if !fired {
		return outcome
	}
	outcome.Fired = true

	// De-duplicate against recently fired alerts of the same type and
	// level. The check-then-insert gap is accepted as best effort;
	// callers needing strict de-duplication serialize evaluation passes.
	recent, err := e.alerts.FindRecentAlert(rule.Type, rule.Level, time.Now().Add(-entities.DedupWindow))
	if err != nil {
		outcome.Err = err
		return outcome
	}
	if recent != nil {
		log.Printf("Suppressing duplicate %s/%s alert (last fired %s)", rule.Type, rule.Level, recent.CreatedAt.Format(time.RFC3339))
		outcome.Suppressed = true
		return outcome
	}

	alert, err := e.alerts.InsertAlert(rule.Type, rule.Level, message)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	log.Printf("Created %s/%s alert: %s", alert.Type, alert.Level, alert.Message)
	outcome.Alert = &alert
	return outcome
}

// fetch queries the rule's window and drops readings with unusable
// values, the same exclusion the condition aggregator applies. A NaN or
// out-of-range value must never poison a sum or a latest-value
// comparison and suppress a real alert.
func (e *Evaluator) fetch(sensorType entities.SensorType, window time.Duration, rule entities.AlertRule) ([]entities.SensorReading, error) {
	readings, err := e.readings.ReadingsSince(sensorType, time.Now().Add(-window))
	if err != nil {
		return nil, err
	}

	valid := readings[:0]
	dropped := 0
	for _, r := range readings {
		if r.Valid() {
			valid = append(valid, r)
		} else {
			dropped++
		}
	}
	if dropped > 0 {
		log.Printf("Excluded %d invalid readings while evaluating rule %q", dropped, rule.Name)
	}
	return valid, nil
}

// formatMessage applies the rule's message template when one is
// configured; the template receives the same arguments as the built-in
// message. A template whose verbs don't match those arguments is
// ignored in favor of the built-in message.
func (e *Evaluator) formatMessage(rule entities.AlertRule, format string, args ...interface{}) string {
	if rule.MessageTemplate != "" {
		msg := fmt.Sprintf(rule.MessageTemplate, args...)
		if !strings.Contains(msg, "%!") {
			return msg
		}
		log.Printf("Warning: message template for rule %q does not match its arguments, using built-in message", rule.Name)
	}
	return fmt.Sprintf(format, args...)
}
