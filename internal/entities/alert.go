package entities

import "time"

// AlertType identifies what kind of condition an alert or rule concerns
type AlertType string

const (
	AlertRain      AlertType = "RAIN"
	AlertRiverRise AlertType = "RIVER_RISE"
	AlertSystem    AlertType = "SYSTEM"
	AlertFlood     AlertType = "FLOOD"
)

// AlertRule is administrator-managed configuration telling the evaluator
// when to raise an alert. Rules are read-only to the evaluator.
type AlertRule struct {
	ID              int64
	Name            string
	Type            AlertType
	Level           RiskLabel // severity of the alert this rule raises
	Threshold       float64
	// MessageTemplate optionally overrides the built-in alert message.
	// It is a fmt format string receiving the same arguments as the
	// built-in message for the rule's type (RAIN and RIVER_RISE: trigger
	// value then threshold, both float64; SYSTEM: critical then warning
	// counts, both int). A template whose verbs don't match is ignored.
	MessageTemplate string
	StatusFilter    ReadingStatus // optional, restricts SYSTEM rules to one status
}

// Alert is an emitted notification. Alerts are append-only; the evaluator
// suppresses a second alert of the same (type, level) within DedupWindow.
type Alert struct {
	ID        int64
	Type      AlertType
	Level     RiskLabel
	Message   string
	CreatedAt time.Time
}

// DedupWindow is the span within which a second alert of the same type
// and level is suppressed.
const DedupWindow = time.Hour
