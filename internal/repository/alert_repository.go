package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sebchi-crtl/sdss/internal/entities"
)

// RuleRepository defines read access to administrator-configured alert
// rules. The evaluator never writes rules.
type RuleRepository interface {
	ListRules() ([]entities.AlertRule, error)
}

// AlertRepository defines the interface for alert persistence
type AlertRepository interface {
	InsertAlert(alertType entities.AlertType, level entities.RiskLabel, message string) (entities.Alert, error)
	// FindRecentAlert returns the newest alert of the given type and
	// level created after since, or nil when none exists.
	FindRecentAlert(alertType entities.AlertType, level entities.RiskLabel, since time.Time) (*entities.Alert, error)
	ListAlerts(limit int) ([]entities.Alert, error)
}

// ListRules returns all configured alert rules
func (s *SQLiteStore) ListRules() ([]entities.AlertRule, error) {
	rows, err := s.db.Query(`SELECT id, name, type, level, threshold, message_template, status_filter FROM alert_rules ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query alert rules: %v", err)
	}
	defer rows.Close()

	var result []entities.AlertRule
	for rows.Next() {
		var rule entities.AlertRule
		var typ, level string
		var template, filter sql.NullString
		if err := rows.Scan(&rule.ID, &rule.Name, &typ, &level, &rule.Threshold, &template, &filter); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}
		rule.Type = entities.AlertType(typ)
		rule.Level = entities.RiskLabel(level)
		rule.MessageTemplate = template.String
		rule.StatusFilter = entities.ReadingStatus(filter.String)
		result = append(result, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %v", err)
	}

	return result, nil
}

// SaveRule stores an administrator-defined rule. Used by setup tooling
// and tests; not part of the evaluator's interface.
func (s *SQLiteStore) SaveRule(rule entities.AlertRule) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO alert_rules(name, type, level, threshold, message_template, status_filter)
		VALUES(?, ?, ?, ?, ?, ?)`,
		rule.Name, string(rule.Type), string(rule.Level), rule.Threshold, rule.MessageTemplate, string(rule.StatusFilter))
	if err != nil {
		return 0, fmt.Errorf("failed to insert alert rule %s: %v", rule.Name, err)
	}
	return res.LastInsertId()
}

// InsertAlert appends a new alert
func (s *SQLiteStore) InsertAlert(alertType entities.AlertType, level entities.RiskLabel, message string) (entities.Alert, error) {
	createdAt := time.Now()
	res, err := s.db.Exec(`INSERT INTO alerts(type, level, message, created_at) VALUES(?, ?, ?, ?)`,
		string(alertType), string(level), message, createdAt)
	if err != nil {
		return entities.Alert{}, fmt.Errorf("failed to insert alert: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return entities.Alert{}, fmt.Errorf("failed to read alert id: %v", err)
	}
	return entities.Alert{
		ID:        id,
		Type:      alertType,
		Level:     level,
		Message:   message,
		CreatedAt: createdAt,
	}, nil
}

// FindRecentAlert returns the most recent alert of the same type and
// level created after since, or nil when there is none
func (s *SQLiteStore) FindRecentAlert(alertType entities.AlertType, level entities.RiskLabel, since time.Time) (*entities.Alert, error) {
	var alert entities.Alert
	var typ, lvl string
	err := s.db.QueryRow(`
		SELECT id, type, level, message, created_at
		FROM alerts
		WHERE type = ? AND level = ? AND created_at >= ?
		ORDER BY created_at DESC
		LIMIT 1`,
		string(alertType), string(level), since).
		Scan(&alert.ID, &typ, &lvl, &alert.Message, &alert.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query recent alerts: %v", err)
	}
	alert.Type = entities.AlertType(typ)
	alert.Level = entities.RiskLabel(lvl)
	return &alert, nil
}

// ListAlerts returns the newest alerts first, up to limit
func (s *SQLiteStore) ListAlerts(limit int) ([]entities.Alert, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(`SELECT id, type, level, message, created_at FROM alerts ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %v", err)
	}
	defer rows.Close()

	var result []entities.Alert
	for rows.Next() {
		var alert entities.Alert
		var typ, lvl string
		if err := rows.Scan(&alert.ID, &typ, &lvl, &alert.Message, &alert.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}
		alert.Type = entities.AlertType(typ)
		alert.Level = entities.RiskLabel(lvl)
		result = append(result, alert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %v", err)
	}

	return result, nil
}
