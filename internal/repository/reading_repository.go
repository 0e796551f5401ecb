package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sebchi-crtl/sdss/internal/entities"
)

// ReadingRepository defines the interface for sensor reading persistence
type ReadingRepository interface {
	SaveReadings(readings []entities.SensorReading) error
	// ReadingsNear returns readings within a bounding box of ±radiusDeg
	// around (lat, lon), newer than since, ordered by timestamp
	// descending. An empty sensorType matches all types.
	ReadingsNear(lat, lon, radiusDeg float64, sensorType entities.SensorType, since time.Time) ([]entities.SensorReading, error)
	// ReadingsSince returns all readings newer than since regardless of
	// location, ordered by timestamp descending. An empty sensorType
	// matches all types.
	ReadingsSince(sensorType entities.SensorType, since time.Time) ([]entities.SensorReading, error)
}

// SaveReadings stores a batch of sensor readings in a single transaction
func (s *SQLiteStore) SaveReadings(readings []entities.SensorReading) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO sensor_readings(sensor_id, type, value, status, lat, lon, timestamp)
		VALUES(?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare statement: %v", err)
	}
	defer stmt.Close()

	for _, r := range readings {
		_, err := stmt.Exec(
			r.SensorID,
			string(r.Type),
			r.Value,
			string(r.Status),
			r.Lat,
			r.Lon,
			r.Timestamp,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert reading from %s: %v", r.SensorID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

// ReadingsSince retrieves readings newer than since across all locations
func (s *SQLiteStore) ReadingsSince(sensorType entities.SensorType, since time.Time) ([]entities.SensorReading, error) {
	query := `
		SELECT id, sensor_id, type, value, status, lat, lon, timestamp
		FROM sensor_readings
		WHERE timestamp >= ?`
	args := []interface{}{since}

	if sensorType != "" {
		query += ` AND type = ?`
		args = append(args, string(sensorType))
	}
	query += ` ORDER BY timestamp DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sensor readings: %v", err)
	}
	defer rows.Close()
	return scanReadings(rows)
}

// ReadingsNear retrieves readings inside a bounding box around a point
func (s *SQLiteStore) ReadingsNear(lat, lon, radiusDeg float64, sensorType entities.SensorType, since time.Time) ([]entities.SensorReading, error) {
	query := `
		SELECT id, sensor_id, type, value, status, lat, lon, timestamp
		FROM sensor_readings
		WHERE lat BETWEEN ? AND ? AND lon BETWEEN ? AND ?
		  AND timestamp >= ?`
	args := []interface{}{lat - radiusDeg, lat + radiusDeg, lon - radiusDeg, lon + radiusDeg, since}

	if sensorType != "" {
		query += ` AND type = ?`
		args = append(args, string(sensorType))
	}
	query += ` ORDER BY timestamp DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sensor readings: %v", err)
	}
	defer rows.Close()
	return scanReadings(rows)
}

func scanReadings(rows *sql.Rows) ([]entities.SensorReading, error) {
	var result []entities.SensorReading
	for rows.Next() {
		var r entities.SensorReading
		var typ, status string
		if err := rows.Scan(
			&r.ID,
			&r.SensorID,
			&typ,
			&r.Value,
			&status,
			&r.Lat,
			&r.Lon,
			&r.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}
		r.Type = entities.SensorType(typ)
		r.Status = entities.ReadingStatus(status)
		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %v", err)
	}

	return result, nil
}
