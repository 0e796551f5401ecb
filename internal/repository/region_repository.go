package repository

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/sebchi-crtl/sdss/internal/entities"
)

// RegionRepository defines the interface for region persistence
type RegionRepository interface {
	SeedRegions(regions []entities.Region) error
	GetRegion(code string) (entities.Region, error)
	ListRegions() ([]entities.Region, error)
	UpdateRiskLabel(code string, label entities.RiskLabel) error
}

// SeedRegions inserts regions that do not exist yet, leaving existing
// rows (and any recalculated risk labels on them) untouched
func (s *SQLiteStore) SeedRegions(regions []entities.Region) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO regions(code, name, risk_label, lat, lon)
		VALUES(?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare statement: %v", err)
	}
	defer stmt.Close()

	for _, region := range regions {
		if _, err := stmt.Exec(region.Code, region.Name, string(region.RiskLabel), region.Lat, region.Lon); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to seed region %s: %v", region.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	log.Printf("Seeded region catalogue with %d entries", len(regions))
	return nil
}

// GetRegion retrieves a single region by code
func (s *SQLiteStore) GetRegion(code string) (entities.Region, error) {
	var region entities.Region
	var label string
	err := s.db.QueryRow(`SELECT code, name, risk_label, lat, lon FROM regions WHERE code = ?`, code).
		Scan(&region.Code, &region.Name, &label, &region.Lat, &region.Lon)
	if err == sql.ErrNoRows {
		return entities.Region{}, entities.ErrRegionNotFound
	}
	if err != nil {
		return entities.Region{}, fmt.Errorf("failed to query region %s: %v", code, err)
	}
	region.RiskLabel = entities.RiskLabel(label)
	return region, nil
}

// ListRegions returns all regions ordered by code
func (s *SQLiteStore) ListRegions() ([]entities.Region, error) {
	rows, err := s.db.Query(`SELECT code, name, risk_label, lat, lon FROM regions ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("failed to query regions: %v", err)
	}
	defer rows.Close()

	var result []entities.Region
	for rows.Next() {
		var region entities.Region
		var label string
		if err := rows.Scan(&region.Code, &region.Name, &label, &region.Lat, &region.Lon); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}
		region.RiskLabel = entities.RiskLabel(label)
		result = append(result, region)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %v", err)
	}

	return result, nil
}

// UpdateRiskLabel stores the recalculated risk label for a region
func (s *SQLiteStore) UpdateRiskLabel(code string, label entities.RiskLabel) error {
	res, err := s.db.Exec(`UPDATE regions SET risk_label = ? WHERE code = ?`, string(label), code)
	if err != nil {
		return fmt.Errorf("failed to update risk label for %s: %v", code, err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return entities.ErrRegionNotFound
	}
	return nil
}
