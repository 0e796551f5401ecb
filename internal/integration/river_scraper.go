package integration

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sebchi-crtl/sdss/internal/entities"
)

// RiverScraper extracts station water levels from a published HTML
// hydrological bulletin and converts them into RIVER sensor readings.
// Expected table layout: station name, latitude, longitude, level in
// meters, one row per station.
type RiverScraper struct {
	sourceURL string
}

// NewRiverScraper creates a new bulletin scraper
func NewRiverScraper(sourceURL string) *RiverScraper {
	return &RiverScraper{sourceURL: sourceURL}
}

// FetchRiverLevels retrieves and parses the bulletin page
func (rs *RiverScraper) FetchRiverLevels() ([]entities.SensorReading, error) {
	log.Printf("Sending HTTP request to river bulletin page")
	res, err := http.Get(rs.sourceURL)
	if err != nil {
		log.Printf("Error fetching bulletin: %v", err)
		return nil, fmt.Errorf("failed to fetch the bulletin page: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		log.Printf("Received unexpected status code: %d %s", res.StatusCode, res.Status)
		return nil, fmt.Errorf("unexpected status code: %d %s", res.StatusCode, res.Status)
	}

	log.Printf("Parsing bulletin HTML document")
	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		log.Printf("Error parsing bulletin HTML: %v", err)
		return nil, fmt.Errorf("failed to parse the bulletin page: %v", err)
	}

	timestamp := rs.ExtractTimestamp(doc)

	var readings []entities.SensorReading
	rowCount := 0
	skipped := 0

	doc.Find("table tr").Each(func(index int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}
		rowCount++

		station := strings.TrimSpace(cells.Eq(0).Text())
		latStr := strings.TrimSpace(cells.Eq(1).Text())
		lonStr := strings.TrimSpace(cells.Eq(2).Text())
		levelStr := strings.TrimSpace(cells.Eq(3).Text())

		if station == "" || station == "Station" {
			skipped++
			return
		}

		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		level, errLevel := strconv.ParseFloat(levelStr, 64)
		if errLat != nil || errLon != nil || errLevel != nil {
			log.Printf("Warning: skipping row with unparseable values for station %q", station)
			skipped++
			return
		}

		readings = append(readings, entities.SensorReading{
			SensorID:  fmt.Sprintf("bulletin-%s", strings.ToLower(strings.ReplaceAll(station, " ", "-"))),
			Type:      entities.SensorRiver,
			Value:     level,
			Status:    entities.StatusOK,
			Lat:       lat,
			Lon:       lon,
			Timestamp: timestamp,
		})
	})

	log.Printf("Parsed %d rows, extracted %d river level readings, skipped %d", rowCount, len(readings), skipped)
	return readings, nil
}

// ExtractTimestamp extracts the bulletin publication time from the HTML
// document, falling back to the current time when none is found
func (rs *RiverScraper) ExtractTimestamp(doc *goquery.Document) time.Time {
	timestamp := time.Now()
	timestampText := ""

	selectors := []string{
		"h4",
		"div.bulletin-header",
		"div",
	}

	for _, selector := range selectors {
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if strings.Contains(text, "Bulletin issued:") {
				timestampText = text
			}
		})
		if timestampText != "" {
			break
		}
	}

	if timestampText != "" {
		// Expected format: "Bulletin issued: 2025-04-18 08:00 UTC"
		raw := strings.TrimSpace(strings.TrimPrefix(timestampText, "Bulletin issued:"))
		raw = strings.TrimSuffix(raw, " UTC")
		parsed, err := time.Parse("2006-01-02 15:04", raw)
		if err != nil {
			log.Printf("Failed to parse bulletin timestamp from %q: %v", raw, err)
		} else {
			timestamp = parsed.UTC()
			log.Printf("Successfully extracted bulletin timestamp: %s", timestamp.Format(time.RFC3339))
		}
	} else {
		log.Printf("Bulletin timestamp not found, using current time")
	}

	return timestamp
}
