package integration

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sebchi-crtl/sdss/internal/entities"
)

// mockHTMLServer creates a test server that serves a fixed HTML response
func mockHTMLServer(html string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, html)
	}))
}

const mockBulletinHTML = `
<!DOCTYPE html>
<html>
<head><title>Hydrological Bulletin</title></head>
<body>
    <div class="col-md-12">
        <h4>Bulletin issued: 2026-08-30 06:00 UTC</h4>
    </div>
    <table>
        <tr><th>Station</th><th>Lat</th><th>Lon</th><th>Level (m)</th></tr>
        <tr><td>Lokoja Gauge</td><td>7.8023</td><td>6.7333</td><td>4.85</td></tr>
        <tr><td>Onitsha Gauge</td><td>6.1498</td><td>6.7850</td><td>3.20</td></tr>
        <tr><td>Broken Gauge</td><td>not-a-number</td><td>6.0</td><td>2.0</td></tr>
    </table>
</body>
</html>`

// TestFetchRiverLevelsWithMock tests table extraction with a controlled mock
func TestFetchRiverLevelsWithMock(t *testing.T) {
	server := mockHTMLServer(mockBulletinHTML)
	defer server.Close()

	scraper := NewRiverScraper(server.URL)
	readings, err := scraper.FetchRiverLevels()
	if err != nil {
		t.Fatalf("Failed to fetch river levels: %v", err)
	}

	// The header row and the unparseable row must be skipped.
	if len(readings) != 2 {
		t.Fatalf("Expected 2 river readings, got %d", len(readings))
	}

	first := readings[0]
	if first.SensorID != "bulletin-lokoja-gauge" {
		t.Errorf("Expected sensor id bulletin-lokoja-gauge, got %s", first.SensorID)
	}
	if first.Type != entities.SensorRiver {
		t.Errorf("Expected RIVER sensor type, got %s", first.Type)
	}
	if first.Value != 4.85 {
		t.Errorf("Expected level 4.85, got %v", first.Value)
	}
	if first.Lat != 7.8023 || first.Lon != 6.7333 {
		t.Errorf("Unexpected coordinates: (%v, %v)", first.Lat, first.Lon)
	}

	// Both readings carry the bulletin's publication time.
	expected := time.Date(2026, time.August, 30, 6, 0, 0, 0, time.UTC)
	for _, r := range readings {
		if !r.Timestamp.Equal(expected) {
			t.Errorf("Expected bulletin timestamp %v, got %v", expected, r.Timestamp)
		}
	}
}

// TestTimestampExtractionWithMock tests the timestamp extraction in isolation
func TestTimestampExtractionWithMock(t *testing.T) {
	server := mockHTMLServer(mockBulletinHTML)
	defer server.Close()

	scraper := NewRiverScraper(server.URL)

	res, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("Failed to fetch the mock webpage: %v", err)
	}
	defer res.Body.Close()

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		t.Fatalf("Failed to parse the mock webpage: %v", err)
	}

	timestamp := scraper.ExtractTimestamp(doc)
	expected := time.Date(2026, time.August, 30, 6, 0, 0, 0, time.UTC)
	if !timestamp.Equal(expected) {
		t.Errorf("Expected timestamp %v, got %v", expected, timestamp)
	}
}

// TestTimestampFallback verifies the current time is used when the page
// carries no issuance line
func TestTimestampFallback(t *testing.T) {
	server := mockHTMLServer(`<html><body><table><tr><td>Station X</td><td>6.0</td><td>6.0</td><td>2.5</td></tr></table></body></html>`)
	defer server.Close()

	scraper := NewRiverScraper(server.URL)
	readings, err := scraper.FetchRiverLevels()
	if err != nil {
		t.Fatalf("Failed to fetch river levels: %v", err)
	}
	if len(readings) != 1 {
		t.Fatalf("Expected 1 reading, got %d", len(readings))
	}
	if time.Since(readings[0].Timestamp) > time.Minute {
		t.Errorf("Expected a recent fallback timestamp, got %v", readings[0].Timestamp)
	}
}

// TestFetchRiverLevelsServerError verifies non-200 responses fail
func TestFetchRiverLevelsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	scraper := NewRiverScraper(server.URL)
	if _, err := scraper.FetchRiverLevels(); err == nil {
		t.Fatal("Expected an error for a 503 response")
	}
}
