// Package integration handles external service interactions
package integration

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/sebchi-crtl/sdss/internal/entities"
)

// WeatherFetcher retrieves current weather observations from the
// Open-Meteo API and converts them into sensor readings
type WeatherFetcher struct {
	baseURL    string
	httpClient *http.Client
}

// NewWeatherFetcher creates a new weather data fetcher
func NewWeatherFetcher(baseURL string) *WeatherFetcher {
	if baseURL == "" {
		// Default source URL
		baseURL = "https://api.open-meteo.com/v1"
	}
	return &WeatherFetcher{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type openMeteoResponse struct {
	Current struct {
		Time            string  `json:"time"`
		Temperature     float64 `json:"temperature_2m"`
		Humidity        float64 `json:"relative_humidity_2m"`
		SurfacePressure float64 `json:"surface_pressure"`
		WindSpeed       float64 `json:"wind_speed_10m"`
		WindDirection   float64 `json:"wind_direction_10m"`
		Precipitation   float64 `json:"precipitation"`
	} `json:"current"`
}

// FetchCurrentWeather retrieves the current conditions at a region's
// center and maps them to one reading per weather quantity
func (wf *WeatherFetcher) FetchCurrentWeather(region entities.Region) ([]entities.SensorReading, error) {
	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%.4f", region.Lat))
	query.Set("longitude", fmt.Sprintf("%.4f", region.Lon))
	query.Set("current", "temperature_2m,relative_humidity_2m,surface_pressure,wind_speed_10m,wind_direction_10m,precipitation")
	query.Set("timezone", "UTC")
	requestURL := fmt.Sprintf("%s/forecast?%s", wf.baseURL, query.Encode())

	log.Printf("Fetching current weather for region %s (%s)", region.Code, region.Name)
	res, err := wf.httpClient.Get(requestURL)
	if err != nil {
		log.Printf("Error fetching weather data: %v", err)
		return nil, fmt.Errorf("failed to fetch weather data: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		log.Printf("Received unexpected status code: %d %s", res.StatusCode, res.Status)
		return nil, fmt.Errorf("unexpected status code: %d %s", res.StatusCode, res.Status)
	}

	var parsed openMeteoResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		log.Printf("Error parsing weather response: %v", err)
		return nil, fmt.Errorf("failed to parse weather response: %v", err)
	}

	timestamp, err := time.Parse("2006-01-02T15:04", parsed.Current.Time)
	if err != nil {
		log.Printf("Warning: could not parse observation time %q, using current time", parsed.Current.Time)
		timestamp = time.Now().UTC()
	}

	quantities := []struct {
		sensorType entities.SensorType
		value      float64
	}{
		{entities.SensorTemp, parsed.Current.Temperature},
		{entities.SensorHumidity, parsed.Current.Humidity},
		{entities.SensorPressure, parsed.Current.SurfacePressure},
		{entities.SensorWind, parsed.Current.WindSpeed},
		{entities.SensorRain, parsed.Current.Precipitation},
	}

	readings := make([]entities.SensorReading, 0, len(quantities))
	for _, q := range quantities {
		readings = append(readings, entities.SensorReading{
			SensorID:  fmt.Sprintf("openmeteo-%s-%s", q.sensorType, region.Code),
			Type:      q.sensorType,
			Value:     q.value,
			Status:    entities.StatusOK,
			Lat:       region.Lat,
			Lon:       region.Lon,
			Timestamp: timestamp,
		})
	}

	log.Printf("Fetched %d weather readings for region %s", len(readings), region.Code)
	return readings, nil
}
