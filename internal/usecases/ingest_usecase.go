package usecases

import (
	"fmt"
	"log"

	"github.com/sebchi-crtl/sdss/internal/entities"
	"github.com/sebchi-crtl/sdss/internal/integration"
	"github.com/sebchi-crtl/sdss/internal/repository"
)

// IngestUseCase pulls fresh observations from the external data sources
// and appends them to the reading store
type IngestUseCase struct {
	regions  repository.RegionRepository
	readings repository.ReadingRepository
	weather  *integration.WeatherFetcher
	scraper  *integration.RiverScraper // optional, nil when no bulletin is configured
}

// NewIngestUseCase creates a new ingestion use case
func NewIngestUseCase(regions repository.RegionRepository, readings repository.ReadingRepository, weather *integration.WeatherFetcher, scraper *integration.RiverScraper) *IngestUseCase {
	return &IngestUseCase{
		regions:  regions,
		readings: readings,
		weather:  weather,
		scraper:  scraper,
	}
}

// RefreshSensorData fetches current weather for every region plus the
// river bulletin when configured, and stores everything as sensor
// readings. A failure for one region or source is logged and the refresh
// continues with the rest.
func (uc *IngestUseCase) RefreshSensorData() error {
	log.Println("Starting sensor data refresh process...")

	regions, err := uc.regions.ListRegions()
	if err != nil {
		return fmt.Errorf("failed to list regions: %v", err)
	}

	var data []entities.SensorReading
	fetchedRegions := 0
	for _, region := range regions {
		readings, err := uc.weather.FetchCurrentWeather(region)
		if err != nil {
			log.Printf("Warning: failed to fetch weather for region %s: %v", region.Code, err)
			continue
		}
		data = append(data, readings...)
		fetchedRegions++
	}
	log.Printf("Fetched weather readings for %d of %d regions", fetchedRegions, len(regions))

	if uc.scraper != nil {
		riverReadings, err := uc.scraper.FetchRiverLevels()
		if err != nil {
			log.Printf("Warning: failed to fetch river bulletin: %v", err)
			// Continue with the weather data if the bulletin fetch fails
		} else {
			log.Printf("Successfully fetched %d river level readings", len(riverReadings))
			data = append(data, riverReadings...)
		}
	}

	if len(data) == 0 {
		return fmt.Errorf("no sensor data could be fetched from any source")
	}

	if err := uc.readings.SaveReadings(data); err != nil {
		return fmt.Errorf("failed to save readings to repository: %v", err)
	}

	log.Printf("Successfully saved %d sensor readings", len(data))
	return nil
}
