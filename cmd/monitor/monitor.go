package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sebchi-crtl/sdss/internal/alerts"
	"github.com/sebchi-crtl/sdss/internal/config"
	"github.com/sebchi-crtl/sdss/internal/entities"
	"github.com/sebchi-crtl/sdss/internal/integration"
	"github.com/sebchi-crtl/sdss/internal/integration/prediction"
	"github.com/sebchi-crtl/sdss/internal/repository"
	"github.com/sebchi-crtl/sdss/internal/risk"
	"github.com/sebchi-crtl/sdss/internal/usecases"
)

func main() {
	// Configure logging
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting Flood Monitor...")

	// Load .env if present, then configuration from the environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	// Initialize store and seed the region catalogue
	store, err := repository.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	if err := store.SeedRegions(entities.DefaultRegions()); err != nil {
		log.Fatalf("Failed to seed regions: %v", err)
	}

	// Initialize data sources
	weather := integration.NewWeatherFetcher(cfg.Ingestion.OpenMeteoURL)
	var scraper *integration.RiverScraper
	if cfg.Ingestion.BulletinURL != "" {
		scraper = integration.NewRiverScraper(cfg.Ingestion.BulletinURL)
	} else {
		log.Println("No river bulletin URL configured, skipping bulletin scraping")
	}

	// Initialize use cases
	ingestUC := usecases.NewIngestUseCase(store, store, weather, scraper)

	predictor := prediction.NewClient(cfg.Prediction.URL, cfg.Prediction.Timeout)
	aggregator := risk.NewAggregator(store)
	blender := risk.NewBlender(predictor, cfg.Prediction.HorizonHours)
	riskUC := usecases.NewRiskUseCase(store, store, aggregator, blender)

	evaluator := alerts.NewEvaluator(store, store, store)
	alertUC := usecases.NewAlertUseCase(evaluator, store)

	runPass := func() {
		if err := ingestUC.RefreshSensorData(); err != nil {
			log.Printf("Sensor data refresh failed: %v", err)
		}
		if _, err := riskUC.CalculateRisk(context.Background(), "", false, cfg.Prediction.Enabled); err != nil {
			log.Printf("Risk calculation failed: %v", err)
		}
		created, _, err := alertUC.EvaluateAlerts()
		if err != nil {
			log.Printf("Alert evaluation failed: %v", err)
		} else {
			log.Printf("Monitoring pass complete: %d new alert(s)", created)
		}
	}

	// Run a pass immediately on startup
	runPass()

	// Set up cron scheduler
	c := cron.New()
	_, err = c.AddFunc(cfg.Monitor.CronSpec, runPass)
	if err != nil {
		log.Fatalf("Failed to set up cron job: %v", err)
	}

	log.Printf("Monitor has been scheduled with cron spec %q", cfg.Monitor.CronSpec)
	c.Start()

	// Keep the program running
	select {}
}
