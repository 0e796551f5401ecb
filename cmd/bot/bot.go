package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sebchi-crtl/sdss/internal/alerts"
	"github.com/sebchi-crtl/sdss/internal/api"
	"github.com/sebchi-crtl/sdss/internal/config"
	"github.com/sebchi-crtl/sdss/internal/entities"
	"github.com/sebchi-crtl/sdss/internal/integration/openai"
	"github.com/sebchi-crtl/sdss/internal/integration/prediction"
	"github.com/sebchi-crtl/sdss/internal/repository"
	"github.com/sebchi-crtl/sdss/internal/risk"
	"github.com/sebchi-crtl/sdss/internal/usecases"
)

func main() {
	// Configure logging
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting Flood Monitor Bot...")

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

	// Initialize the risk calculation pipeline
	predictor := prediction.NewClient(cfg.Prediction.URL, cfg.Prediction.Timeout)
	aggregator := risk.NewAggregator(store)
	blender := risk.NewBlender(predictor, cfg.Prediction.HorizonHours)

	riskUC := usecases.NewRiskUseCase(store, store, aggregator, blender)
	evaluator := alerts.NewEvaluator(store, store, store)
	alertUC := usecases.NewAlertUseCase(evaluator, store)

	// Initialize the OpenAI query interpreter; the bot degrades to
	// command-only mode when no API key is configured
	var queryUC *usecases.QueryUseCase
	openAIService, err := openai.NewOpenAIService()
	if err != nil {
		log.Printf("Warning: OpenAI service disabled: %v", err)
	} else {
		queryUC = usecases.NewQueryUseCase(riskUC, alertUC, openAIService)
	}

	if cfg.Telegram.BotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	telegramBot, err := api.NewTelegramBot(cfg.Telegram.BotToken, riskUC, alertUC, queryUC)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram bot: %v", err)
	}

	telegramBot.Start()
}
