// Package api provides handlers for external APIs and interfaces
package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sebchi-crtl/sdss/internal/entities"
	"github.com/sebchi-crtl/sdss/internal/usecases"
)

// TelegramBot handles interactions with the Telegram API
type TelegramBot struct {
	bot     *tgbotapi.BotAPI
	riskUC  *usecases.RiskUseCase
	alertUC *usecases.AlertUseCase
	queryUC *usecases.QueryUseCase
}

// NewTelegramBot creates a new Telegram bot handler
func NewTelegramBot(botToken string, riskUC *usecases.RiskUseCase, alertUC *usecases.AlertUseCase, queryUC *usecases.QueryUseCase) (*TelegramBot, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %v", err)
	}

	return &TelegramBot{
		bot:     bot,
		riskUC:  riskUC,
		alertUC: alertUC,
		queryUC: queryUC,
	}, nil
}

// Start begins listening for and handling Telegram messages
func (t *TelegramBot) Start() {
	log.Printf("Authorized on Telegram account %s", t.bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	log.Println("Bot is now listening for messages...")

	for update := range updates {
		if update.Message == nil {
			continue
		}

		// Log incoming messages
		log.Printf("Received message from %s (ID: %d): %s",
			update.Message.From.UserName,
			update.Message.From.ID,
			update.Message.Text)

		t.handleMessage(update)
	}
}

// handleMessage processes a Telegram message update
func (t *TelegramBot) handleMessage(update tgbotapi.Update) {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")

	switch {
	case update.Message.IsCommand():
		t.handleCommand(update.Message, &msg)
	default:
		t.handleNonCommand(update.Message, &msg)
	}

	log.Printf("Sending response to user %s", update.Message.From.UserName)
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// handleCommand processes commands like /start, /help, etc.
func (t *TelegramBot) handleCommand(message *tgbotapi.Message, msg *tgbotapi.MessageConfig) {
	switch message.Command() {
	case "start":
		log.Printf("Handling /start command for user %s", message.From.UserName)
		msg.Text = "Welcome to the Flood Monitor! Use /regions to see the monitored regions or /help for more information."

	case "help":
		log.Printf("Handling /help command for user %s", message.From.UserName)
		msg.Text = "Available commands:\n" +
			"/start - Start the bot\n" +
			"/regions - Show the monitored regions\n" +
			"/risk [code] - Calculate flood risk for a region\n" +
			"/alerts - Show the latest alerts\n" +
			"/help - Show this help message"

	case "regions":
		log.Printf("Handling /regions command for user %s", message.From.UserName)
		t.handleRegionsCommand(msg)

	case "risk":
		args := message.CommandArguments()
		log.Printf("Handling /risk command with args '%s' for user %s", args, message.From.UserName)
		t.handleRiskCommand(args, msg)

	case "alerts":
		log.Printf("Handling /alerts command for user %s", message.From.UserName)
		t.handleAlertsCommand(msg)

	default:
		log.Printf("Received unknown command /%s from user %s", message.Command(), message.From.UserName)
		msg.Text = "Unknown command. Use /help to see available commands."
	}
}

// handleRegionsCommand processes the /regions command
func (t *TelegramBot) handleRegionsCommand(msg *tgbotapi.MessageConfig) {
	regions, err := t.riskUC.GetAvailableRegions()
	if err != nil {
		msg.Text = "Error fetching region data. Please try again later."
		log.Printf("Error fetching region data: %v", err)
		return
	}

	msg.Text = "Monitored regions:\n\n"
	for _, region := range regions {
		msg.Text += "• " + region + "\n"
	}
	msg.Text += "\nUse /risk [code] to calculate flood risk for a region."
}

// handleRiskCommand processes the /risk [code] command
func (t *TelegramBot) handleRiskCommand(args string, msg *tgbotapi.MessageConfig) {
	code := strings.ToUpper(strings.TrimSpace(args))
	if code == "" {
		msg.Text = "Please specify a region code. Example: /risk LA"
		return
	}

	region, err := t.riskUC.GetRegion(code)
	if err != nil {
		if errors.Is(err, entities.ErrRegionNotFound) {
			msg.Text = fmt.Sprintf("No region found with code '%s'. Use /regions to see the monitored regions.", code)
		} else {
			msg.Text = "Error fetching region data. Please try again later."
			log.Printf("Error fetching region data: %v", err)
		}
		return
	}

	results, err := t.riskUC.CalculateRisk(context.Background(), region.Code, false, true)
	if err != nil || len(results) == 0 {
		msg.Text = "Error calculating flood risk. Please try again later."
		log.Printf("Error calculating flood risk: %v", err)
		return
	}

	msg.Text = t.riskUC.FormatRiskResult(region, results[0])
}

// handleAlertsCommand processes the /alerts command
func (t *TelegramBot) handleAlertsCommand(msg *tgbotapi.MessageConfig) {
	alerts, err := t.alertUC.RecentAlerts(10)
	if err != nil {
		msg.Text = "Error fetching alerts. Please try again later."
		log.Printf("Error fetching alerts: %v", err)
		return
	}
	msg.Text = t.alertUC.FormatAlerts(alerts)
}

// handleNonCommand processes regular messages
func (t *TelegramBot) handleNonCommand(message *tgbotapi.Message, msg *tgbotapi.MessageConfig) {
	log.Printf("Received non-command message from user %s: %s", message.From.UserName, message.Text)

	if t.queryUC == nil {
		msg.Text = "I don't understand. Use /help to see available commands."
		return
	}

	response, err := t.queryUC.HandleNaturalLanguageQuery(context.Background(), message.Text)
	if err != nil {
		log.Printf("Error handling natural language query: %v", err)
		msg.Text = "I don't understand. Use /help to see available commands."
		return
	}
	msg.Text = response
}
