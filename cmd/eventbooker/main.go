package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"event-booking-terminal/internal/config"
	"event-booking-terminal/internal/handlers"
	"event-booking-terminal/internal/repositories"
	"event-booking-terminal/internal/services"
	"event-booking-terminal/pkg/database"
	"event-booking-terminal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Load configuration
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	appLog := logger.Init(cfg.LogLevel, cfg.Env)

	// Initialize repositories; a failed load leaves empty or default data
	repo := repositories.NewRepository(
		database.NewFlatFile(cfg.EventsFile),
		database.NewFlatFile(cfg.UsersFile),
		appLog,
	)
	if err := repo.Load(); err != nil {
		appLog.WithError(err).Warn("Failed to load data files, starting with defaults")
	}

	// Initialize services
	prompt := handlers.NewPrompter(os.Stdin, os.Stdout)
	paymentSvc := services.NewPaymentService(appLog)
	checkout := handlers.NewTerminalCheckout(prompt, paymentSvc, os.Stdout)

	authSvc := services.NewAuthService(repo, cfg, appLog)
	eventSvc := services.NewEventService(repo, checkout, appLog)
	participantSvc := services.NewParticipantService(repo, eventSvc, appLog)
	statsSvc := services.NewStatsService(repo)

	// Initialize handlers
	handler := handlers.NewHandler(authSvc, eventSvc, participantSvc, statsSvc, cfg, appLog, prompt, os.Stdout)

	// Save on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		appLog.Info("Interrupted, saving data")
		save(repo, appLog)
		os.Exit(0)
	}()

	if err := handler.Run(); err != nil {
		appLog.WithError(err).Error("Session ended with error")
	}

	save(repo, appLog)
}

func save(repo *repositories.Repository, l logrus.FieldLogger) {
	if err := repo.Save(); err != nil {
		l.WithError(err).Error("Failed to save data files")
		return
	}
	l.Info("Data saved")
}
