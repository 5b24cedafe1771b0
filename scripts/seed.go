package main

import (
	"log"

	"event-booking-terminal/internal/config"
	"event-booking-terminal/internal/models"
	"event-booking-terminal/internal/repositories"
	"event-booking-terminal/internal/services"
	"event-booking-terminal/pkg/database"
	"event-booking-terminal/pkg/logger"

	"github.com/joho/godotenv"
)

var demoAccounts = []services.RegisterRequest{
	{Username: "organizer", Password: "organizer123", Name: "Demo Organizer", Email: "organizer@events.com", Role: models.RoleOrganizer},
	{Username: "attendee", Password: "attendee123", Name: "Demo Attendee", Email: "attendee@events.com", Role: models.RoleAttendee},
}

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

	// Loading an empty user file writes the default admin
	usersFile := database.NewFlatFile(cfg.UsersFile)
	fresh := !usersFile.Exists()

	repo := repositories.NewRepository(database.NewFlatFile(cfg.EventsFile), usersFile, appLog)
	if err := repo.Load(); err != nil {
		log.Fatalf("Failed to load data files: %v", err)
	}
	if fresh {
		log.Printf("Created %s with the default admin account", cfg.UsersFile)
	}

	authSvc := services.NewAuthService(repo, cfg, appLog)
	for _, req := range demoAccounts {
		if !authSvc.UsernameAvailable(req.Username) {
			log.Printf("Account %q already exists", req.Username)
			continue
		}
		user, err := authSvc.CreateUser(repositories.DefaultAdminID, req)
		if err != nil {
			log.Fatalf("Failed to create %q: %v", req.Username, err)
		}
		log.Printf("Created %s account %q with ID %d", user.Role, user.Username, user.ID)
	}

	if err := repo.Save(); err != nil {
		log.Fatalf("Failed to save data files: %v", err)
	}

	log.Println("Seeding completed")
}
