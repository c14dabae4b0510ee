package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/findify-app/findify-be/internal/api"
	"github.com/findify-app/findify-be/internal/api/handlers"
	"github.com/findify-app/findify-be/internal/config"
	"github.com/findify-app/findify-be/internal/database"
	"github.com/findify-app/findify-be/internal/logger"
	"github.com/findify-app/findify-be/internal/mailer"
	"github.com/findify-app/findify-be/internal/monitoring"
	"github.com/findify-app/findify-be/internal/predict"
	"github.com/findify-app/findify-be/internal/services"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}

	// Set up services
	eventService := services.NewEventService(db)
	userService := services.NewUserService(db, eventService)
	lostService := services.NewLostItemService(db, eventService)
	foundService := services.NewFoundItemService(db, eventService)

	// Email relay; left unconfigured without an API key
	var mailClient services.Mailer
	if cfg.MailAPIKey != "" {
		mailClient = mailer.New(cfg.MailAPIURL, cfg.MailAPIKey, cfg.FromEmail)
	}
	relayService := services.NewRelayService(mailClient, cfg.AdminEmail)

	// Category predictor; left unconfigured without a URL
	var predictor handlers.CategoryPredictor
	if cfg.PredictURL != "" {
		predictor = predict.New(cfg.PredictURL)
	}

	// Set up and run the background retention sweeper
	sweeper := monitoring.NewRetentionSweeper(lostService, foundService, cfg.RetentionDays)
	go sweeper.Run()

	// Set up router
	router := api.NewRouter(cfg, userService, lostService, foundService, relayService, eventService, predictor)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
