package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"jobboard-api/config"
	"jobboard-api/internal/app"
	"jobboard-api/internal/database"
	"jobboard-api/internal/server"

	_ "jobboard-api/docs" // Generated swagger docs

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// @title           Job Board API
// @version         1.0
// @description     Job board backend: listings with in-memory search, recruiter workflows, applications and CSV export.

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	validate := validator.New()

	application := app.New(cfg, dbPool, redisClient, validate)

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	log.Println("Application gracefully stopped.")
}
