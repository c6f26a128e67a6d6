package main

import (
	"log"

	"movie-catalog-backend/internal/config"
	"movie-catalog-backend/internal/database"
	"movie-catalog-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Creates or updates the catalog schema and exits.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(logger.Options{Level: cfg.LogLevel})

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logrus.Fatal("Failed to migrate database:", err)
	}

	logrus.WithField("models", len(database.Models())).Info("Migration completed")
}
