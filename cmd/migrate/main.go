package main

import (
	"reciplette/internal/config" // Configuration
	"reciplette/internal/db"     // Database

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	gormDB, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	defer db.Close(gormDB)

	if err := db.Migrate(gormDB); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}
}
