package main

import (
	"os" // Log output

	"github.com/sirupsen/logrus" // Logrus for structured logging

	"user_ledger/internal/config"  // Custom import path (Config)
	"user_ledger/internal/db"      // Custom import path (Database)
	"user_ledger/internal/service" // Account service
)

// Main entry point for migration: create the reporting tables and mirror the data files into them
func main() {
	cfg := config.LoadConfig()                   // Load configuration
	cfg.SetupLogger(os.Stdout, logrus.InfoLevel) // Setup logger

	database, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	if err := db.Migrate(database); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.")

	accounts, err := service.OpenFromConfig(cfg)
	if err != nil {
		logrus.Fatalf("failed to load users: %v", err)
	}
	if err := db.Mirror(database, accounts.ReadAll()); err != nil {
		logrus.Fatalf("mirror failed: %v", err)
	}
}
