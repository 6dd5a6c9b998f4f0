package main

import (
	"log/slog"
	"os"

	"github.com/campushr/letters-backend-go/internal/config"
	"github.com/campushr/letters-backend-go/internal/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Running database migrations", "database", cfg.Database.Name)

	if err := database.RunMigrations(cfg.DatabaseURL(), "file://migrations"); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Database migrations completed")
}
