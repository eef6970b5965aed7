package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/kirinyoku/gigbook/docs"
	"github.com/kirinyoku/gigbook/internal/app"
	"github.com/kirinyoku/gigbook/internal/config"
	"github.com/lmittmann/tint"
)

// @title Gigbook API
// @version 1.0
// @description Booking coordination between performing artists and venues.
// @host localhost:8080
// @BasePath /
func main() {
	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelInfo}))

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		logger.Error("application finished with error", "error", err)
		os.Exit(1)
	}
}
