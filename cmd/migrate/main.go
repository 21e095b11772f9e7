package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ghuser/scoreboard/migrations"
	"github.com/ghuser/scoreboard/pkg/config"
	"github.com/ghuser/scoreboard/pkg/logger"
	"github.com/ghuser/scoreboard/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	if err := migrator.RunMigrations(context.Background(), cfg.DatabaseURL, migrations.Leaderboard()); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied", "context", "leaderboard")
}
