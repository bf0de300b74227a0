// Package main is the entry point for WarQuest in a local terminal.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/samdwyer/warquest/internal/config"
	"github.com/samdwyer/warquest/internal/game"
	"github.com/samdwyer/warquest/internal/gamedata"
	"github.com/samdwyer/warquest/internal/telemetry"
	"github.com/samdwyer/warquest/internal/ui"
)

func main() {
	// Not fatal - env vars might be set directly
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Printf("Warning: %v (using defaults)", err)
	}
	config.ExportOTelEnv()

	logger, err := telemetry.NewLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, "local")
	if err != nil {
		logger.Warn("telemetry setup failed, running without observability", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("telemetry shutdown", zap.Error(err))
			}
		}()
	}

	mapText, err := gamedata.LoadMap(cfg.MapPath)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}
	registry, err := gamedata.LoadEntityRegistry()
	if err != nil {
		log.Fatalf("Failed to load entities: %v", err)
	}
	logger.Info("entities loaded", zap.Int("definitions", registry.Count()))

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}

	g, err := game.New(screen, game.Settings{
		Rows:     cfg.Rows,
		Cols:     cfg.Cols,
		MapText:  mapText,
		Chrome:   gamedata.Chrome(),
		Registry: registry,
		Logger:   logger,
	})
	if err != nil {
		screen.Close()
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
