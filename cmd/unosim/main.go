// cmd/unosim/main.go
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/jason-s-yu/uno/internal/config"
	"github.com/jason-s-yu/uno/internal/sim"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load config")
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to build logger")
	}
	rules, err := cfg.Ruleset()
	if err != nil {
		logger.WithError(err).Fatal("Invalid ruleset")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := sim.RunBatch(ctx, sim.BatchOptions{
		Games:    cfg.Sim.Games,
		Players:  cfg.Sim.Players,
		Workers:  cfg.Sim.Workers,
		Seed:     cfg.Sim.Seed,
		MaxSteps: cfg.Sim.MaxSteps,
		Rules:    rules,
		Logger:   logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Simulation failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		logger.WithError(err).Fatal("Failed to write summary")
	}
}
