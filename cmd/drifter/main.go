package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/star-drifter/internal/config"
	"github.com/jwebster45206/star-drifter/internal/logger"
	"github.com/jwebster45206/star-drifter/internal/services/broadcast"
	"github.com/jwebster45206/star-drifter/pkg/game"
	"github.com/jwebster45206/star-drifter/pkg/notify"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logFile.Close() // Ignore error in defer
	}()
	log := logger.SetupWithWriter(cfg, logFile)

	session, err := game.NewSession(game.Options{
		Seed:       cfg.Seed,
		StartFuel:  cfg.StartFuel,
		StartScrap: cfg.StartScrap,
		Logger:     log,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}

	log = logger.WithSession(log, session.ID)

	var sink notify.Sink
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := broadcast.NewClient(ctx, cfg.RedisURL, log)
		cancel()
		if err != nil {
			logger.WithError(log, err).Warn("Broadcast disabled")
		} else {
			defer func() {
				_ = client.Close() // Ignore error in defer
			}()
			sink = broadcast.NewBroadcaster(client, cfg.OutcomeLogLimit, log)
		}
	}

	p := tea.NewProgram(NewDrifterUI(session, sink),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
