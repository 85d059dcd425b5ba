package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fadedpez/blackjack/internal/config"
	"github.com/fadedpez/blackjack/internal/console"
	"github.com/fadedpez/blackjack/internal/logging"
)

// PlayCmd runs an interactive console session
type PlayCmd struct {
	Players int  `short:"n" help:"Number of players at the table (1-7). Defaults to BLACKJACK_PLAYERS."`
	Rounds  int  `short:"r" default:"-1" help:"Rounds to play; 0 asks after every round. Defaults to BLACKJACK_ROUNDS."`
	NoColor bool `help:"Disable colored output"`
	Debug   bool `help:"Log debug output to stderr"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.applyTo(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.Level())
	logging.Default = logger
	logger.Debug("Starting session",
		"players", cfg.Players,
		"rounds", cfg.Rounds,
		"environment", cfg.Environment,
	)

	session, err := console.New(os.Stdin, os.Stdout, console.Options{
		Players: cfg.Players,
		Rounds:  cfg.Rounds,
		NoColor: cfg.NoColor,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := session.Run(ctx); err != nil {
		logger.LogError(err)
		return err
	}
	return nil
}

// applyTo overrides configuration with the flags that were given
func (c *PlayCmd) applyTo(cfg *config.Config) {
	if c.Players != 0 {
		cfg.Players = c.Players
	}
	if c.Rounds >= 0 {
		cfg.Rounds = c.Rounds
	}
	if c.NoColor {
		cfg.NoColor = true
	}
	if c.Debug {
		cfg.LogLevel = logging.DEBUG.String()
	}
}
