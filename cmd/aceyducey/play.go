package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/aceyducey/internal/deck"
	"github.com/lox/aceyducey/internal/display"
	"github.com/lox/aceyducey/internal/game"
	"github.com/lox/aceyducey/internal/randutil"
	"github.com/lox/aceyducey/internal/tui"
)

type PlayCmd struct {
	TUI     bool   `help:"Play in the full-screen terminal UI"`
	Seed    int64  `help:"Seed the dealer for a reproducible game (0 picks one at random)"`
	LogFile string `help:"Write debug logs to a file" type:"path"`
}

func (c *PlayCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Logs go to a file so the game's own output stays clean.
	logger := log.New(io.Discard)
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Level:           log.DebugLevel,
		})
	}

	seed := c.Seed
	if seed == 0 {
		seed = randutil.Seed()
	}
	logger.Info("starting game", "seed", seed, "tui", c.TUI)
	shoe := deck.NewShoe(randutil.New(seed))

	if c.TUI {
		return tui.Run(ctx, shoe, logger)
	}

	agent, closer, err := display.NewReadlineAgent()
	if err != nil {
		return fmt.Errorf("failed to initialise input: %w", err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close input", "error", err)
		}
	}()

	engine := game.New(game.Config{
		Dealer:  shoe,
		Agent:   agent,
		Display: display.NewConsole(os.Stdout, termenv.EnvColorProfile()),
		Logger:  logger,
	})
	if err := engine.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return nil
}
