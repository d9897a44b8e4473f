package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/aceyducey/internal/bot"
	"github.com/lox/aceyducey/internal/simulator"
)

type SimulateCmd struct {
	Config   string `short:"c" help:"HCL scenario file" type:"path"`
	Sessions int    `help:"Number of sessions to play (overrides the scenario)"`
	Rounds   int    `help:"Round budget per session (overrides the scenario)"`
	Strategy string `help:"Betting strategy: chicken, flat, spread, martingale or random (overrides the scenario)"`
	Seed     int64  `help:"Base seed for the batch (overrides the scenario)"`
	Workers  int    `help:"Parallel sessions (overrides the scenario)"`
	Debug    bool   `short:"d" help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	scenario := simulator.DefaultScenario()
	if c.Config != "" {
		loaded, err := simulator.LoadScenario(c.Config)
		if err != nil {
			return err
		}
		scenario = loaded
	}

	// Flags override scenario settings.
	if c.Sessions > 0 {
		scenario.Simulation.Sessions = c.Sessions
	}
	if c.Rounds > 0 {
		scenario.Simulation.Rounds = c.Rounds
	}
	if c.Seed != 0 {
		scenario.Simulation.Seed = c.Seed
	}
	if c.Workers > 0 {
		scenario.Simulation.Workers = c.Workers
	}
	if c.Strategy != "" {
		scenario.Bots = []simulator.BotSpec{{Name: c.Strategy, Strategy: c.Strategy}}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for _, spec := range scenario.Bots {
		sim := simulator.New(simulator.Config{
			Sessions: scenario.Simulation.Sessions,
			Rounds:   scenario.Simulation.Rounds,
			Strategy: spec.Strategy,
			Bot: bot.Options{
				Fraction: spec.Fraction,
				BaseBet:  spec.BaseBet,
			},
			Seed:    scenario.Simulation.Seed,
			Workers: scenario.Simulation.Workers,
			Timeout: time.Duration(scenario.Simulation.TimeoutMs) * time.Millisecond,
			Logger:  logger,
		})

		started := time.Now()
		stats, err := sim.Run(ctx)
		if err != nil {
			return fmt.Errorf("bot %s: %w", spec.Name, err)
		}
		logger.Info("batch complete",
			"bot", spec.Name,
			"strategy", spec.Strategy,
			"sessions", stats.Sessions,
			"elapsed", time.Since(started))

		fmt.Printf("\n%s (%s)\n%s", spec.Name, spec.Strategy, stats.Summary())
	}
	return nil
}
