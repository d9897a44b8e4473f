// Package simulator runs batches of automated game sessions with strategy
// bots and aggregates the results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/aceyducey/internal/bot"
	"github.com/lox/aceyducey/internal/deck"
	"github.com/lox/aceyducey/internal/game"
	"github.com/lox/aceyducey/internal/randutil"
	"github.com/lox/aceyducey/internal/statistics"
)

// Config holds configuration for running simulations.
type Config struct {
	Sessions int           // number of sessions to play, default 100
	Rounds   int           // round budget per session, default 500
	Strategy string        // bot strategy name, default "flat"
	Bot      bot.Options   // strategy tuning
	Seed     int64         // base seed; session i derives seed Seed+i
	Workers  int           // parallel sessions, default 4
	Timeout  time.Duration // per-session hang guard, default 10s
	Logger   *log.Logger
	Clock    quartz.Clock // injectable for tests
}

// Simulator plays scripted sessions of the game.
type Simulator struct {
	config Config
}

// New creates a simulator, applying defaults for zero-valued settings.
func New(config Config) *Simulator {
	if config.Sessions <= 0 {
		config.Sessions = 100
	}
	if config.Rounds <= 0 {
		config.Rounds = 500
	}
	if config.Strategy == "" {
		config.Strategy = "flat"
	}
	if config.Workers <= 0 {
		config.Workers = 4
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run executes the configured sessions and returns aggregate statistics.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	results := make([]statistics.SessionResult, s.config.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := 0; i < s.config.Sessions; i++ {
		g.Go(func() error {
			// Independent seed per session so any session can be
			// replayed in isolation.
			seed := s.config.Seed + int64(i)
			result, err := s.runSessionWithTimeout(ctx, seed)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := statistics.New(game.StartingBalance)
	for _, result := range results {
		stats.Add(result)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

type sessionOutcome struct {
	result statistics.SessionResult
	err    error
}

// runSessionWithTimeout guards a session against hanging.
func (s *Simulator) runSessionWithTimeout(ctx context.Context, seed int64) (statistics.SessionResult, error) {
	timedOut := make(chan struct{})
	timer := s.config.Clock.AfterFunc(s.config.Timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	resultCh := make(chan sessionOutcome, 1)
	go func() {
		result, err := s.runSession(ctx, seed)
		resultCh <- sessionOutcome{result, err}
	}()

	select {
	case out := <-resultCh:
		return out.result, out.err
	case <-timedOut:
		return statistics.SessionResult{}, fmt.Errorf("session timed out after %v (seed %d)", s.config.Timeout, seed)
	case <-ctx.Done():
		return statistics.SessionResult{}, ctx.Err()
	}
}

// runSession plays one full session with a fresh engine and bot.
func (s *Simulator) runSession(ctx context.Context, seed int64) (statistics.SessionResult, error) {
	rng := randutil.New(seed)

	strategy, err := bot.New(s.config.Strategy, s.config.Bot, rng, s.config.Logger)
	if err != nil {
		return statistics.SessionResult{}, err
	}

	collector := &collector{}
	engine := game.New(game.Config{
		Dealer:  deck.NewShoe(rng),
		Agent:   &budgetAgent{inner: strategy, remaining: s.config.Rounds},
		Display: collector,
		Logger:  s.config.Logger,
	})
	if err := engine.Run(ctx); err != nil {
		return statistics.SessionResult{}, fmt.Errorf("session seed %d: %w", seed, err)
	}

	return statistics.SessionResult{
		Seed:         seed,
		Rounds:       engine.Rounds(),
		Wins:         collector.wins,
		Losses:       collector.losses,
		NoBets:       collector.noBets,
		OverBets:     collector.overBets,
		FinalBalance: engine.Balance(),
		Ruined:       collector.ruins > 0,
	}, nil
}

// budgetAgent quits the game once the session's round budget is spent.
type budgetAgent struct {
	inner     game.Agent
	remaining int
}

func (a *budgetAgent) PlaceBet(balance int, low, high deck.Rank) (string, error) {
	if a.remaining <= 0 {
		return "", game.ErrQuit
	}
	a.remaining--
	return a.inner.PlaceBet(balance, low, high)
}

func (a *budgetAgent) ContinueAfterRuin() (string, error) {
	return a.inner.ContinueAfterRuin()
}

// collector is a silent Display that tallies outcomes for one session.
type collector struct {
	game.NopDisplay
	wins     int
	losses   int
	noBets   int
	overBets int
	ruins    int
}

func (c *collector) Win()        { c.wins++ }
func (c *collector) Lose()       { c.losses++ }
func (c *collector) NoBet()      { c.noBets++ }
func (c *collector) OverBet(int) { c.overBets++ }
func (c *collector) Ruined()     { c.ruins++ }
