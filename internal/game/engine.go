package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/aceyducey/internal/deck"
)

// StartingBalance is what the player sits down with, and what the balance
// resets to when they choose to continue after ruin.
const StartingBalance = 100

// Dealer produces the next card for a round. *deck.Shoe is the production
// implementation; tests script exact deal sequences.
type Dealer interface {
	Deal() deck.Rank
}

// Config wires an Engine's collaborators.
type Config struct {
	Dealer  Dealer
	Agent   Agent
	Display Display

	// Logger receives round-level debug traces. Optional.
	Logger *log.Logger
}

// Engine owns all game state: the balance, the state machine, and the
// dealing shoe. Nothing is global; callers construct one and call Run.
type Engine struct {
	dealer  Dealer
	agent   Agent
	display Display
	logger  *log.Logger

	balance int
	state   State
	rounds  int
}

// New creates an engine in StateInitializing with the starting balance.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	display := cfg.Display
	if display == nil {
		display = NopDisplay{}
	}

	return &Engine{
		dealer:  cfg.Dealer,
		agent:   cfg.Agent,
		display: display,
		logger:  logger,
		balance: StartingBalance,
		state:   StateInitializing,
	}
}

// Balance returns the player's current balance in dollars.
func (e *Engine) Balance() int {
	return e.balance
}

// State returns the engine's current state.
func (e *Engine) State() State {
	return e.state
}

// Rounds returns the number of rounds the player has answered a bet prompt
// for, including no-bet and over-bet rounds.
func (e *Engine) Rounds() int {
	return e.rounds
}

// Run drives the state machine until GameOver. It returns early if ctx is
// cancelled or if an internal invariant breaks (an invalid rank reaching
// comparison); player input mistakes never surface as errors.
func (e *Engine) Run(ctx context.Context) error {
	for e.state != StateGameOver {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch e.state {
		case StateInitializing:
			e.display.Intro()
			e.display.Instructions()
			e.state = StatePlaying

		case StatePlaying, StateBetNothing:
			if err := e.playTurn(); err != nil {
				return err
			}
		}
	}

	e.display.GameOver()
	return nil
}

// playTurn resolves one round: deal two cards, take a bet, and settle it.
func (e *Engine) playTurn() error {
	// The balance is only shown when entering from a normal round; a
	// zero-bet round suppresses the next display, as the original game did.
	if e.state == StatePlaying {
		e.display.Balance(e.balance)
	}

	round := Round{First: e.dealer.Deal(), Second: e.dealer.Deal()}
	low, high, err := deck.OrderedPair(round.First, round.Second)
	if err != nil {
		return fmt.Errorf("dealt pair: %w", err)
	}
	e.display.DealtPair(low, high)

	text, err := e.agent.PlaceBet(e.balance, low, high)
	if err != nil {
		if errors.Is(err, ErrQuit) {
			e.logger.Debug("player quit", "rounds", e.rounds)
		} else {
			e.logger.Error("bet input failed", "error", err)
		}
		e.state = StateGameOver
		return nil
	}
	e.rounds++

	bet, ok := parseBet(text)
	switch {
	case !ok || bet <= 0:
		round.Outcome = OutcomeNoBet
		e.display.NoBet()
		e.state = StateBetNothing

	case bet > e.balance:
		// The round is void: no third card, no balance change, no redeal.
		round.Bet = bet
		round.Outcome = OutcomeOverBet
		e.display.OverBet(e.balance)
		e.state = StatePlaying

	default:
		round.Bet = bet
		round.Third = e.dealer.Deal()
		round.HasThird = true
		e.display.ThirdCard(round.Third)

		between, err := deck.IsBetween(round.First, round.Second, round.Third)
		if err != nil {
			return fmt.Errorf("resolve round: %w", err)
		}

		if between {
			round.Outcome = OutcomeWin
			e.balance += bet
			e.display.Win()
		} else {
			round.Outcome = OutcomeLose
			e.balance -= bet
			e.display.Lose()
		}
		e.state = StatePlaying

		if round.Outcome == OutcomeLose && e.balance <= 0 {
			e.handleRuin()
		}
	}

	e.logger.Debug("round resolved",
		"first", round.First,
		"second", round.Second,
		"bet", round.Bet,
		"outcome", round.Outcome,
		"balance", e.balance,
		"state", e.state)
	return nil
}

// handleRuin prompts the player once per ruin event. Only an affirmative
// answer resets the balance; everything else ends the game.
func (e *Engine) handleRuin() {
	e.display.Ruined()

	answer, err := e.agent.ContinueAfterRuin()
	if err != nil || !isAffirmative(answer) {
		e.state = StateGameOver
		return
	}

	e.balance = StartingBalance
	e.state = StatePlaying
}

// parseBet parses raw bet text as a non-negative integer. Leading zeros are
// accepted ("007" is 7); anything containing a non-digit, signs included, is
// invalid.
func parseBet(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isAffirmative(s string) bool {
	return strings.ToUpper(strings.TrimSpace(s)) == "YES"
}
