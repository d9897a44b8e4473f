package game

import (
	"errors"

	"github.com/lox/aceyducey/internal/deck"
)

// ErrQuit is returned by an Agent to end the session without treating the
// missing input as a zero bet. Interactive agents map EOF and interrupts to
// it; simulation agents use it to stop at their round budget.
var ErrQuit = errors.New("player quit")

// Agent supplies the player's side of a round: raw bet text and the answer
// to the continue-after-ruin prompt. Trimming and case normalization are the
// agent's job; the engine parses whatever text comes back.
type Agent interface {
	// PlaceBet returns the raw bet text for a round. The current balance
	// and the two dealt cards (ascending) are provided so strategies can
	// size their bets.
	PlaceBet(balance int, low, high deck.Rank) (string, error)

	// ContinueAfterRuin returns the answer to the try-again prompt.
	// Only "YES" resumes play.
	ContinueAfterRuin() (string, error)
}

// HumanAgent adapts a pair of prompt functions into an Agent, keeping the
// engine decoupled from whichever input mechanism is driving it.
type HumanAgent struct {
	betPrompt      func() (string, error)
	continuePrompt func() (string, error)
}

// NewHumanAgent creates an agent backed by interactive prompts.
func NewHumanAgent(betPrompt, continuePrompt func() (string, error)) *HumanAgent {
	return &HumanAgent{
		betPrompt:      betPrompt,
		continuePrompt: continuePrompt,
	}
}

func (h *HumanAgent) PlaceBet(balance int, low, high deck.Rank) (string, error) {
	if h.betPrompt == nil {
		return "", ErrQuit
	}
	return h.betPrompt()
}

func (h *HumanAgent) ContinueAfterRuin() (string, error) {
	if h.continuePrompt == nil {
		return "", ErrQuit
	}
	return h.continuePrompt()
}
