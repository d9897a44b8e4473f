package game

import "github.com/lox/aceyducey/internal/deck"

// Outcome is how a single round resolved.
type Outcome int

const (
	// OutcomeNoBet means the player bet nothing (or typed something that
	// wasn't a positive number); no card was dealt and no money moved.
	OutcomeNoBet Outcome = iota

	// OutcomeOverBet means the bet exceeded the balance; the round was
	// voided with no third card and no balance change.
	OutcomeOverBet

	// OutcomeWin means the third card fell strictly between the first two.
	OutcomeWin

	// OutcomeLose means it didn't.
	OutcomeLose
)

// String returns the outcome name for logging
func (o Outcome) String() string {
	switch o {
	case OutcomeNoBet:
		return "no-bet"
	case OutcomeOverBet:
		return "over-bet"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Round captures one resolved betting round. It exists for the duration of
// a turn and is handed to observers; nothing persists it.
type Round struct {
	First  deck.Rank
	Second deck.Rank
	Bet    int

	// Third is only meaningful when HasThird is set; no-bet and over-bet
	// rounds never deal a third card.
	Third    deck.Rank
	HasThird bool

	Outcome Outcome
}
