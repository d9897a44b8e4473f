package game

import "github.com/lox/aceyducey/internal/deck"

// Display renders everything the game says. Implementations: the styled
// console, the bubbletea TUI, the simulator's silent collector, and test
// recorders.
type Display interface {
	// Intro shows the title banner.
	Intro()

	// Instructions shows the how-to-play block.
	Instructions()

	// Balance reports the current balance at the top of a round.
	Balance(balance int)

	// DealtPair shows the two dealt cards in ascending rank order.
	DealtPair(low, high deck.Rank)

	// ThirdCard shows the third card of a resolved bet.
	ThirdCard(r deck.Rank)

	// NoBet is the zero-bet taunt.
	NoBet()

	// OverBet reports a bet larger than the current balance.
	OverBet(balance int)

	// Win reports a won round.
	Win()

	// Lose reports a lost round.
	Lose()

	// Ruined reports the balance hitting zero or below.
	Ruined()

	// GameOver is the final message once the engine terminates.
	GameOver()
}

// NopDisplay discards all output. Useful for benchmarks and as an embed for
// partial test doubles.
type NopDisplay struct{}

func (NopDisplay) Intro()                   {}
func (NopDisplay) Instructions()            {}
func (NopDisplay) Balance(int)              {}
func (NopDisplay) DealtPair(_, _ deck.Rank) {}
func (NopDisplay) ThirdCard(deck.Rank)      {}
func (NopDisplay) NoBet()                   {}
func (NopDisplay) OverBet(int)              {}
func (NopDisplay) Win()                     {}
func (NopDisplay) Lose()                    {}
func (NopDisplay) Ruined()                  {}
func (NopDisplay) GameOver()                {}
