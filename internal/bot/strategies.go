package bot

import (
	rand "math/rand/v2"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/lox/aceyducey/internal/deck"
)

// ChickenBot never bets anything.
type ChickenBot struct{}

func (b *ChickenBot) PlaceBet(balance int, low, high deck.Rank) (string, error) {
	return "0", nil
}

func (b *ChickenBot) ContinueAfterRuin() (string, error) {
	return "NO", nil
}

// FlatBot bets the same fraction of its balance every round, at least 1.
type FlatBot struct {
	fraction float64
	logger   *log.Logger
}

func (b *FlatBot) PlaceBet(balance int, low, high deck.Rank) (string, error) {
	bet := int(float64(balance) * b.fraction)
	if bet < 1 {
		bet = 1
	}
	if b.logger != nil {
		b.logger.Debug("flat bet", "balance", balance, "bet", bet)
	}
	return strconv.Itoa(bet), nil
}

func (b *FlatBot) ContinueAfterRuin() (string, error) {
	return "NO", nil
}

// SpreadBot sizes its bet by the width of the gap between the two dealt
// cards: wide gaps are good odds, narrow gaps get nothing.
type SpreadBot struct{}

func (b *SpreadBot) PlaceBet(balance int, low, high deck.Rank) (string, error) {
	posLow, err := deck.Position(low)
	if err != nil {
		return "0", nil
	}
	posHigh, err := deck.Position(high)
	if err != nil {
		return "0", nil
	}

	// gap is the count of winning ranks strictly between the two cards.
	gap := posHigh - posLow - 1
	if gap < 4 {
		return "0", nil
	}

	bet := balance * gap / 24
	if bet < 1 {
		bet = 1
	}
	if bet > balance {
		bet = balance
	}
	return strconv.Itoa(bet), nil
}

func (b *SpreadBot) ContinueAfterRuin() (string, error) {
	return "NO", nil
}

// MartingaleBot doubles its stake after every loss and drops back to the
// base after anything else. It has no view of round outcomes, so it infers
// a loss from the balance falling between prompts.
type MartingaleBot struct {
	base        int
	next        int
	lastBalance int
	logger      *log.Logger
}

func (b *MartingaleBot) PlaceBet(balance int, low, high deck.Rank) (string, error) {
	if b.next == 0 {
		b.next = b.base
	}
	if b.lastBalance != 0 {
		if balance < b.lastBalance {
			b.next *= 2
			if b.logger != nil {
				b.logger.Debug("martingale doubling", "bet", b.next)
			}
		} else {
			b.next = b.base
		}
	}
	b.lastBalance = balance

	bet := b.next
	if bet > balance {
		bet = balance
	}
	return strconv.Itoa(bet), nil
}

func (b *MartingaleBot) ContinueAfterRuin() (string, error) {
	return "NO", nil
}

// RandomBot bets a uniform random amount up to its balance, sometimes
// nothing at all.
type RandomBot struct {
	rng *rand.Rand
}

func (b *RandomBot) PlaceBet(balance int, low, high deck.Rank) (string, error) {
	if balance < 1 {
		return "0", nil
	}
	return strconv.Itoa(b.rng.IntN(balance + 1)), nil
}

func (b *RandomBot) ContinueAfterRuin() (string, error) {
	return "NO", nil
}
