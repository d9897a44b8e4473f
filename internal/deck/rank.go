// Package deck provides the fixed 13-rank ordering the game is played over
// and a shoe that deals from it uniformly with replacement.
package deck

import (
	"errors"
	"fmt"
)

// Rank represents a card rank. Suits don't exist in this game, so a rank is
// the whole card.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the size of the rank table.
const NumRanks = 13

// ErrInvalidRank reports a rank outside the 13-entry table. Lookups fail
// loudly rather than returning an out-of-range index.
var ErrInvalidRank = errors.New("invalid rank")

// String returns the display symbol for a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Valid reports whether r is one of the 13 table entries.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Position returns the 0-based index of r in the rank table, lowest first.
func Position(r Rank) (int, error) {
	if !r.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRank, int(r))
	}
	return int(r - Two), nil
}

// ParseRank converts a display symbol back into a Rank.
func ParseRank(s string) (Rank, error) {
	for r := Two; r <= Ace; r++ {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
}

// IsBetween reports whether test lies strictly between a and b in rank
// order. The bounds may be passed in either order; equality to either bound
// is not between, and a zero-width interval (a == b) contains nothing.
func IsBetween(a, b, test Rank) (bool, error) {
	posA, err := Position(a)
	if err != nil {
		return false, err
	}
	posB, err := Position(b)
	if err != nil {
		return false, err
	}
	posTest, err := Position(test)
	if err != nil {
		return false, err
	}

	if posA > posB {
		posA, posB = posB, posA
	}
	return posTest > posA && posTest < posB, nil
}

// OrderedPair returns a and b sorted ascending by rank position. Display
// only; game logic never depends on the order the cards were dealt in.
func OrderedPair(a, b Rank) (low, high Rank, err error) {
	posA, err := Position(a)
	if err != nil {
		return 0, 0, err
	}
	posB, err := Position(b)
	if err != nil {
		return 0, 0, err
	}

	if posA > posB {
		return b, a, nil
	}
	return a, b, nil
}
