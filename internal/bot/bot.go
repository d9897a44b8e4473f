// Package bot provides scripted betting strategies that implement the same
// Agent interface a human player does, for use in simulations and tests.
// None of them ever continue after ruin; a simulated session ends when the
// money runs out.
package bot

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/aceyducey/internal/game"
)

// Strategies lists the strategy names New accepts.
var Strategies = []string{"chicken", "flat", "spread", "martingale", "random"}

// Options tunes strategy parameters. Zero values select defaults.
type Options struct {
	// Fraction of the balance a FlatBot bets each round. Default 0.1.
	Fraction float64

	// BaseBet is a MartingaleBot's stake after a win. Default 5.
	BaseBet int
}

// New creates a strategy agent by name.
func New(strategy string, opts Options, rng *rand.Rand, logger *log.Logger) (game.Agent, error) {
	switch strategy {
	case "chicken":
		return &ChickenBot{}, nil
	case "flat":
		fraction := opts.Fraction
		if fraction <= 0 || fraction > 1 {
			fraction = 0.1
		}
		return &FlatBot{fraction: fraction, logger: logger}, nil
	case "spread":
		return &SpreadBot{}, nil
	case "martingale":
		base := opts.BaseBet
		if base <= 0 {
			base = 5
		}
		return &MartingaleBot{base: base, logger: logger}, nil
	case "random":
		return &RandomBot{rng: rng}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}
