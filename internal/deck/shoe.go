package deck

import (
	rand "math/rand/v2"
)

// Shoe deals ranks uniformly at random from the 13-entry table. Dealing is
// sampling with replacement: cards are never removed, so the same rank can
// come up twice in a row. This matches the original game's odds and must not
// be "fixed" into a draw-without-replacement deck.
type Shoe struct {
	ranks []Rank
	rng   *rand.Rand
}

// NewShoe creates a shoe over the full rank table using the provided
// generator. The generator is seeded once by the caller and reused for
// every deal.
func NewShoe(rng *rand.Rand) *Shoe {
	ranks := make([]Rank, 0, NumRanks)
	for r := Two; r <= Ace; r++ {
		ranks = append(ranks, r)
	}
	return &Shoe{ranks: ranks, rng: rng}
}

// Deal returns one rank chosen uniformly from the table.
func (s *Shoe) Deal() Rank {
	return s.ranks[s.rng.IntN(len(s.ranks))]
}

// Size returns the number of ranks in the table, always 13.
func (s *Shoe) Size() int {
	return len(s.ranks)
}
