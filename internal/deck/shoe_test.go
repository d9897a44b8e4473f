package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/aceyducey/internal/randutil"
)

func TestShoeDealsValidRanks(t *testing.T) {
	shoe := NewShoe(randutil.New(42))

	for i := 0; i < 1000; i++ {
		r := shoe.Deal()
		require.True(t, r.Valid(), "dealt invalid rank %d", int(r))
	}
}

// Dealing is with replacement: the shoe never shrinks and repeats must be
// possible.
func TestShoeDealsWithReplacement(t *testing.T) {
	shoe := NewShoe(randutil.New(7))

	sawRepeat := false
	prev := shoe.Deal()
	for i := 0; i < 1000; i++ {
		r := shoe.Deal()
		if r == prev {
			sawRepeat = true
		}
		prev = r
	}

	assert.True(t, sawRepeat, "1000 deals from 13 ranks must repeat back to back")
	assert.Equal(t, NumRanks, shoe.Size(), "shoe must never be exhausted")
}

func TestShoeHitsEveryRank(t *testing.T) {
	shoe := NewShoe(randutil.New(99))

	seen := make(map[Rank]int)
	for i := 0; i < 5000; i++ {
		seen[shoe.Deal()]++
	}

	for r := Two; r <= Ace; r++ {
		assert.Greater(t, seen[r], 0, "rank %s never dealt", r)
	}
}

func TestShoeDeterministicForSeed(t *testing.T) {
	a := NewShoe(randutil.New(1234))
	b := NewShoe(randutil.New(1234))

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Deal(), b.Deal())
	}
}
