package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionCoversTable(t *testing.T) {
	seen := make(map[int]bool)
	for r := Two; r <= Ace; r++ {
		pos, err := Position(r)
		require.NoError(t, err)
		require.GreaterOrEqual(t, pos, 0)
		require.Less(t, pos, NumRanks)
		require.False(t, seen[pos], "position %d assigned twice", pos)
		seen[pos] = true
	}
	assert.Len(t, seen, NumRanks)
}

func TestPositionInvalidRank(t *testing.T) {
	for _, r := range []Rank{0, 1, 15, -3} {
		_, err := Position(r)
		assert.ErrorIs(t, err, ErrInvalidRank, "rank %d", int(r))
	}
}

func TestParseRankRoundTrip(t *testing.T) {
	for r := Two; r <= Ace; r++ {
		parsed, err := ParseRank(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := ParseRank("1")
	assert.ErrorIs(t, err, ErrInvalidRank)
	_, err = ParseRank("T")
	assert.ErrorIs(t, err, ErrInvalidRank, "ten is displayed as 10, not T")
}

// Exhaustive check over all 13^3 triples: IsBetween must agree with the
// positional definition and be symmetric in its bounds.
func TestIsBetweenMatchesPositions(t *testing.T) {
	for a := Two; a <= Ace; a++ {
		for b := Two; b <= Ace; b++ {
			for test := Two; test <= Ace; test++ {
				lo, hi := int(a), int(b)
				if lo > hi {
					lo, hi = hi, lo
				}
				want := int(test) > lo && int(test) < hi

				got, err := IsBetween(a, b, test)
				require.NoError(t, err)
				assert.Equal(t, want, got, "IsBetween(%s, %s, %s)", a, b, test)

				sym, err := IsBetween(b, a, test)
				require.NoError(t, err)
				assert.Equal(t, got, sym, "bound order must not matter for (%s, %s, %s)", a, b, test)
			}
		}
	}
}

func TestIsBetweenExcludesBounds(t *testing.T) {
	for a := Two; a <= Ace; a++ {
		for b := Two; b <= Ace; b++ {
			onLow, err := IsBetween(a, b, a)
			require.NoError(t, err)
			assert.False(t, onLow, "IsBetween(%s, %s, %s) must exclude the bound", a, b, a)

			onHigh, err := IsBetween(a, b, b)
			require.NoError(t, err)
			assert.False(t, onHigh, "IsBetween(%s, %s, %s) must exclude the bound", a, b, b)
		}
	}
}

func TestIsBetweenDegenerateInterval(t *testing.T) {
	for r := Two; r <= Ace; r++ {
		for test := Two; test <= Ace; test++ {
			got, err := IsBetween(r, r, test)
			require.NoError(t, err)
			assert.False(t, got, "zero-width interval at %s contains nothing", r)
		}
	}
}

func TestIsBetweenInvalidRank(t *testing.T) {
	_, err := IsBetween(Rank(0), King, Seven)
	assert.ErrorIs(t, err, ErrInvalidRank)
	_, err = IsBetween(Two, Rank(99), Seven)
	assert.ErrorIs(t, err, ErrInvalidRank)
	_, err = IsBetween(Two, King, Rank(-1))
	assert.ErrorIs(t, err, ErrInvalidRank)
}

func TestOrderedPair(t *testing.T) {
	low, high, err := OrderedPair(King, Two)
	require.NoError(t, err)
	assert.Equal(t, Two, low)
	assert.Equal(t, King, high)

	low, high, err = OrderedPair(Two, King)
	require.NoError(t, err)
	assert.Equal(t, Two, low)
	assert.Equal(t, King, high)

	low, high, err = OrderedPair(Seven, Seven)
	require.NoError(t, err)
	assert.Equal(t, Seven, low)
	assert.Equal(t, Seven, high)

	_, _, err = OrderedPair(Rank(1), Ace)
	assert.ErrorIs(t, err, ErrInvalidRank)
}
