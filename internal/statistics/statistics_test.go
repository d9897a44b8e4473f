package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAccumulatesCounts(t *testing.T) {
	stats := New(100)
	stats.Add(SessionResult{Rounds: 10, Wins: 4, Losses: 3, NoBets: 2, OverBets: 1, FinalBalance: 120})
	stats.Add(SessionResult{Rounds: 5, Wins: 1, Losses: 4, NoBets: 0, OverBets: 0, FinalBalance: 0, Ruined: true})

	assert.Equal(t, 2, stats.Sessions)
	assert.Equal(t, 15, stats.Rounds)
	assert.Equal(t, 5, stats.Wins)
	assert.Equal(t, 7, stats.Losses)
	assert.Equal(t, 2, stats.NoBets)
	assert.Equal(t, 1, stats.OverBets)
	assert.Equal(t, 1, stats.Ruins)
	assert.NoError(t, stats.Validate())
}

func TestMeanAndStdDev(t *testing.T) {
	stats := New(100)
	// Nets: +20, -100, +50
	stats.Add(SessionResult{Rounds: 1, Wins: 1, FinalBalance: 120})
	stats.Add(SessionResult{Rounds: 1, Losses: 1, FinalBalance: 0, Ruined: true})
	stats.Add(SessionResult{Rounds: 1, Wins: 1, FinalBalance: 150})

	assert.InDelta(t, -10.0, stats.Mean(), 1e-9)

	// Sample variance of {20, -100, 50}: mean -10, squared deviations
	// 900 + 8100 + 3600 = 12600, over n-1 = 6300.
	assert.InDelta(t, 6300.0, stats.Variance(), 1e-6)
	assert.InDelta(t, math.Sqrt(6300.0), stats.StdDev(), 1e-6)
}

func TestConfidenceIntervalBracketsMean(t *testing.T) {
	stats := New(100)
	for i := 0; i < 10; i++ {
		stats.Add(SessionResult{Rounds: 1, Wins: 1, FinalBalance: 100 + i})
	}

	lo, hi := stats.ConfidenceInterval95()
	mean := stats.Mean()
	assert.LessOrEqual(t, lo, mean)
	assert.GreaterOrEqual(t, hi, mean)
}

func TestValidateCatchesUnaccountedRounds(t *testing.T) {
	stats := New(100)
	stats.Add(SessionResult{Rounds: 10, Wins: 1, FinalBalance: 100})

	require.Error(t, stats.Validate())
}

func TestRuinRate(t *testing.T) {
	stats := New(100)
	assert.Zero(t, stats.RuinRate())

	stats.Add(SessionResult{Rounds: 1, Losses: 1, FinalBalance: 0, Ruined: true})
	stats.Add(SessionResult{Rounds: 1, NoBets: 1, FinalBalance: 100})

	assert.InDelta(t, 0.5, stats.RuinRate(), 1e-9)
}

func TestSummaryMentionsHeadlineNumbers(t *testing.T) {
	stats := New(100)
	stats.Add(SessionResult{Rounds: 3, Wins: 1, Losses: 1, NoBets: 1, FinalBalance: 110})

	summary := stats.Summary()
	assert.Contains(t, summary, "Sessions:   1")
	assert.Contains(t, summary, "Rounds:     3")
}
