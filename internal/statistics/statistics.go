// Package statistics aggregates results across simulated game sessions.
package statistics

import (
	"fmt"
	"math"
	"strings"
)

// SessionResult is the outcome of one simulated session.
type SessionResult struct {
	Seed         int64 // RNG seed for this session (for replay)
	Rounds       int
	Wins         int
	Losses       int
	NoBets       int
	OverBets     int
	FinalBalance int

	// Ruined means the session ended with the balance at or below zero;
	// otherwise it ran out of its round budget.
	Ruined bool
}

// Net is the session's profit or loss against the starting balance.
func (r SessionResult) Net(startingBalance int) int {
	return r.FinalBalance - startingBalance
}

// Statistics tracks aggregate results over many sessions.
type Statistics struct {
	StartingBalance int

	Sessions int
	Rounds   int
	Wins     int
	Losses   int
	NoBets   int
	OverBets int
	Ruins    int

	sumNet  float64
	sumNet2 float64 // sum of squares for variance
}

// New creates a Statistics accumulator for sessions started at the given
// balance.
func New(startingBalance int) *Statistics {
	return &Statistics{StartingBalance: startingBalance}
}

// Add incorporates one session result.
func (s *Statistics) Add(result SessionResult) {
	s.Sessions++
	s.Rounds += result.Rounds
	s.Wins += result.Wins
	s.Losses += result.Losses
	s.NoBets += result.NoBets
	s.OverBets += result.OverBets
	if result.Ruined {
		s.Ruins++
	}

	net := float64(result.Net(s.StartingBalance))
	s.sumNet += net
	s.sumNet2 += net * net
}

// Mean returns the average session net in dollars.
func (s *Statistics) Mean() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.sumNet / float64(s.Sessions)
}

// Variance returns the sample variance of session nets.
func (s *Statistics) Variance() float64 {
	if s.Sessions < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.sumNet2 - float64(s.Sessions)*mean*mean) / float64(s.Sessions-1)
}

// StdDev returns the sample standard deviation of session nets.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Sessions))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean net.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// RuinRate returns the fraction of sessions that ended in ruin.
func (s *Statistics) RuinRate() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return float64(s.Ruins) / float64(s.Sessions)
}

// Validate checks internal consistency: every round must be accounted for
// by exactly one outcome.
func (s *Statistics) Validate() error {
	accounted := s.Wins + s.Losses + s.NoBets + s.OverBets
	if accounted != s.Rounds {
		return fmt.Errorf("outcome counts (%d) do not account for all rounds (%d)", accounted, s.Rounds)
	}
	if s.Ruins > s.Sessions {
		return fmt.Errorf("more ruins (%d) than sessions (%d)", s.Ruins, s.Sessions)
	}
	return nil
}

// Summary renders a human-readable report.
func (s *Statistics) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Sessions:   %d (%d ruined, %.1f%%)\n", s.Sessions, s.Ruins, s.RuinRate()*100)
	fmt.Fprintf(&b, "Rounds:     %d (%d won, %d lost, %d no-bet, %d over-bet)\n",
		s.Rounds, s.Wins, s.Losses, s.NoBets, s.OverBets)
	lo, hi := s.ConfidenceInterval95()
	fmt.Fprintf(&b, "Net/session: $%.2f ± %.2f (95%% CI $%.2f to $%.2f, stddev %.2f)\n",
		s.Mean(), 1.96*s.StdError(), lo, hi, s.StdDev())

	return b.String()
}
