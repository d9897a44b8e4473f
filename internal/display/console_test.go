package display

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/lox/aceyducey/internal/deck"
)

func TestConsoleKeepsOriginalMessages(t *testing.T) {
	var buf bytes.Buffer
	con := NewConsole(&buf, termenv.Ascii)

	con.Intro()
	con.Instructions()
	con.Balance(100)
	con.DealtPair(deck.Two, deck.King)
	con.ThirdCard(deck.Seven)
	con.NoBet()
	con.OverBet(100)
	con.Win()
	con.Lose()
	con.Ruined()
	con.GameOver()

	out := buf.String()
	for _, want := range []string{
		"ACEY DUCEY CARD GAME",
		"CREATIVE COMPUTING  MORRISTOWN, NEW JERSEY",
		"ACEY-DUCEY IS PLAYED IN THE FOLLOWING MANNER",
		"YOU NOW HAVE $100 DOLLARS",
		"HERE ARE YOUR NEXT TWO CARDS:",
		"CHICKEN!!",
		"SORRY, MY FRIEND, BUT YOU BET TOO MUCH.",
		"YOU HAVE ONLY 100 DOLLARS TO BET.",
		"YOU WIN!!!",
		"SORRY, YOU LOSE",
		"SORRY, FRIEND, BUT YOU BLEW YOUR WAD.",
		"GAME OVER. Thanks for playing!",
	} {
		assert.Contains(t, out, want)
	}
}

func TestConsoleShowsCardsAscending(t *testing.T) {
	var buf bytes.Buffer
	con := NewConsole(&buf, termenv.Ascii)

	con.DealtPair(deck.Two, deck.King)
	assert.Contains(t, buf.String(), "2 K")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "YES", normalize("  yes \n"))
	assert.Equal(t, "50", normalize(" 50 "))
	assert.Equal(t, "", normalize("   "))
}
