// Package display renders the game on a plain terminal and provides the
// line-based input collaborator for interactive play.
package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/aceyducey/internal/deck"
	"github.com/lox/aceyducey/internal/game"
)

const bannerWidth = 66

// Console writes the game's output to a terminal, keeping the original
// game's messages verbatim. Styling degrades to plain text when the
// terminal has no color support.
type Console struct {
	w io.Writer

	title lipgloss.Style
	win   lipgloss.Style
	lose  lipgloss.Style
	card  lipgloss.Style
}

// NewConsole creates a console renderer for w. Callers pass the detected
// terminal profile (termenv.EnvColorProfile for a real terminal,
// termenv.Ascii for plain output).
func NewConsole(w io.Writer, profile termenv.Profile) *Console {
	c := &Console{
		w:     w,
		title: lipgloss.NewStyle().Width(bannerWidth).Align(lipgloss.Center),
		win:   lipgloss.NewStyle(),
		lose:  lipgloss.NewStyle(),
		card:  lipgloss.NewStyle(),
	}

	if profile != termenv.Ascii {
		c.title = c.title.Bold(true)
		c.win = c.win.Foreground(lipgloss.Color("10")).Bold(true)
		c.lose = c.lose.Foreground(lipgloss.Color("9"))
		c.card = c.card.Bold(true)
	}
	return c
}

func (c *Console) Intro() {
	fmt.Fprintln(c.w, c.title.Render("ACEY DUCEY CARD GAME"))
	fmt.Fprintln(c.w, c.title.Render("CREATIVE COMPUTING  MORRISTOWN, NEW JERSEY"))
}

func (c *Console) Instructions() {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, "ACEY-DUCEY IS PLAYED IN THE FOLLOWING MANNER")
	fmt.Fprintln(c.w, "THE DEALER (COMPUTER) DEALS TWO CARDS FACE UP")
	fmt.Fprintln(c.w, "YOU HAVE AN OPTION TO BET OR NOT BET DEPENDING")
	fmt.Fprintln(c.w, "ON WHETHER OR NOT YOU FEEL THE CARD WILL HAVE")
	fmt.Fprintln(c.w, "A VALUE BETWEEN THE FIRST TWO.")
}

func (c *Console) Balance(balance int) {
	fmt.Fprintf(c.w, "YOU NOW HAVE $%d DOLLARS\n", balance)
}

func (c *Console) DealtPair(low, high deck.Rank) {
	fmt.Fprintln(c.w, "HERE ARE YOUR NEXT TWO CARDS:")
	fmt.Fprintf(c.w, "%s %s\n", c.card.Render(low.String()), c.card.Render(high.String()))
}

func (c *Console) ThirdCard(r deck.Rank) {
	fmt.Fprintln(c.w, c.card.Render(r.String()))
}

func (c *Console) NoBet() {
	fmt.Fprintln(c.w, "CHICKEN!!")
}

func (c *Console) OverBet(balance int) {
	fmt.Fprintln(c.w, "SORRY, MY FRIEND, BUT YOU BET TOO MUCH.")
	fmt.Fprintf(c.w, "YOU HAVE ONLY %d DOLLARS TO BET.\n", balance)
}

func (c *Console) Win() {
	fmt.Fprintln(c.w, c.win.Render("YOU WIN!!!"))
}

func (c *Console) Lose() {
	fmt.Fprintln(c.w, c.lose.Render("SORRY, YOU LOSE"))
}

func (c *Console) Ruined() {
	fmt.Fprintln(c.w, c.lose.Render("SORRY, FRIEND, BUT YOU BLEW YOUR WAD."))
}

func (c *Console) GameOver() {
	fmt.Fprintln(c.w, "GAME OVER. Thanks for playing!")
}

var _ game.Display = (*Console)(nil)
