package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/aceyducey/internal/deck"
	"github.com/lox/aceyducey/internal/game"
)

// Bridge couples the engine to the bubbletea program. It is the engine's
// Agent and Display: display calls post log lines, agent calls block until
// the model collects a line of input or the user quits.
type Bridge struct {
	program *tea.Program
	replies chan string

	quitOnce sync.Once
	quitCh   chan struct{}
}

// NewBridge creates an unattached bridge; attach is called once the
// program exists.
func NewBridge() *Bridge {
	return &Bridge{
		replies: make(chan string, 1),
		quitCh:  make(chan struct{}),
	}
}

func (b *Bridge) attach(program *tea.Program) {
	b.program = program
}

// Quit unblocks any pending prompt and marks the session as abandoned.
func (b *Bridge) Quit() {
	b.quitOnce.Do(func() {
		close(b.quitCh)
	})
}

// send drops messages until the program is attached; the engine only
// starts after attach, so nothing user-visible is lost.
func (b *Bridge) send(msg tea.Msg) {
	if b.program != nil {
		b.program.Send(msg)
	}
}

func (b *Bridge) post(line string) {
	b.send(logLineMsg(line))
}

func (b *Bridge) ask(prompt string) (string, error) {
	b.send(promptMsg(prompt))
	select {
	case reply := <-b.replies:
		return reply, nil
	case <-b.quitCh:
		return "", game.ErrQuit
	}
}

// Agent

func (b *Bridge) PlaceBet(balance int, low, high deck.Rank) (string, error) {
	return b.ask("WHAT IS YOUR BET ")
}

func (b *Bridge) ContinueAfterRuin() (string, error) {
	return b.ask("TRY AGAIN (YES OR NO)? ")
}

// Display

func (b *Bridge) Intro() {
	b.post("ACEY DUCEY CARD GAME")
	b.post("CREATIVE COMPUTING  MORRISTOWN, NEW JERSEY")
}

func (b *Bridge) Instructions() {
	b.post("")
	b.post("ACEY-DUCEY IS PLAYED IN THE FOLLOWING MANNER")
	b.post("THE DEALER (COMPUTER) DEALS TWO CARDS FACE UP")
	b.post("YOU HAVE AN OPTION TO BET OR NOT BET DEPENDING")
	b.post("ON WHETHER OR NOT YOU FEEL THE CARD WILL HAVE")
	b.post("A VALUE BETWEEN THE FIRST TWO.")
}

func (b *Bridge) Balance(balance int) {
	b.post("")
	b.post(fmt.Sprintf("YOU NOW HAVE $%d DOLLARS", balance))
}

func (b *Bridge) DealtPair(low, high deck.Rank) {
	b.post("HERE ARE YOUR NEXT TWO CARDS:")
	b.post(fmt.Sprintf("%s %s", low, high))
}

func (b *Bridge) ThirdCard(r deck.Rank) {
	b.post(r.String())
}

func (b *Bridge) NoBet() {
	b.post("CHICKEN!!")
}

func (b *Bridge) OverBet(balance int) {
	b.post("SORRY, MY FRIEND, BUT YOU BET TOO MUCH.")
	b.post(fmt.Sprintf("YOU HAVE ONLY %d DOLLARS TO BET.", balance))
}

func (b *Bridge) Win() {
	b.post("YOU WIN!!!")
}

func (b *Bridge) Lose() {
	b.post("SORRY, YOU LOSE")
}

func (b *Bridge) Ruined() {
	b.post("SORRY, FRIEND, BUT YOU BLEW YOUR WAD.")
}

func (b *Bridge) GameOver() {
	b.post("GAME OVER. Thanks for playing!")
}

var (
	_ game.Agent   = (*Bridge)(nil)
	_ game.Display = (*Bridge)(nil)
)

// Run plays one interactive session in the full-screen TUI. It blocks
// until the game ends or the user quits.
func Run(ctx context.Context, dealer game.Dealer, logger *log.Logger) error {
	bridge := NewBridge()
	model := newModel(bridge.replies, bridge.Quit)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	bridge.attach(program)

	engine := game.New(game.Config{
		Dealer:  dealer,
		Agent:   bridge,
		Display: bridge,
		Logger:  logger,
	})

	go func() {
		if err := engine.Run(ctx); err != nil {
			logger.Error("engine stopped", "error", err)
		}
		program.Send(sessionDoneMsg{})
	}()

	_, err := program.Run()
	bridge.Quit()
	return err
}
