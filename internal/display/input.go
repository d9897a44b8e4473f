package display

import (
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lox/aceyducey/internal/game"
)

const (
	betPrompt      = "WHAT IS YOUR BET "
	continuePrompt = "TRY AGAIN (YES OR NO)? "
)

// NewReadlineAgent builds the interactive input collaborator: trimmed,
// upper-cased lines from the terminal. EOF and interrupts end the session
// rather than crashing it. The returned closer restores the terminal.
func NewReadlineAgent() (game.Agent, io.Closer, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          betPrompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, nil, err
	}

	agent := game.NewHumanAgent(
		func() (string, error) { return readPrompt(rl, betPrompt) },
		func() (string, error) { return readPrompt(rl, continuePrompt) },
	)
	return agent, rl, nil
}

func readPrompt(rl *readline.Instance, prompt string) (string, error) {
	rl.SetPrompt(prompt)
	line, err := rl.Readline()
	if err != nil {
		return "", game.ErrQuit
	}
	return normalize(line), nil
}

// normalize owns the trimming and case-folding the engine delegates to its
// input collaborator.
func normalize(line string) string {
	return strings.ToUpper(strings.TrimSpace(line))
}
