// Package tui provides a full-screen bubbletea front end for the game. The
// engine runs in its own goroutine and talks to the model through a Bridge
// that implements the game's Agent and Display interfaces.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)
)

// logLineMsg appends one line to the game log.
type logLineMsg string

// promptMsg asks the model to collect one line of input with the given
// prompt text.
type promptMsg string

// sessionDoneMsg is sent when the engine has terminated.
type sessionDoneMsg struct{}

// Model is the bubbletea model for a game session.
type Model struct {
	viewport viewport.Model
	input    textinput.Model

	lines    []string
	awaiting bool
	quitting bool

	replies chan<- string
	quit    func()

	width  int
	height int
	ready  bool
}

func newModel(replies chan<- string, quit func()) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 32
	ti.PromptStyle = inputStyle

	vp := viewport.New(80, 20)
	vp.SetContent("")

	return &Model{
		viewport: vp,
		input:    ti,
		replies:  replies,
		quit:     quit,
	}
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 3
		m.viewport.SetContent(strings.Join(m.lines, "\n"))
		m.viewport.GotoBottom()
		m.ready = true

	case logLineMsg:
		m.appendLine(string(msg))

	case promptMsg:
		m.awaiting = true
		m.input.Prompt = string(msg)
		m.input.SetValue("")
		m.input.Focus()
		cmds = append(cmds, textinput.Blink)

	case sessionDoneMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			m.quit()
			return m, tea.Quit

		case "enter":
			if m.awaiting {
				value := strings.ToUpper(strings.TrimSpace(m.input.Value()))
				m.appendLine(m.input.Prompt + value)
				m.awaiting = false
				m.input.Blur()
				m.input.SetValue("")
				m.replies <- value
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the screen: title bar, game log, input line.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	title := titleStyle.Render(" ♠ ♥ Acey Ducey ♦ ♣ ")
	inputLine := ""
	if m.awaiting {
		inputLine = m.input.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.viewport.View(),
		inputLine,
	)
}

func (m *Model) appendLine(line string) {
	m.lines = append(m.lines, line)
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}
