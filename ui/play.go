// Package ui provides the interactive play mode: a terminal session for
// playing a game by hand, useful for testing games before pointing an agent
// at them.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/grue-labs/lantern/game"
)

// PlayModel is the bubbletea model for interactive play.
type PlayModel struct {
	env        *game.Environment
	state      game.State
	transcript []string

	viewport viewport.Model
	input    textinput.Model

	width  int
	height int
	ready  bool
}

// NewPlayModel starts an interactive session for the given environment.
func NewPlayModel(env *game.Environment) PlayModel {
	input := textinput.New()
	input.Placeholder = "what do you do?"
	input.Prompt = "> "
	input.Focus()

	state := env.Reset()
	return PlayModel{
		env:        env,
		state:      state,
		transcript: []string{state.Observation},
		input:      input,
	}
}

func (m PlayModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewportHeight := msg.Height - 4
		if viewportHeight < 3 {
			viewportHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m PlayModel) submit() (tea.Model, tea.Cmd) {
	action := strings.TrimSpace(m.input.Value())
	if action == "" {
		return m, nil
	}
	m.input.SetValue("")

	if m.state.Done {
		return m, tea.Quit
	}

	m.state = m.env.Step(action)
	m.transcript = append(m.transcript, "> "+action, m.state.Observation)
	m.refreshViewport()

	if m.state.Done {
		m.transcript = append(m.transcript, "", "(press enter to exit)")
		m.refreshViewport()
	}
	return m, nil
}

func (m *PlayModel) refreshViewport() {
	if !m.ready {
		return
	}
	content := strings.Join(m.transcript, "\n")
	if m.width > 0 {
		content = wordwrap.String(content, m.width)
	}
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}

func (m PlayModel) View() string {
	if !m.ready {
		return "loading..."
	}
	var b strings.Builder
	b.WriteString(TitleBar(m.env.GameName(), m.width))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(StatusBar(m.state, m.width))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

// RunPlay launches the interactive session for the named game.
func RunPlay(gameName string) error {
	env, err := game.NewEnvironment(gameName)
	if err != nil {
		return err
	}
	p := tea.NewProgram(NewPlayModel(env), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play session failed: %w", err)
	}
	return nil
}
