package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grue-labs/lantern/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSizedModel(t *testing.T, gameName string) PlayModel {
	t.Helper()
	env, err := game.NewEnvironment(gameName)
	require.NoError(t, err)

	m := NewPlayModel(env)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(PlayModel)
}

func TestPlayModelShowsOpeningObservation(t *testing.T) {
	m := newSizedModel(t, "lostpig")
	view := m.View()
	assert.Contains(t, view, "Grunk")
	assert.Contains(t, view, "score 0")
}

func TestPlayModelSubmitsActions(t *testing.T) {
	m := newSizedModel(t, "lostpig")

	m.input.SetValue("down")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(PlayModel)

	view := m.View()
	assert.Contains(t, view, "> down")
	assert.Contains(t, view, "Bottom of Hole")
	assert.Contains(t, view, "moves 1")
	assert.Empty(t, m.input.Value(), "input must clear after submit")
}

func TestPlayModelIgnoresBlankInput(t *testing.T) {
	m := newSizedModel(t, "zork1")

	m.input.SetValue("   ")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(PlayModel)

	assert.Contains(t, m.View(), "moves 0")
}

func TestPlayModelQuitsOnCtrlC(t *testing.T) {
	m := newSizedModel(t, "zork1")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestPlayModelEndsAfterQuitCommand(t *testing.T) {
	m := newSizedModel(t, "detective")

	m.input.SetValue("quit")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(PlayModel)
	assert.Contains(t, m.View(), "game over")

	// The next enter exits the session.
	m.input.SetValue("anything")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestStatusBarVictory(t *testing.T) {
	out := StatusBar(game.State{Score: 25, Moves: 8, Done: true, Victory: true}, 80)
	assert.Contains(t, out, "victory!")
}
