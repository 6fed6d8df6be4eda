package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/grue-labs/lantern/game"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"})
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"})
	victoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#22c55e", Dark: "#4ade80"})
)

// TitleBar renders the session header, truncated to the terminal width.
func TitleBar(gameName string, width int) string {
	title := "lantern · " + gameName
	if width > 0 {
		title = runewidth.Truncate(title, width, "…")
	}
	return titleStyle.Render(title)
}

// StatusBar renders the score/move line shown under the transcript.
func StatusBar(state game.State, width int) string {
	status := fmt.Sprintf("score %d · moves %d", state.Score, state.Moves)
	if state.Victory {
		return victoryStyle.Render(status + " · victory!")
	}
	if state.Done {
		status += " · game over"
	}
	if width > 0 {
		status = runewidth.Truncate(status, width, "…")
	}
	return statusStyle.Render(status)
}
