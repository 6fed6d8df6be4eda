package eval

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"})
	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#22c55e", Dark: "#4ade80"})
	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#ef4444", Dark: "#f87171"})
)

// Render formats the per-game summaries as a console table.
func (r *Report) Render() string {
	var b strings.Builder

	agentName := r.Spec.Agent
	if agentName == "" {
		agentName = "walkthrough"
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("Evaluation: agent=%s episodes=%d seed=%d max-moves=%d",
		agentName, r.Spec.Episodes, r.Spec.Seed, r.Spec.MaxMoves)))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-12s %8s %10s %10s %10s %10s",
		"GAME", "EPISODES", "MEAN", "BEST", "WIN RATE", "MOVES")))
	b.WriteString("\n")

	for _, s := range r.Summaries {
		rate := fmt.Sprintf("%.0f%%", s.WinRate*100)
		if s.WinRate >= 1 {
			rate = winStyle.Render(rate)
		} else if s.WinRate == 0 {
			rate = lossStyle.Render(rate)
		}
		b.WriteString(fmt.Sprintf("%-12s %8d %10.1f %7d/%-2d %10s %10.1f\n",
			s.Game, s.Episodes, s.MeanScore, s.BestScore, s.MaxScore, rate, s.MeanMoves))
	}
	return b.String()
}
