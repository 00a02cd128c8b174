package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ghpulse/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(constants.AppName+" · GitHub activity"),
		m.form.View(),
		m.results.View(),
		m.help.View(m),
	)
	return docStyle.Render(ui)
}
