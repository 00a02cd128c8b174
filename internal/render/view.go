package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ghpulse/internal/widget"
)

// ResultPanels renders the profile, calendar and stats panels of a lookup
func ResultPanels(res widget.Result) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ProfilePanel(res.Profile),
		titleStyle.Render("Contributions in the last year"),
		CalendarPanel(res.Grid),
		StatsPanel(res.Stats),
	)
}

// View renders s. spinner is the current loading indicator frame.
func View(s State, spinner string) string {
	switch {
	case s.Loading():
		return spinner + " Loading " + s.Username + "..."
	case s.ShowError():
		return errorStyle.Render(s.Message)
	case s.ShowResults():
		return ResultPanels(*s.Result)
	default:
		return labelStyle.Render("Enter a GitHub username to see their activity.")
	}
}
