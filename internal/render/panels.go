package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ghpulse/internal/activity"
	"github.com/julianstephens/ghpulse/internal/calendar"
	"github.com/julianstephens/ghpulse/internal/models"
)

const (
	cellGlyph  = "■"
	cellWidth  = 2
	dayColumns = 4
)

var weekdayLabels = [7]string{"", "Mon", "", "Wed", "", "Fri", ""}

// ProfilePanel renders the user info box
func ProfilePanel(p models.Profile) string {
	counters := lipgloss.JoinHorizontal(lipgloss.Top,
		stat(Number(p.PublicRepos), "Public Repos"),
		stat(Number(p.Followers), "Followers"),
		stat(Number(p.Following), "Following"),
		stat(Number(p.Gists()), "Gists"),
	)

	lines := []string{
		nameStyle.Render(p.DisplayName()),
		handleStyle.Render(p.Handle()),
		bioStyle.Render(p.BioText()),
	}
	if p.AvatarURL != "" {
		lines = append(lines, labelStyle.Render(p.AvatarURL))
	}
	lines = append(lines, "", counters)

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func stat(value, label string) string {
	return lipgloss.NewStyle().PaddingRight(3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			statValueStyle.Render(value),
			statLabelStyle.Render(label),
		),
	)
}

// StatsPanel renders the summary figures
func StatsPanel(s models.SummaryStats) string {
	return panelStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		stat(Number(s.Total), "Total Contributions"),
		stat(Number(s.CurrentStreak), "Current Streak"),
		stat(Number(s.LongestStreak), "Longest Streak"),
		stat(s.DailyAverageString(), "Daily Average"),
	))
}

// CalendarPanel renders the grid as weekday rows by week columns
func CalendarPanel(grid models.CalendarGrid) string {
	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", dayColumns))
	sb.WriteString(monthRow(grid))
	sb.WriteString("\n")

	for day := range weekdayLabels {
		sb.WriteString(labelStyle.Render(padRight(weekdayLabels[day], dayColumns)))
		for _, week := range grid.Weeks {
			sb.WriteString(Cell(week[day]))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(Legend())

	return panelStyle.Render(sb.String())
}

// Cell renders one grid cell; placeholders are blank
func Cell(c models.CalendarCell) string {
	if c.IsPlaceholder() {
		return strings.Repeat(" ", cellWidth)
	}
	color := activity.Color(*c.Bucket)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(cellGlyph) + " "
}

// Legend renders the Less..More color key
func Legend() string {
	var sb strings.Builder
	sb.WriteString(labelStyle.Render("Less "))
	for b := range models.BucketCount {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(activity.Color(models.Bucket(b)))).Render(cellGlyph))
		sb.WriteString(" ")
	}
	sb.WriteString(labelStyle.Render("More"))
	return sb.String()
}

func monthRow(grid models.CalendarGrid) string {
	row := []rune(strings.Repeat(" ", len(grid.Weeks)*cellWidth))
	next := 0
	for _, label := range calendar.MonthLabels(grid) {
		col := label.Week * cellWidth
		if col < next || col+len(label.Label) > len(row) {
			continue
		}
		copy(row[col:], []rune(label.Label))
		next = col + len(label.Label) + 1
	}
	return labelStyle.Render(string(row))
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
