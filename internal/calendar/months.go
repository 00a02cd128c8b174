package calendar

import (
	"time"

	"github.com/julianstephens/ghpulse/internal/constants"
	"github.com/julianstephens/ghpulse/internal/models"
)

// MonthLabel marks the week column where a month's label is drawn
type MonthLabel struct {
	Week  int
	Label string
}

// MonthLabels returns one label per month, placed on the first column whose
// Sunday falls within that month's first seven days.
func MonthLabels(grid models.CalendarGrid) []MonthLabel {
	var labels []MonthLabel
	lastMonth := time.Month(0)
	for w := range grid.Weeks {
		current := grid.Start.AddDate(0, 0, w*constants.DaysPerWeek)
		if current.Day() <= constants.DaysPerWeek && current.Month() != lastMonth {
			labels = append(labels, MonthLabel{Week: w, Label: current.Month().String()[:3]})
			lastMonth = current.Month()
		}
	}
	return labels
}
