// Package calendar lays daily activity out as a Sunday-aligned, week-major grid.
package calendar

import (
	"time"

	"github.com/julianstephens/ghpulse/internal/activity"
	"github.com/julianstephens/ghpulse/internal/constants"
	"github.com/julianstephens/ghpulse/internal/errors"
	"github.com/julianstephens/ghpulse/internal/models"
)

// Build arranges an ascending, contiguous dataset into week columns.
// Days before the first record and after the last one become placeholders.
func Build(ds models.ActivityDataset) (models.CalendarGrid, error) {
	if ds.Len() == 0 {
		return models.CalendarGrid{}, errors.ErrEmptyDataset
	}

	startDate := models.TruncateDay(ds.First().Date)
	endDate := models.TruncateDay(ds.Last().Date)

	countMap := make(map[string]int, ds.Len())
	for _, r := range ds.Records {
		countMap[r.Day()] = r.Count
	}

	// align first column to Sunday
	leadOffset := int(startDate.Weekday())
	firstSunday := startDate.AddDate(0, 0, -leadOffset)

	totalSpanDays := models.DaysBetween(startDate, endDate) + 1
	totalWeeks := (totalSpanDays + leadOffset + constants.DaysPerWeek - 1) / constants.DaysPerWeek

	grid := models.CalendarGrid{
		Start: firstSunday,
		Weeks: make([]models.Week, totalWeeks),
	}
	for w := range totalWeeks {
		for i := range constants.DaysPerWeek {
			current := firstSunday.AddDate(0, 0, w*constants.DaysPerWeek+i)
			count, exists := countMap[current.Format(constants.DateFormat)]
			if !exists {
				continue
			}
			grid.Weeks[w][i] = dataCell(current, count)
		}
	}

	return grid, nil
}

func dataCell(day time.Time, count int) models.CalendarCell {
	bucket := activity.Classify(count)
	return models.CalendarCell{
		Date:   &day,
		Count:  &count,
		Bucket: &bucket,
	}
}
