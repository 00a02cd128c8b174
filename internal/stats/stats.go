// Package stats computes totals, streaks and the daily average of a dataset.
package stats

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/ghpulse/internal/errors"
	"github.com/julianstephens/ghpulse/internal/models"
)

// AveragePlaces is the number of fractional digits kept in the daily average
const AveragePlaces = 1

// Summarize computes the summary figures for ds as seen on today
func Summarize(ds models.ActivityDataset, today time.Time) (models.SummaryStats, error) {
	if ds.Len() == 0 {
		return models.SummaryStats{}, errors.ErrEmptyDataset
	}

	total := ds.Sum()
	if total != ds.Total {
		return models.SummaryStats{}, fmt.Errorf("%w: total %d, records sum to %d", errors.ErrTotalMismatch, ds.Total, total)
	}

	avg, err := DailyAverage(total, ds.Len())
	if err != nil {
		return models.SummaryStats{}, err
	}

	return models.SummaryStats{
		Total:         total,
		LongestStreak: LongestStreak(ds.Records),
		CurrentStreak: CurrentStreak(ds.Records, today),
		DailyAverage:  avg,
	}, nil
}

// LongestStreak returns the longest run of consecutive records with a non-zero count
func LongestStreak(records []models.ActivityRecord) int {
	longest, temp := 0, 0
	for _, r := range records {
		if r.Count > 0 {
			temp++
			continue
		}
		longest = max(longest, temp)
		temp = 0
	}
	// a streak may run through the last record
	return max(longest, temp)
}

// CurrentStreak counts active days backwards from the last record dated on or before today
func CurrentStreak(records []models.ActivityRecord, today time.Time) int {
	today = models.TruncateDay(today)

	i := len(records) - 1
	for i >= 0 && models.TruncateDay(records[i].Date).After(today) {
		i--
	}

	streak := 0
	for ; i >= 0; i-- {
		if records[i].Count <= 0 {
			break
		}
		streak++
	}
	return streak
}

// DailyAverage returns total/days rounded half-up to one fractional digit.
func DailyAverage(total, days int) (decimal.Decimal, error) {
	if days <= 0 {
		return decimal.Decimal{}, errors.ErrEmptyDataset
	}
	if total < 0 {
		return decimal.Decimal{}, fmt.Errorf("negative total %d", total)
	}
	return decimal.NewFromInt(int64(total)).DivRound(decimal.NewFromInt(int64(days)), AveragePlaces), nil
}
