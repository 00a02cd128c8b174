package validation

import (
	"fmt"
	"time"

	"github.com/julianstephens/ghpulse/internal/activity"
	"github.com/julianstephens/ghpulse/internal/constants"
	"github.com/julianstephens/ghpulse/internal/models"
	"github.com/julianstephens/ghpulse/internal/stats"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictEmptyDataset      ConflictType = "empty_dataset"
	ConflictGap               ConflictType = "gap"
	ConflictNegativeCount     ConflictType = "negative_count"
	ConflictTotalMismatch     ConflictType = "total_mismatch"
	ConflictGridMisaligned    ConflictType = "grid_misaligned"
	ConflictGridCellMismatch  ConflictType = "grid_cell_mismatch"
	ConflictBucketMismatch    ConflictType = "bucket_mismatch"
	ConflictStreakOutOfBounds ConflictType = "streak_out_of_bounds"
	ConflictAverageMismatch   ConflictType = "average_mismatch"
)

// Conflict represents one broken invariant
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string // YYYY-MM-DD format (if applicable)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

func (vr *ValidationResult) add(t ConflictType, date string, format string, args ...interface{}) {
	vr.Conflicts = append(vr.Conflicts, Conflict{
		Type:        t,
		Description: fmt.Sprintf(format, args...),
		Date:        date,
	})
}

// Validator checks that a dataset, its calendar grid and its summary agree
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateDataset checks record ordering, contiguity, counts and the total
func (v *Validator) ValidateDataset(ds models.ActivityDataset) ValidationResult {
	var result ValidationResult

	if ds.Len() == 0 {
		result.add(ConflictEmptyDataset, "", "dataset has no records")
		return result
	}

	for i, r := range ds.Records {
		if r.Count < 0 {
			result.add(ConflictNegativeCount, r.Day(), "%s has negative count %d", r.Day(), r.Count)
		}
		if i == 0 {
			continue
		}
		want := ds.Records[i-1].Date.AddDate(0, 0, 1)
		if !r.Date.Equal(want) {
			result.add(ConflictGap, r.Day(), "expected %s after %s, got %s",
				formatDate(want), ds.Records[i-1].Day(), r.Day())
		}
	}

	if sum := ds.Sum(); sum != ds.Total {
		result.add(ConflictTotalMismatch, "", "total %d does not match record sum %d", ds.Total, sum)
	}

	return result
}

// ValidateGrid checks that grid lays out exactly the records of ds
func (v *Validator) ValidateGrid(ds models.ActivityDataset, grid models.CalendarGrid) ValidationResult {
	var result ValidationResult

	if grid.Start.Weekday() != time.Sunday {
		result.add(ConflictGridMisaligned, formatDate(grid.Start), "grid starts on %s, not Sunday", grid.Start.Weekday())
	}
	if n := grid.DataCells(); n != ds.Len() {
		result.add(ConflictGridCellMismatch, "", "grid has %d data cells for %d records", n, ds.Len())
	}

	counts := make(map[string]int, ds.Len())
	for _, r := range ds.Records {
		counts[r.Day()] = r.Count
	}

	for w, week := range grid.Weeks {
		for i, cell := range week {
			if cell.IsPlaceholder() {
				continue
			}
			day := formatDate(*cell.Date)
			if cell.Date.Weekday() != time.Weekday(i) {
				result.add(ConflictGridMisaligned, day, "%s placed in week %d row %d", day, w, i)
			}
			count, ok := counts[day]
			if !ok || count != *cell.Count {
				result.add(ConflictGridCellMismatch, day, "cell %s does not match its record", day)
				continue
			}
			if want := activity.Classify(count); *cell.Bucket != want {
				result.add(ConflictBucketMismatch, day, "cell %s has bucket %d, want %d", day, *cell.Bucket, want)
			}
		}
	}

	return result
}

// ValidateStats checks summary figures against the dataset they describe
func (v *Validator) ValidateStats(ds models.ActivityDataset, s models.SummaryStats) ValidationResult {
	var result ValidationResult

	if s.Total != ds.Sum() {
		result.add(ConflictTotalMismatch, "", "stats total %d does not match record sum %d", s.Total, ds.Sum())
	}
	if s.CurrentStreak < 0 || s.CurrentStreak > s.LongestStreak {
		result.add(ConflictStreakOutOfBounds, "", "current streak %d exceeds longest streak %d", s.CurrentStreak, s.LongestStreak)
	}
	if s.LongestStreak < 0 || s.LongestStreak > ds.Len() {
		result.add(ConflictStreakOutOfBounds, "", "longest streak %d outside 0..%d", s.LongestStreak, ds.Len())
	}
	if ds.Len() > 0 {
		want, err := stats.DailyAverage(ds.Sum(), ds.Len())
		if err == nil && !want.Equal(s.DailyAverage) {
			result.add(ConflictAverageMismatch, "", "daily average %s, want %s", s.DailyAverageString(), want.StringFixed(stats.AveragePlaces))
		}
	}

	return result
}

// ValidateAll runs every check and merges the conflicts
func (v *Validator) ValidateAll(ds models.ActivityDataset, grid models.CalendarGrid, s models.SummaryStats) ValidationResult {
	var result ValidationResult
	result.Conflicts = append(result.Conflicts, v.ValidateDataset(ds).Conflicts...)
	result.Conflicts = append(result.Conflicts, v.ValidateGrid(ds, grid).Conflicts...)
	result.Conflicts = append(result.Conflicts, v.ValidateStats(ds, s).Conflicts...)
	return result
}

func formatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}
