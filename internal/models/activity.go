package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/ghpulse/internal/constants"
)

// ActivityRecord represents a single day's activity count
type ActivityRecord struct {
	Date  time.Time `json:"date"` // midnight UTC, day precision
	Count int       `json:"count"`
}

// Day returns the record date in YYYY-MM-DD format
func (r ActivityRecord) Day() string {
	return r.Date.Format(constants.DateFormat)
}

func (r ActivityRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date  string `json:"date"`
		Count int    `json:"count"`
	}{
		Date:  r.Day(),
		Count: r.Count,
	})
}

func (r *ActivityRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		Date  string `json:"date"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d, err := time.Parse(constants.DateFormat, raw.Date)
	if err != nil {
		return fmt.Errorf("invalid record date %q: %w", raw.Date, err)
	}
	r.Date = d
	r.Count = raw.Count
	return nil
}

// ActivityDataset is an ascending, gap-free run of daily records
type ActivityDataset struct {
	Records []ActivityRecord `json:"contributions"`
	Total   int              `json:"total"`
}

func (d ActivityDataset) Len() int {
	return len(d.Records)
}

func (d ActivityDataset) First() ActivityRecord {
	return d.Records[0]
}

func (d ActivityDataset) Last() ActivityRecord {
	return d.Records[len(d.Records)-1]
}

// Sum recomputes the total from the records
func (d ActivityDataset) Sum() int {
	sum := 0
	for _, r := range d.Records {
		sum += r.Count
	}
	return sum
}

// Validate checks ordering, contiguity, non-negative counts and the total.
// An empty dataset is valid here; consumers that need records reject it themselves.
func (d ActivityDataset) Validate() error {
	for i, r := range d.Records {
		if r.Count < 0 {
			return fmt.Errorf("record %s has negative count %d", r.Day(), r.Count)
		}
		if i == 0 {
			continue
		}
		want := d.Records[i-1].Date.AddDate(0, 0, 1)
		if !r.Date.Equal(want) {
			return fmt.Errorf("record %d: expected %s, got %s", i, want.Format(constants.DateFormat), r.Day())
		}
	}
	if sum := d.Sum(); sum != d.Total {
		return fmt.Errorf("total %d does not match record sum %d", d.Total, sum)
	}
	return nil
}

// TruncateDay returns t's calendar date at midnight UTC.
// The wall-clock date in t's own location is kept.
func TruncateDay(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b (b - a).
func DaysBetween(a, b time.Time) int {
	return int(TruncateDay(b).Sub(TruncateDay(a)).Hours() / 24)
}
