package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/ghpulse/internal/constants"
)

// Bucket is the ordinal intensity class of a day, used as a palette index
type Bucket int

const (
	BucketNone Bucket = iota
	BucketLow
	BucketMedium
	BucketHigh
	BucketMax
)

// BucketCount is the number of intensity levels
const BucketCount = int(BucketMax) + 1

// CalendarCell is either a data cell (all fields set) or a placeholder (all nil)
type CalendarCell struct {
	Date   *time.Time `json:"date,omitempty"`
	Count  *int       `json:"count,omitempty"`
	Bucket *Bucket    `json:"bucket,omitempty"`
}

func (c CalendarCell) IsPlaceholder() bool {
	return c.Date == nil
}

type cellJSON struct {
	Date   string  `json:"date,omitempty"`
	Count  *int    `json:"count,omitempty"`
	Bucket *Bucket `json:"bucket,omitempty"`
}

// MarshalJSON writes the date in the same day format as ActivityRecord.
// Placeholders encode as {}.
func (c CalendarCell) MarshalJSON() ([]byte, error) {
	raw := cellJSON{Count: c.Count, Bucket: c.Bucket}
	if c.Date != nil {
		raw.Date = c.Date.Format(constants.DateFormat)
	}
	return json.Marshal(raw)
}

func (c *CalendarCell) UnmarshalJSON(data []byte) error {
	var raw cellJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = CalendarCell{Count: raw.Count, Bucket: raw.Bucket}
	if raw.Date == "" {
		return nil
	}
	d, err := time.Parse(constants.DateFormat, raw.Date)
	if err != nil {
		return fmt.Errorf("invalid cell date %q: %w", raw.Date, err)
	}
	c.Date = &d
	return nil
}

// Week is one grid column ordered Sunday..Saturday
type Week [constants.DaysPerWeek]CalendarCell

// CalendarGrid is a week-major calendar layout
type CalendarGrid struct {
	Start time.Time `json:"start"` // Sunday of the first column
	Weeks []Week    `json:"weeks"`
}

func (g CalendarGrid) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start string `json:"start"`
		Weeks []Week `json:"weeks"`
	}{
		Start: g.Start.Format(constants.DateFormat),
		Weeks: g.Weeks,
	})
}

func (g *CalendarGrid) UnmarshalJSON(data []byte) error {
	var raw struct {
		Start string `json:"start"`
		Weeks []Week `json:"weeks"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := time.Parse(constants.DateFormat, raw.Start)
	if err != nil {
		return fmt.Errorf("invalid grid start %q: %w", raw.Start, err)
	}
	g.Start = start
	g.Weeks = raw.Weeks
	return nil
}

func (g CalendarGrid) CellCount() int {
	return len(g.Weeks) * constants.DaysPerWeek
}

// DataCells counts the non-placeholder cells
func (g CalendarGrid) DataCells() int {
	n := 0
	for _, w := range g.Weeks {
		for _, c := range w {
			if !c.IsPlaceholder() {
				n++
			}
		}
	}
	return n
}

// SummaryStats holds the aggregate figures shown beside the calendar
type SummaryStats struct {
	Total         int             `json:"total"`
	LongestStreak int             `json:"longest_streak"`
	CurrentStreak int             `json:"current_streak"`
	DailyAverage  decimal.Decimal `json:"daily_average"`
}

// DailyAverageString renders the average with exactly one fractional digit
func (s SummaryStats) DailyAverageString() string {
	return s.DailyAverage.StringFixed(1)
}
