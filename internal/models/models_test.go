package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestActivityRecord_JSON(t *testing.T) {
	r := ActivityRecord{Date: date(2026, 1, 1), Count: 4}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-01-01","count":4}`, string(data))

	var back ActivityRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Date.Equal(r.Date))
	assert.Equal(t, 4, back.Count)

	require.Error(t, json.Unmarshal([]byte(`{"date":"01/01/2026","count":1}`), &back))
}

func TestActivityDataset_Validate(t *testing.T) {
	ds := ActivityDataset{
		Records: []ActivityRecord{
			{Date: date(2026, 2, 27), Count: 1},
			{Date: date(2026, 2, 28), Count: 0},
			{Date: date(2026, 3, 1), Count: 5},
		},
		Total: 6,
	}
	require.NoError(t, ds.Validate())
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, "2026-02-27", ds.First().Day())
	assert.Equal(t, "2026-03-01", ds.Last().Day())

	gap := ds
	gap.Records = []ActivityRecord{ds.Records[0], ds.Records[2]}
	gap.Total = 6
	assert.Error(t, gap.Validate())

	wrongTotal := ds
	wrongTotal.Total = 7
	assert.Error(t, wrongTotal.Validate())

	assert.NoError(t, ActivityDataset{}.Validate())
}

func TestTruncateDay_KeepsLocalDate(t *testing.T) {
	loc := time.FixedZone("UTC-10", -10*60*60)
	late := time.Date(2026, 10, 19, 23, 30, 0, 0, loc)
	assert.True(t, TruncateDay(late).Equal(date(2026, 10, 19)))
	assert.Equal(t, 366, DaysBetween(date(2025, 10, 19), date(2026, 10, 20)))
}

func TestProfile_Fallbacks(t *testing.T) {
	p := Profile{Login: "octocat"}
	assert.Equal(t, "octocat", p.DisplayName())
	assert.Equal(t, "No bio available", p.BioText())
	assert.Equal(t, 0, p.Gists())
	assert.Equal(t, "@octocat", p.Handle())

	name, bio, gists := "The Octocat", "hello", 8
	p.Name, p.Bio, p.PublicGists = &name, &bio, &gists
	assert.Equal(t, "The Octocat", p.DisplayName())
	assert.Equal(t, "hello", p.BioText())
	assert.Equal(t, 8, p.Gists())

	blank := "  "
	p.Name = &blank
	assert.Equal(t, "octocat", p.DisplayName())
}

func TestCalendarGrid_Counts(t *testing.T) {
	d := date(2026, 1, 1)
	c, b := 3, BucketMedium
	var w Week
	w[4] = CalendarCell{Date: &d, Count: &c, Bucket: &b}
	g := CalendarGrid{Start: date(2025, 12, 28), Weeks: []Week{w}}

	assert.Equal(t, 7, g.CellCount())
	assert.Equal(t, 1, g.DataCells())
	assert.True(t, w[0].IsPlaceholder())
	assert.False(t, w[4].IsPlaceholder())
	assert.Equal(t, 5, BucketCount)
}

func TestSummaryStats_DailyAverageString(t *testing.T) {
	s := SummaryStats{DailyAverage: decimal.NewFromInt(3)}
	assert.Equal(t, "3.0", s.DailyAverageString())
}

func TestCalendarGrid_JSONUsesDayFormat(t *testing.T) {
	d := date(2026, 1, 1)
	c, b := 3, BucketMedium
	var w Week
	w[4] = CalendarCell{Date: &d, Count: &c, Bucket: &b}
	g := CalendarGrid{Start: date(2025, 12, 28), Weeks: []Week{w}}

	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"start":"2025-12-28"`)
	assert.Contains(t, string(data), `{"date":"2026-01-01","count":3,"bucket":2}`)
	assert.Contains(t, string(data), `[{},{},{},{},`)
	assert.NotContains(t, string(data), "T00:00:00Z")

	var back CalendarGrid
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Start.Equal(g.Start))
	require.Len(t, back.Weeks, 1)
	assert.True(t, back.Weeks[0][0].IsPlaceholder())
	require.False(t, back.Weeks[0][4].IsPlaceholder())
	assert.True(t, back.Weeks[0][4].Date.Equal(d))
	assert.Equal(t, 3, *back.Weeks[0][4].Count)
	assert.Equal(t, BucketMedium, *back.Weeks[0][4].Bucket)

	require.Error(t, json.Unmarshal([]byte(`{"date":"Jan 1"}`), &back.Weeks[0][0]))
}
