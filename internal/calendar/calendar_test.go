package calendar

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/julianstephens/ghpulse/internal/activity"
	"github.com/julianstephens/ghpulse/internal/errors"
	"github.com/julianstephens/ghpulse/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dataset(start time.Time, counts ...int) models.ActivityDataset {
	ds := models.ActivityDataset{}
	for i, c := range counts {
		ds.Records = append(ds.Records, models.ActivityRecord{Date: start.AddDate(0, 0, i), Count: c})
		ds.Total += c
	}
	return ds
}

func TestBuild_EmptyDataset(t *testing.T) {
	_, err := Build(models.ActivityDataset{})
	require.ErrorIs(t, err, errors.ErrEmptyDataset)
}

func TestBuild_WednesdayStart(t *testing.T) {
	// 2025-12-31 is a Wednesday
	start := date(2025, 12, 31)
	require.Equal(t, time.Wednesday, start.Weekday())

	grid, err := Build(dataset(start, 0, 1, 2, 3, 4, 5, 6, 7))
	require.NoError(t, err)

	// 3 leading placeholders + 8 data cells = 11 → 2 weeks
	require.Len(t, grid.Weeks, 2)
	require.Equal(t, date(2025, 12, 28), grid.Start)

	first := grid.Weeks[0]
	for i := 0; i < 3; i++ {
		require.True(t, first[i].IsPlaceholder(), "cell %d", i)
		require.Nil(t, first[i].Count)
		require.Nil(t, first[i].Bucket)
	}
	for i := 3; i < 7; i++ {
		require.False(t, first[i].IsPlaceholder(), "cell %d", i)
	}
	require.Equal(t, start, *first[3].Date)
	require.Equal(t, 0, *first[3].Count)

	second := grid.Weeks[1]
	for i := 0; i < 4; i++ {
		require.False(t, second[i].IsPlaceholder(), "cell %d", i)
	}
	for i := 4; i < 7; i++ {
		require.True(t, second[i].IsPlaceholder(), "cell %d", i)
	}
	require.Equal(t, 7, *second[3].Count)
	require.Equal(t, models.BucketMax, *second[3].Bucket)

	require.Equal(t, 8, grid.DataCells())
	require.Equal(t, 14, grid.CellCount())
}

func TestBuild_SingleRecord(t *testing.T) {
	// Thursday: 4 placeholders before, 2 after
	start := date(2026, 1, 1)
	grid, err := Build(dataset(start, 3))
	require.NoError(t, err)

	require.Len(t, grid.Weeks, 1)
	week := grid.Weeks[0]
	for i, cell := range week {
		if i == int(start.Weekday()) {
			require.False(t, cell.IsPlaceholder())
			require.Equal(t, models.BucketMedium, *cell.Bucket)
			continue
		}
		require.True(t, cell.IsPlaceholder(), "cell %d", i)
	}
}

func TestBuild_SundayStartSaturdayEnd(t *testing.T) {
	// 2026-01-04 is a Sunday; 14 days end on a Saturday
	grid, err := Build(dataset(date(2026, 1, 4), make([]int, 14)...))
	require.NoError(t, err)
	require.Len(t, grid.Weeks, 2)
	require.Equal(t, 14, grid.DataCells())
}

func TestBuild_FullYear(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	ds, err := activity.Generate(context.Background(), date(2026, 10, 19), rng)
	require.NoError(t, err)

	grid, err := Build(ds)
	require.NoError(t, err)

	lead := int(ds.First().Date.Weekday())
	wantWeeks := (ds.Len() + lead + 6) / 7
	require.Len(t, grid.Weeks, wantWeeks)
	require.Equal(t, ds.Len(), grid.DataCells())

	// every data cell carries the count of its date and the matching bucket
	byDay := make(map[string]int, ds.Len())
	for _, r := range ds.Records {
		byDay[r.Day()] = r.Count
	}
	for w, week := range grid.Weeks {
		require.Len(t, week, 7)
		for i, cell := range week {
			if cell.IsPlaceholder() {
				continue
			}
			require.Equal(t, grid.Start.AddDate(0, 0, w*7+i), *cell.Date)
			require.Equal(t, byDay[cell.Date.Format("2006-01-02")], *cell.Count)
			require.Equal(t, activity.Classify(*cell.Count), *cell.Bucket)
			require.Equal(t, time.Weekday(i), cell.Date.Weekday())
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	ds := dataset(date(2026, 2, 11), 0, 9, 1, 4, 0, 6, 2, 2, 3)
	a, err := Build(ds)
	require.NoError(t, err)
	b, err := Build(ds)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestMonthLabels(t *testing.T) {
	// Sunday 2025-12-28 through Saturday 2026-02-07
	grid, err := Build(dataset(date(2025, 12, 28), make([]int, 42)...))
	require.NoError(t, err)

	labels := MonthLabels(grid)
	require.Equal(t, []MonthLabel{
		{Week: 1, Label: "Jan"},
		{Week: 5, Label: "Feb"},
	}, labels)
}
