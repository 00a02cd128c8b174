// Package widget runs one lookup: profile fetch, activity generation, layout and summary.
package widget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/ghpulse/internal/activity"
	"github.com/julianstephens/ghpulse/internal/calendar"
	"github.com/julianstephens/ghpulse/internal/errors"
	"github.com/julianstephens/ghpulse/internal/logger"
	"github.com/julianstephens/ghpulse/internal/models"
	"github.com/julianstephens/ghpulse/internal/stats"
)

// ProfileFetcher retrieves a public profile record by username
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, username string) (models.Profile, error)
}

// Result is everything one successful lookup renders
type Result struct {
	Profile   models.Profile         `json:"profile"`
	Dataset   models.ActivityDataset `json:"activity"`
	Grid      models.CalendarGrid    `json:"calendar"`
	Stats     models.SummaryStats    `json:"stats"`
	FetchedAt time.Time              `json:"fetched_at"`
}

type Service struct {
	Profiles ProfileFetcher
	Activity activity.Provider
	Now      func() time.Time
}

func New(profiles ProfileFetcher, provider activity.Provider) *Service {
	return &Service{
		Profiles: profiles,
		Activity: provider,
		Now:      time.Now,
	}
}

// NormalizeUsername trims raw input. ok is false when nothing is left.
func NormalizeUsername(raw string) (string, bool) {
	username := strings.TrimSpace(raw)
	return username, username != ""
}

// Lookup fetches the profile for raw and builds the activity panels.
// Blank input returns errors.ErrEmptyInput without touching the network.
func (s *Service) Lookup(ctx context.Context, raw string) (Result, error) {
	username, ok := NormalizeUsername(raw)
	if !ok {
		return Result{}, errors.ErrEmptyInput
	}

	now := s.Now()
	logger.Debug("Lookup started", "username", username)

	profile, err := s.Profiles.FetchProfile(ctx, username)
	if err != nil {
		logger.Warn("Profile lookup failed", "username", username, "error", err)
		return Result{}, err
	}

	from, to := activity.Window(now)
	ds, err := s.Activity.Dataset(ctx, from, to)
	if err != nil {
		return Result{}, fmt.Errorf("activity: %w", err)
	}

	grid, err := calendar.Build(ds)
	if err != nil {
		return Result{}, fmt.Errorf("calendar: %w", err)
	}

	summary, err := stats.Summarize(ds, now)
	if err != nil {
		return Result{}, fmt.Errorf("stats: %w", err)
	}

	logger.Debug("Lookup finished", "username", username, "records", ds.Len(), "total", summary.Total)

	return Result{
		Profile:   profile,
		Dataset:   ds,
		Grid:      grid,
		Stats:     summary,
		FetchedAt: now,
	}, nil
}

// FailureMessage renders err for display. Empty input has no message.
func FailureMessage(err error) string {
	if err == nil || errors.Is(err, errors.ErrEmptyInput) {
		return ""
	}
	return errors.LookupMessage(err)
}
