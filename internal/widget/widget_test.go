package widget

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/julianstephens/ghpulse/internal/activity"
	"github.com/julianstephens/ghpulse/internal/errors"
	"github.com/julianstephens/ghpulse/internal/github"
	"github.com/julianstephens/ghpulse/internal/models"
)

type stubFetcher struct {
	profile models.Profile
	err     error
	calls   []string
}

func (s *stubFetcher) FetchProfile(_ context.Context, username string) (models.Profile, error) {
	s.calls = append(s.calls, username)
	if s.err != nil {
		return models.Profile{}, s.err
	}
	p := s.profile
	p.Login = username
	return p, nil
}

var fixedNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func newService(f *stubFetcher) *Service {
	svc := New(f, activity.NewRandomProvider(rand.New(rand.NewPCG(1, 2))))
	svc.Now = func() time.Time { return fixedNow }
	return svc
}

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"octocat", "octocat", true},
		{"  octocat \n", "octocat", true},
		{"", "", false},
		{"   \t", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeUsername(tt.raw)
		require.Equal(t, tt.want, got)
		require.Equal(t, tt.wantOK, ok)
	}
}

func TestLookup_EmptyInputSkipsFetch(t *testing.T) {
	f := &stubFetcher{}
	_, err := newService(f).Lookup(context.Background(), "   ")
	require.ErrorIs(t, err, errors.ErrEmptyInput)
	require.Empty(t, f.calls)
	require.Equal(t, "", FailureMessage(err))
}

func TestLookup_Success(t *testing.T) {
	f := &stubFetcher{}
	res, err := newService(f).Lookup(context.Background(), " octocat ")
	require.NoError(t, err)

	require.Equal(t, []string{"octocat"}, f.calls)
	require.Equal(t, "octocat", res.Profile.Login)
	require.Equal(t, 366, res.Dataset.Len())
	require.Equal(t, res.Dataset.Len(), res.Grid.DataCells())
	require.Equal(t, res.Dataset.Total, res.Stats.Total)
	require.Equal(t, fixedNow, res.FetchedAt)
	require.Equal(t, models.TruncateDay(fixedNow), res.Dataset.Last().Date)
}

func TestLookup_ProfileFailure(t *testing.T) {
	f := &stubFetcher{err: &github.LookupError{Username: "nobody", StatusCode: 404}}
	_, err := newService(f).Lookup(context.Background(), "nobody")

	var lookupErr *github.LookupError
	require.True(t, errors.As(err, &lookupErr))
	require.Equal(t,
		"Error: User not found or API rate limit exceeded. Please check the username and try again.",
		FailureMessage(err))
}

func TestLookup_ProviderFailure(t *testing.T) {
	svc := newService(&stubFetcher{})
	svc.Activity = activity.ProviderFunc(func(context.Context, time.Time, time.Time) (models.ActivityDataset, error) {
		return models.ActivityDataset{}, nil
	})

	_, err := svc.Lookup(context.Background(), "octocat")
	require.ErrorIs(t, err, errors.ErrEmptyDataset)
}
