package activity

import (
	"context"
	"time"

	"github.com/julianstephens/ghpulse/internal/models"
)

// Provider produces one record per day for the closed range [from, to]
type Provider interface {
	Dataset(ctx context.Context, from, to time.Time) (models.ActivityDataset, error)
}

// ProviderFunc adapts a plain function to the Provider interface
type ProviderFunc func(ctx context.Context, from, to time.Time) (models.ActivityDataset, error)

func (f ProviderFunc) Dataset(ctx context.Context, from, to time.Time) (models.ActivityDataset, error) {
	return f(ctx, from, to)
}

// Window returns the trailing one-year range ending on today, both ends inclusive
func Window(today time.Time) (from, to time.Time) {
	to = models.TruncateDay(today)
	from = to.AddDate(-1, 0, 0)
	return from, to
}
