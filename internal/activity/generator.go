package activity

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/julianstephens/ghpulse/internal/constants"
	"github.com/julianstephens/ghpulse/internal/errors"
	"github.com/julianstephens/ghpulse/internal/models"
)

// RandomProvider generates synthetic activity. Each day is drawn
// independently from a fixed distribution skewed towards quiet days.
type RandomProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomProvider returns a provider drawing from rng. A nil rng uses a
// randomly seeded source. Safe for concurrent use.
func NewRandomProvider(rng *rand.Rand) *RandomProvider {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomProvider{rng: rng}
}

func (p *RandomProvider) Dataset(ctx context.Context, from, to time.Time) (models.ActivityDataset, error) {
	from = models.TruncateDay(from)
	to = models.TruncateDay(to)
	if to.Before(from) {
		return models.ActivityDataset{}, fmt.Errorf("%w: %s is after %s", errors.ErrInvalidRange,
			from.Format(constants.DateFormat), to.Format(constants.DateFormat))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	records := make([]models.ActivityRecord, 0, models.DaysBetween(from, to)+1)
	total := 0
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return models.ActivityDataset{}, err
		}
		count := p.drawCount()
		records = append(records, models.ActivityRecord{Date: day, Count: count})
		total += count
	}

	return models.ActivityDataset{Records: records, Total: total}, nil
}

func (p *RandomProvider) drawCount() int {
	r := p.rng.Float64()
	switch {
	case r < constants.ActivityProbZero:
		return 0
	case r < constants.ActivityProbOne:
		return 1
	case r < constants.ActivityProbTwo:
		return 2
	case r < constants.ActivityProbThree:
		return 3
	case r < constants.ActivityProbFour:
		return 4
	default:
		return constants.ActivityBurstMin + p.rng.IntN(constants.ActivityBurstMax-constants.ActivityBurstMin+1)
	}
}

// Generate builds a synthetic dataset for the year ending on today
func Generate(ctx context.Context, today time.Time, rng *rand.Rand) (models.ActivityDataset, error) {
	from, to := Window(today)
	return NewRandomProvider(rng).Dataset(ctx, from, to)
}
