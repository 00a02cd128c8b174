package activity

import (
	"github.com/julianstephens/ghpulse/internal/constants"
	"github.com/julianstephens/ghpulse/internal/models"
)

// Classify maps a daily count to its intensity bucket.
// 0 → 0, 1-2 → 1, 3-4 → 2, 5-6 → 3, 7+ → 4. Negative counts are treated as 0.
func Classify(count int) models.Bucket {
	switch {
	case count <= 0:
		return models.BucketNone
	case count <= constants.BucketOneMax:
		return models.BucketLow
	case count <= constants.BucketTwoMax:
		return models.BucketMedium
	case count <= constants.BucketThreeMax:
		return models.BucketHigh
	default:
		return models.BucketMax
	}
}

// Color returns the palette entry for a bucket
func Color(b models.Bucket) string {
	if b < models.BucketNone || b > models.BucketMax {
		b = models.BucketNone
	}
	return constants.Palette[b]
}
