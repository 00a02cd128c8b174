package constants

// Cumulative probabilities for the synthetic daily count distribution.
// A draw below ActivityProbZero yields 0, below ActivityProbOne yields 1, and so on.
// Draws at or above ActivityProbFour yield a uniform count in [ActivityBurstMin, ActivityBurstMax].
const (
	ActivityProbZero  = 0.50
	ActivityProbOne   = 0.70
	ActivityProbTwo   = 0.85
	ActivityProbThree = 0.93
	ActivityProbFour  = 0.97

	ActivityBurstMin = 5
	ActivityBurstMax = 15
)

// Upper bounds (inclusive) of buckets 1..3. Anything above BucketThreeMax lands in bucket 4.
const (
	BucketOneMax   = 2
	BucketTwoMax   = 4
	BucketThreeMax = 6
)

// Palette holds one color per intensity bucket, index 0..4.
var Palette = [5]string{
	"#161b22", // 0 contributions
	"#0e4429", // 1-2 contributions
	"#006d32", // 3-4 contributions
	"#26a641", // 5-6 contributions
	"#39d353", // 7+ contributions
}
