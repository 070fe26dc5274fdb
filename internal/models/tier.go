package models

// SpendingTier classifies overall spending health, ordered from most to least severe
type SpendingTier string

const (
	SpendingTierCritical SpendingTier = "critical"
	SpendingTierHigh     SpendingTier = "high"
	SpendingTierModerate SpendingTier = "moderate"
	SpendingTierLow      SpendingTier = "low"
)

// Severity returns a rank where a larger value is more severe
func (t SpendingTier) Severity() int {
	switch t {
	case SpendingTierCritical:
		return 3
	case SpendingTierHigh:
		return 2
	case SpendingTierModerate:
		return 1
	default:
		return 0
	}
}

// IncomeTier buckets monthly income
type IncomeTier string

const (
	IncomeTierLow      IncomeTier = "LOW"
	IncomeTierMedium   IncomeTier = "MEDIUM"
	IncomeTierHigh     IncomeTier = "HIGH"
	IncomeTierVeryHigh IncomeTier = "VERY_HIGH"
)

// SpendingBucket is the three-way spending classification used for investment advice
type SpendingBucket string

const (
	SpendingBucketHigh     SpendingBucket = "HIGH_SPENDING"
	SpendingBucketModerate SpendingBucket = "MODERATE_SPENDING"
	SpendingBucketLow      SpendingBucket = "LOW_SPENDING"
)

// FindingSeverity describes how far a category's spend sits from its guideline
type FindingSeverity string

const (
	FindingSignificantlyOver FindingSeverity = "significantly_over"
	FindingSlightlyOver      FindingSeverity = "slightly_over"
	FindingWithinRange       FindingSeverity = "within_range"
)
