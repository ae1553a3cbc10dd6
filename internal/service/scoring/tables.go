package scoring

import "creditscoring/internal/pkg/consts"

// thresholdEntry pairs a minimum value with the result it selects. Tables are
// ordered highest threshold first and resolved by the first threshold met.
type thresholdEntry[T any] struct {
	Threshold float64
	Value     T
}

// lookupThreshold returns the value of the first entry whose threshold the
// input meets, or the fallback when none match.
func lookupThreshold[T any](table []thresholdEntry[T], input float64, fallback T) T {
	for _, entry := range table {
		if input >= entry.Threshold {
			return entry.Value
		}
	}
	return fallback
}

// Weights holds the relative importance of each factor. The six weights must
// sum to 1.0 exactly.
type Weights struct {
	PaymentHistory      float64
	AccountAge          float64
	TransactionPatterns float64
	DepositBehavior     float64
	LoanManagement      float64
	FinancialStability  float64
}

func (w Weights) Sum() float64 {
	return w.PaymentHistory + w.AccountAge + w.TransactionPatterns +
		w.DepositBehavior + w.LoanManagement + w.FinancialStability
}

// DefaultWeights is the standard policy weighting, dominated by payment history.
func DefaultWeights() Weights {
	return Weights{
		PaymentHistory:      0.35,
		AccountAge:          0.15,
		TransactionPatterns: 0.20,
		DepositBehavior:     0.15,
		LoanManagement:      0.10,
		FinancialStability:  0.05,
	}
}

// ratingBands maps final scores to qualitative bands. Bands are contiguous and
// exhaustive over [300, 850]: every integer score maps to exactly one band.
var ratingBands = []thresholdEntry[string]{
	{Threshold: 750, Value: consts.RatingExcellent},
	{Threshold: 700, Value: consts.RatingVeryGood},
	{Threshold: 650, Value: consts.RatingGood},
	{Threshold: 600, Value: consts.RatingFair},
	{Threshold: 550, Value: consts.RatingPoor},
}

// RatingFor classifies a final score into its rating band.
func RatingFor(score int) string {
	return lookupThreshold(ratingBands, float64(score), consts.RatingVeryPoor)
}

// accountAgeBands maps account age in days to a sub-score.
var accountAgeBands = []thresholdEntry[float64]{
	{Threshold: 1095, Value: 800},
	{Threshold: 730, Value: 750},
	{Threshold: 365, Value: 700},
	{Threshold: 180, Value: 650},
	{Threshold: 90, Value: 600},
}

// loanLimitMultipliers maps final score to the advisory loan-limit multiplier.
var loanLimitMultipliers = []thresholdEntry[float64]{
	{Threshold: 750, Value: 5.0},
	{Threshold: 700, Value: 4.0},
	{Threshold: 650, Value: 3.0},
	{Threshold: 600, Value: 2.0},
}

// loanLimitCaps bounds the advisory loan limit per score band.
var loanLimitCaps = []thresholdEntry[float64]{
	{Threshold: 750, Value: 100000},
	{Threshold: 700, Value: 75000},
	{Threshold: 650, Value: 50000},
	{Threshold: 600, Value: 25000},
}

// riskLevelEntry pairs a risk level with its fixed description.
type riskLevelEntry struct {
	Level       string
	Description string
}

var riskLevels = []thresholdEntry[riskLevelEntry]{
	{Threshold: 750, Value: riskLevelEntry{consts.RiskVeryLow, "Excellent creditworthiness with very low default risk"}},
	{Threshold: 700, Value: riskLevelEntry{consts.RiskLow, "Good creditworthiness with low default risk"}},
	{Threshold: 650, Value: riskLevelEntry{consts.RiskModerate, "Fair creditworthiness with moderate risk"}},
	{Threshold: 600, Value: riskLevelEntry{consts.RiskHigh, "Below average creditworthiness with high risk"}},
}

var riskLevelFallback = riskLevelEntry{consts.RiskVeryHigh, "Poor creditworthiness with very high default risk"}

// eligibilityTier is one row of the loan-eligibility decision table, keyed by
// the same score thresholds used across the rating and risk policies. The
// thresholds coincide today but are separate policies on purpose.
type eligibilityTier struct {
	Status              string
	MaxAmount           float64
	InterestMin         int
	InterestMax         int
	ApprovalProbability int
}

var eligibilityTiers = []thresholdEntry[eligibilityTier]{
	{Threshold: 750, Value: eligibilityTier{consts.RatingExcellent, 100000, 8, 12, 95}},
	{Threshold: 700, Value: eligibilityTier{consts.RatingVeryGood, 75000, 10, 15, 85}},
	{Threshold: 650, Value: eligibilityTier{consts.RatingGood, 50000, 12, 18, 70}},
	{Threshold: 600, Value: eligibilityTier{consts.RatingFair, 25000, 15, 22, 50}},
	{Threshold: 550, Value: eligibilityTier{consts.RatingPoor, 10000, 18, 25, 30}},
}

var eligibilityTierFallback = eligibilityTier{consts.RatingVeryPoor, 5000, 22, 30, 15}

// percentileBands is a simplified population-percentile lookup.
var percentileBands = []thresholdEntry[int]{
	{Threshold: 750, Value: 90},
	{Threshold: 700, Value: 75},
	{Threshold: 650, Value: 60},
	{Threshold: 600, Value: 40},
	{Threshold: 550, Value: 25},
}

const percentileFallback = 10
