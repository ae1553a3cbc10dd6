package scoring

import (
	"math"
	"time"

	"creditscoring/internal/pkg/models"
	"creditscoring/internal/service/history"
)

// FactorScores holds the six raw sub-scores before weighting.
type FactorScores struct {
	PaymentHistory      float64
	AccountAge          float64
	TransactionPatterns float64
	DepositBehavior     float64
	LoanManagement      float64
	FinancialStability  float64
}

// CalculateFactorScores runs all six calculators over the bundle.
func CalculateFactorScores(bundle *history.Bundle, now time.Time) FactorScores {
	return FactorScores{
		PaymentHistory:      PaymentHistoryScore(bundle, now),
		AccountAge:          AccountAgeScore(bundle, now),
		TransactionPatterns: TransactionPatternScore(bundle, now),
		DepositBehavior:     DepositBehaviorScore(bundle, now),
		LoanManagement:      LoanManagementScore(bundle),
		FinancialStability:  FinancialStabilityScore(bundle),
	}
}

// Aggregate combines the sub-scores into the weighted final score and its
// per-factor breakdown. The breakdown contributions sum to the final score
// within rounding tolerance.
func Aggregate(scores FactorScores, weights Weights) (int, models.ScoreBreakdown) {
	weighted := scores.PaymentHistory*weights.PaymentHistory +
		scores.AccountAge*weights.AccountAge +
		scores.TransactionPatterns*weights.TransactionPatterns +
		scores.DepositBehavior*weights.DepositBehavior +
		scores.LoanManagement*weights.LoanManagement +
		scores.FinancialStability*weights.FinancialStability

	finalScore := int(math.Round(clampScore(weighted)))

	breakdown := models.ScoreBreakdown{
		PaymentHistory:      factorEntry(scores.PaymentHistory, weights.PaymentHistory),
		AccountAge:          factorEntry(scores.AccountAge, weights.AccountAge),
		TransactionPatterns: factorEntry(scores.TransactionPatterns, weights.TransactionPatterns),
		DepositBehavior:     factorEntry(scores.DepositBehavior, weights.DepositBehavior),
		LoanManagement:      factorEntry(scores.LoanManagement, weights.LoanManagement),
		FinancialStability:  factorEntry(scores.FinancialStability, weights.FinancialStability),
	}

	return finalScore, breakdown
}

func factorEntry(score, weight float64) models.FactorScore {
	return models.FactorScore{
		Score:        int(math.Round(score)),
		Weight:       weight,
		Contribution: int(math.Round(score * weight)),
	}
}
