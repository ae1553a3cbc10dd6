package scoring

import (
	"fmt"
	"math"
	"time"

	"creditscoring/internal/pkg/models"
	"creditscoring/internal/service/history"
)

// AssessRisk derives the qualitative risk level from the final score, plus
// concrete risk factors observed in the history. Risk factors accumulate; they
// are not mutually exclusive.
func AssessRisk(bundle *history.Bundle, finalScore int, now time.Time) models.RiskAssessment {
	level := lookupThreshold(riskLevels, float64(finalScore), riskLevelFallback)

	var riskFactors []string

	if overdue := overdueLoans(bundle.Loans, now); len(overdue) > 0 {
		riskFactors = append(riskFactors, fmt.Sprintf("%d overdue loan(s)", len(overdue)))
	}

	if negative := negativeBalanceAccounts(bundle.Accounts); negative > 0 {
		riskFactors = append(riskFactors, fmt.Sprintf("%d account(s) with negative balance", negative))
	}

	totalDeposits := sumAmounts(depositTransactions(bundle.Transactions))
	if totalDeposits > 0 && totalLoanAmount(bundle.Loans)/totalDeposits > 0.8 {
		riskFactors = append(riskFactors, "High loan-to-deposit ratio")
	}

	return models.RiskAssessment{
		RiskLevel:            level.Level,
		RiskDescription:      level.Description,
		RiskFactors:          riskFactors,
		RecommendedLoanLimit: RecommendedLoanLimit(bundle, finalScore, now),
	}
}

// RecommendedLoanLimit is the advisory ceiling on future loan principal: the
// larger of a balance-based and a deposit-income-based estimate, scaled by the
// score-band multiplier and capped by the score-band ceiling.
func RecommendedLoanLimit(bundle *history.Bundle, finalScore int, now time.Time) float64 {
	multiplier := lookupThreshold(loanLimitMultipliers, float64(finalScore), 1.0)

	deposits := depositTransactions(bundle.Transactions)
	var monthlyDeposits float64
	if len(deposits) > 0 {
		total := sumAmounts(deposits)
		monthsActive := math.Max(1, daysBetween(oldestTransactionTime(deposits), now)/30)
		monthlyDeposits = total / monthsActive
	}

	balanceBased := totalBalance(bundle.Accounts) * multiplier
	incomeBased := monthlyDeposits * 6 * multiplier

	limit := math.Max(balanceBased, incomeBased)

	ceiling := lookupThreshold(loanLimitCaps, float64(finalScore), 10000)
	return math.Min(limit, ceiling)
}
