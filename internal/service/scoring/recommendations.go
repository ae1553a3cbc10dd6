package scoring

import (
	"math"
	"time"

	"creditscoring/internal/pkg/consts"
	"creditscoring/internal/service/history"
)

const maxRecommendations = 6

// Recommendations produces ranked, plain-language improvement actions for
// whichever categories fall below their "good" thresholds. Customers with no
// weak category get a fixed maintain-or-build list depending on their score.
func Recommendations(bundle *history.Bundle, finalScore int, now time.Time) []string {
	var recommendations []string

	if len(bundle.Loans) > 0 {
		total := totalLoanAmount(bundle.Loans)
		repaid := completedRepaymentAmount(bundle.Repayments)
		ratio := repaid / math.Max(total, 1)

		if ratio < 0.8 {
			recommendations = append(recommendations,
				"Focus on making all loan payments on time to improve your payment history",
				"Consider setting up automatic payments to avoid missing due dates")
		}
	}

	if len(bundle.Transactions) < 20 {
		recommendations = append(recommendations,
			"Increase your account activity with regular transactions",
			"Use your account for daily financial activities to build transaction history")
	}

	if totalBalance(bundle.Accounts) < 5000 {
		recommendations = append(recommendations,
			"Build your savings to demonstrate financial stability",
			"Maintain a higher account balance to improve your credit profile")
	}

	if len(depositTransactions(bundle.Transactions)) < 10 {
		recommendations = append(recommendations,
			"Make regular deposits to show consistent income and savings behavior")
	}

	if countLoansByStatus(bundle.Loans, consts.LoanStatusActive) > 3 {
		recommendations = append(recommendations,
			"Consider reducing the number of active loans for better debt management")
	}

	if !bundle.Customer.CreatedAt.IsZero() && daysBetween(bundle.Customer.CreatedAt, now) < 180 {
		recommendations = append(recommendations,
			"Continue building your credit history over time")
	}

	if negativeBalanceAccounts(bundle.Accounts) > 0 {
		recommendations = append(recommendations,
			"Avoid overdrafts by maintaining positive account balances")
	}

	if len(recommendations) == 0 {
		if finalScore >= 700 {
			recommendations = []string{
				"Maintain your excellent financial habits",
				"Continue making timely payments",
				"Keep your account active with regular transactions",
				"Monitor your credit score regularly",
			}
		} else {
			recommendations = []string{
				"Focus on building consistent financial habits",
				"Make regular deposits and maintain account activity",
				"Pay all loans on time",
				"Build your savings gradually",
			}
		}
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	return recommendations
}
