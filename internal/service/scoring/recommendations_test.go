package scoring

import (
	"testing"

	"creditscoring/internal/pkg/consts"
	storemodels "creditscoring/internal/pkg/store/models"
	"creditscoring/internal/service/history"

	"github.com/stretchr/testify/assert"
)

func TestRecommendationsTriggers(t *testing.T) {
	t.Run("weak customer triggers the matching actions, capped at six", func(t *testing.T) {
		bundle := newBundle(100) // young account
		bundle.Accounts = []storemodels.Account{newAccount(-100, 100)}
		bundle.Loans = []storemodels.Loan{newLoan(10000, consts.LoanStatusActive, 100)}
		// low repayment ratio, few transactions, low balance, few deposits

		recommendations := Recommendations(bundle, 420, testNow)

		assert.Len(t, recommendations, maxRecommendations)
		assert.Contains(t, recommendations,
			"Focus on making all loan payments on time to improve your payment history")
		assert.Contains(t, recommendations,
			"Increase your account activity with regular transactions")
	})

	t.Run("too many active loans triggers debt management advice", func(t *testing.T) {
		bundle := strongBundle()
		for i := 0; i < 4; i++ {
			bundle.Loans = append(bundle.Loans, newLoan(100, consts.LoanStatusActive, 100))
		}
		// keep the repayment ratio healthy
		bundle.Repayments = append(bundle.Repayments,
			newRepayment(400, consts.RepaymentStatusCompleted, 30))

		recommendations := Recommendations(bundle, 700, testNow)
		assert.Contains(t, recommendations,
			"Consider reducing the number of active loans for better debt management")
	})

	t.Run("overdraft triggers balance advice", func(t *testing.T) {
		bundle := strongBundle()
		bundle.Accounts = append(bundle.Accounts, newAccount(-50, 200))

		recommendations := Recommendations(bundle, 700, testNow)
		assert.Contains(t, recommendations,
			"Avoid overdrafts by maintaining positive account balances")
	})
}

func TestRecommendationsFallbackLists(t *testing.T) {
	t.Run("strong customer with high score gets the maintain list", func(t *testing.T) {
		recommendations := Recommendations(strongBundle(), 720, testNow)

		assert.Equal(t, []string{
			"Maintain your excellent financial habits",
			"Continue making timely payments",
			"Keep your account active with regular transactions",
			"Monitor your credit score regularly",
		}, recommendations)
	})

	t.Run("strong customer with a middling score gets the build list", func(t *testing.T) {
		recommendations := Recommendations(strongBundle(), 650, testNow)

		assert.Equal(t, []string{
			"Focus on building consistent financial habits",
			"Make regular deposits and maintain account activity",
			"Pay all loans on time",
			"Build your savings gradually",
		}, recommendations)
	})
}

// strongBundle is a customer with no weak category: healthy balance, plenty
// of activity and deposits, an old account and no loans.
func strongBundle() *history.Bundle {
	bundle := newBundle(400)
	bundle.Accounts = []storemodels.Account{newAccount(8000, 400)}
	for day := 0; day < 300; day += 10 {
		bundle.Transactions = append(bundle.Transactions,
			newTransaction(consts.TransactionDeposit, 500, day))
	}
	return bundle
}
