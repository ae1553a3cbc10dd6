package scoring

import (
	"math"
	"sort"
	"time"

	"creditscoring/internal/pkg/consts"
	"creditscoring/internal/pkg/store/models"
	"creditscoring/internal/service/history"
)

// The six factor calculators. Each is a pure function of the bundle and the
// evaluation time, returning a sub-score clamped to [300, 850]. A failure mode
// in one factor never affects another; degenerate denominators are
// special-cased before any division.

// PaymentHistoryScore is the dominant factor. Having no loans at all is
// neutral rather than bad.
func PaymentHistoryScore(bundle *history.Bundle, now time.Time) float64 {
	if len(bundle.Loans) == 0 {
		return 750
	}

	ratio := repaymentRatio(bundle)

	repaymentTx := loanRepaymentTransactions(bundle.Transactions)
	consistency := timingConsistency(transactionTimes(repaymentTx))

	overdueCount := len(overdueLoans(bundle.Loans, now))

	var recentPayments int
	for _, t := range repaymentTx {
		if daysBetween(t.CreatedAt, now) <= 30 {
			recentPayments++
		}
	}

	base := 300.0
	base += ratio * 300
	base += consistency * 150
	base -= float64(overdueCount) * 50
	base += math.Min(50, float64(recentPayments)*10)

	return clampScore(base)
}

// AccountAgeScore steps on the length of the customer relationship.
func AccountAgeScore(bundle *history.Bundle, now time.Time) float64 {
	days := accountAgeDays(bundle, now)
	return lookupThreshold(accountAgeBands, days, 550)
}

// TransactionPatternScore rewards frequent, diverse and regular activity.
func TransactionPatternScore(bundle *history.Bundle, now time.Time) float64 {
	transactions := bundle.Transactions
	if len(transactions) == 0 {
		return 400
	}

	daysActive := math.Max(1, daysBetween(oldestTransactionTime(transactions), now))
	monthlyFrequency := float64(len(transactions)) / daysActive * 30

	types := make(map[string]struct{})
	for _, t := range transactions {
		types[string(t.Type)] = struct{}{}
	}

	avgAmount := sumAbsAmounts(transactions) / float64(len(transactions))

	regularity := monthlyRegularity(transactionTimes(transactions))

	base := 300.0
	base += math.Min(200, monthlyFrequency*10)
	base += math.Min(100, float64(len(types))*20)
	base += regularity * 150
	if avgAmount > 1000 {
		base += math.Min(100, avgAmount/1000*20)
	}

	return clampScore(base)
}

// DepositBehaviorScore measures savings habits from deposit/credit inflows.
func DepositBehaviorScore(bundle *history.Bundle, now time.Time) float64 {
	deposits := depositTransactions(bundle.Transactions)
	if len(deposits) == 0 {
		return 400
	}

	total := sumAmounts(deposits)

	daysActive := math.Max(1, daysBetween(oldestTransactionTime(deposits), now))
	monthlyFrequency := float64(len(deposits)) / daysActive * 30

	consistency := depositConsistency(deposits)

	balance := totalBalance(bundle.Accounts)

	base := 300.0
	base += math.Min(200, total/10000*100)
	base += math.Min(150, monthlyFrequency*30)
	base += consistency * 100
	base += math.Min(100, balance/5000*50)

	return clampScore(base)
}

// depositConsistency averages amount-consistency and timing-consistency of
// the deposit stream.
func depositConsistency(deposits []models.Transaction) float64 {
	if len(deposits) < 2 {
		return 0.3
	}

	amounts := make([]float64, 0, len(deposits))
	for _, d := range deposits {
		amounts = append(amounts, d.Amount)
	}

	amountConsistency := valueConsistency(amounts)
	timing := timingConsistency(transactionTimes(deposits))

	return (amountConsistency + timing) / 2
}

// LoanManagementScore reflects how the customer handles their loan book.
func LoanManagementScore(bundle *history.Bundle) float64 {
	loans := bundle.Loans
	if len(loans) == 0 {
		return 750
	}

	activeCount := countLoansByStatus(loans, consts.LoanStatusActive)
	repaidCount := countLoansByStatus(loans, consts.LoanStatusRepaid)
	rejectedCount := countLoansByStatus(loans, consts.LoanStatusRejected)

	base := 500.0
	base += float64(repaidCount) / float64(len(loans)) * 200

	switch {
	case activeCount <= 2:
		base += 100
	case activeCount <= 4:
		base += 50
	default:
		base -= 50
	}

	base += math.Min(100, float64(completedRepaymentCount(bundle.Repayments))*20)
	base -= float64(rejectedCount) * 30

	return clampScore(base)
}

// FinancialStabilityScore looks at balance volatility, overdraft usage and
// withdrawal-to-deposit utilization.
func FinancialStabilityScore(bundle *history.Bundle) float64 {
	accounts := bundle.Accounts
	transactions := bundle.Transactions

	balance := totalBalance(accounts)
	volatility := stdDev(reconstructBalanceHistory(transactions, balance))

	overdraftRatio := float64(negativeBalanceAccounts(accounts)) / math.Max(float64(len(accounts)), 1)

	totalWithdrawals := sumAbsAmounts(withdrawalTransactions(transactions))
	totalDeposits := sumAmounts(depositTransactions(transactions))

	var utilization float64
	if totalDeposits > 0 {
		utilization = totalWithdrawals / totalDeposits
	}

	base := 500.0

	switch {
	case volatility < 1000:
		base += 150
	case volatility < 5000:
		base += 100
	default:
		base += 50
	}

	base -= overdraftRatio * 100

	switch {
	case utilization < 0.3:
		base += 100
	case utilization < 0.7:
		base += 50
	}

	switch {
	case balance > 10000:
		base += 100
	case balance > 5000:
		base += 50
	}

	return clampScore(base)
}

// reconstructBalanceHistory walks the most recent 60 transactions backward
// from the current total balance, undoing each entry to infer past balances.
// The reconstruction is inherently approximate (it ignores entries past the
// window and treats all accounts as one pool); it feeds a volatility estimate
// only and is never a source of truth.
func reconstructBalanceHistory(transactions []models.Transaction, currentBalance float64) []float64 {
	if len(transactions) == 0 {
		return []float64{currentBalance}
	}

	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if len(sorted) > 60 {
		sorted = sorted[:60]
	}

	balances := make([]float64, 0, len(sorted)+1)
	balances = append(balances, currentBalance)

	running := currentBalance
	for _, t := range sorted {
		switch t.Type {
		case consts.TransactionWithdrawal, consts.TransactionDebit, consts.TransactionLoanRepayment:
			running += math.Abs(t.Amount)
		default:
			running -= t.Amount
		}
		balances = append(balances, running)
	}

	return balances
}
