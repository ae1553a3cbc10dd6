package scoring

import (
	"math"
	"time"

	"creditscoring/internal/pkg/consts"
	"creditscoring/internal/pkg/store/models"
	"creditscoring/internal/service/history"
)

// Shared aggregates over the financial history bundle, used by several
// calculators and the risk assessor.

func totalBalance(accounts []models.Account) float64 {
	var total float64
	for _, account := range accounts {
		total += account.Balance
	}
	return total
}

func totalLoanAmount(loans []models.Loan) float64 {
	var total float64
	for _, loan := range loans {
		total += loan.Amount
	}
	return total
}

func completedRepaymentAmount(repayments []models.Repayment) float64 {
	var total float64
	for _, repayment := range repayments {
		if repayment.Status == consts.RepaymentStatusCompleted {
			total += repayment.Amount
		}
	}
	return total
}

func completedRepaymentCount(repayments []models.Repayment) int {
	var count int
	for _, repayment := range repayments {
		if repayment.Status == consts.RepaymentStatusCompleted {
			count++
		}
	}
	return count
}

func countLoansByStatus(loans []models.Loan, status consts.LoanStatus) int {
	var count int
	for _, loan := range loans {
		if loan.Status == status {
			count++
		}
	}
	return count
}

func overdueLoans(loans []models.Loan, now time.Time) []models.Loan {
	var overdue []models.Loan
	for _, loan := range loans {
		if loan.Status == consts.LoanStatusActive && !loan.EndDate.IsZero() && loan.EndDate.Before(now) {
			overdue = append(overdue, loan)
		}
	}
	return overdue
}

// depositTransactions keeps deposit/credit entries with positive amounts.
func depositTransactions(transactions []models.Transaction) []models.Transaction {
	var deposits []models.Transaction
	for _, t := range transactions {
		if (t.Type == consts.TransactionDeposit || t.Type == consts.TransactionCredit) && t.Amount > 0 {
			deposits = append(deposits, t)
		}
	}
	return deposits
}

// withdrawalTransactions keeps withdrawal/debit entries with negative amounts.
func withdrawalTransactions(transactions []models.Transaction) []models.Transaction {
	var withdrawals []models.Transaction
	for _, t := range transactions {
		if (t.Type == consts.TransactionWithdrawal || t.Type == consts.TransactionDebit) && t.Amount < 0 {
			withdrawals = append(withdrawals, t)
		}
	}
	return withdrawals
}

func loanRepaymentTransactions(transactions []models.Transaction) []models.Transaction {
	var repayments []models.Transaction
	for _, t := range transactions {
		if t.Type == consts.TransactionLoanRepayment {
			repayments = append(repayments, t)
		}
	}
	return repayments
}

func sumAmounts(transactions []models.Transaction) float64 {
	var total float64
	for _, t := range transactions {
		total += t.Amount
	}
	return total
}

func sumAbsAmounts(transactions []models.Transaction) float64 {
	var total float64
	for _, t := range transactions {
		total += math.Abs(t.Amount)
	}
	return total
}

func transactionTimes(transactions []models.Transaction) []time.Time {
	times := make([]time.Time, 0, len(transactions))
	for _, t := range transactions {
		times = append(times, t.CreatedAt)
	}
	return times
}

func oldestTransactionTime(transactions []models.Transaction) time.Time {
	oldest := transactions[0].CreatedAt
	for _, t := range transactions[1:] {
		if t.CreatedAt.Before(oldest) {
			oldest = t.CreatedAt
		}
	}
	return oldest
}

func negativeBalanceAccounts(accounts []models.Account) int {
	var count int
	for _, account := range accounts {
		if account.Balance < 0 {
			count++
		}
	}
	return count
}

// accountAgeDays is derived from the customer registration timestamp, falling
// back to the oldest account when registration time is missing.
func accountAgeDays(bundle *history.Bundle, now time.Time) float64 {
	if !bundle.Customer.CreatedAt.IsZero() {
		return daysBetween(bundle.Customer.CreatedAt, now)
	}

	if len(bundle.Accounts) == 0 {
		return 0
	}
	oldest := bundle.Accounts[0].CreatedAt
	for _, account := range bundle.Accounts[1:] {
		if account.CreatedAt.Before(oldest) {
			oldest = account.CreatedAt
		}
	}
	return daysBetween(oldest, now)
}

// repaymentRatio is the completed repayment amount over total loan principal,
// capped at 1. Zero loans are the caller's responsibility.
func repaymentRatio(bundle *history.Bundle) float64 {
	total := totalLoanAmount(bundle.Loans)
	repaid := completedRepaymentAmount(bundle.Repayments)
	return math.Min(1.0, repaid/math.Max(total, 1))
}
