package scoring

import (
	"math"
	"sort"

	"creditscoring/internal/pkg/consts"
	"creditscoring/internal/pkg/models"
	storemodels "creditscoring/internal/pkg/store/models"
	"creditscoring/internal/service/history"
)

// DetailedAnalysis summarizes the raw history behind the detailed-factors
// view: account, transaction and loan aggregates plus behavioral labels.
func DetailedAnalysis(bundle *history.Bundle) models.DetailedAnalysis {
	return models.DetailedAnalysis{
		AccountAnalysis:     accountAnalysis(bundle.Accounts),
		TransactionAnalysis: transactionAnalysis(bundle.Transactions),
		LoanAnalysis:        loanAnalysis(bundle.Loans),
		BehavioralPatterns:  behavioralPatterns(bundle),
	}
}

func accountAnalysis(accounts []storemodels.Account) models.AccountAnalysis {
	total := totalBalance(accounts)

	var average float64
	if len(accounts) > 0 {
		average = total / float64(len(accounts))
	}

	return models.AccountAnalysis{
		TotalAccounts:           len(accounts),
		TotalBalance:            total,
		AverageBalance:          average,
		NegativeBalanceAccounts: negativeBalanceAccounts(accounts),
	}
}

func transactionAnalysis(transactions []storemodels.Transaction) models.TransactionAnalysis {
	typeSet := make(map[string]struct{})
	var deposits, withdrawals, repayments int

	for _, t := range transactions {
		typeSet[string(t.Type)] = struct{}{}
		switch t.Type {
		case consts.TransactionDeposit, consts.TransactionCredit:
			deposits++
		case consts.TransactionWithdrawal, consts.TransactionDebit:
			withdrawals++
		case consts.TransactionLoanRepayment:
			repayments++
		}
	}

	types := make([]string, 0, len(typeSet))
	for t := range typeSet {
		types = append(types, t)
	}
	sort.Strings(types)

	return models.TransactionAnalysis{
		TotalTransactions:        len(transactions),
		TransactionTypes:         types,
		AverageTransactionAmount: sumAbsAmounts(transactions) / math.Max(float64(len(transactions)), 1),
		Deposits:                 deposits,
		Withdrawals:              withdrawals,
		LoanRepayments:           repayments,
	}
}

func loanAnalysis(loans []storemodels.Loan) models.LoanAnalysis {
	total := totalLoanAmount(loans)

	return models.LoanAnalysis{
		TotalLoans:        len(loans),
		ActiveLoans:       countLoansByStatus(loans, consts.LoanStatusActive),
		RepaidLoans:       countLoansByStatus(loans, consts.LoanStatusRepaid),
		RejectedLoans:     countLoansByStatus(loans, consts.LoanStatusRejected),
		TotalLoanAmount:   total,
		AverageLoanAmount: total / math.Max(float64(len(loans)), 1),
	}
}

// behavioralPatterns labels the customer's habits from simple count
// heuristics. Labels default to the cautious end of each scale.
func behavioralPatterns(bundle *history.Bundle) models.BehavioralPatterns {
	patterns := models.BehavioralPatterns{
		TransactionFrequency: "low",
		SpendingPattern:      "conservative",
		SavingBehavior:       "irregular",
		LoanBehavior:         "responsible",
	}

	transactions := bundle.Transactions
	if len(transactions) > 0 {
		switch {
		case len(transactions) > 50:
			patterns.TransactionFrequency = "high"
		case len(transactions) > 20:
			patterns.TransactionFrequency = "moderate"
		}

		deposits := depositTransactions(transactions)
		withdrawals := withdrawalTransactions(transactions)

		switch {
		case len(deposits) > len(withdrawals):
			patterns.SpendingPattern = "conservative"
		case float64(len(withdrawals)) > float64(len(deposits))*1.5:
			patterns.SpendingPattern = "aggressive"
		default:
			patterns.SpendingPattern = "balanced"
		}

		switch {
		case len(deposits) > 20:
			patterns.SavingBehavior = "regular"
		case len(deposits) > 10:
			patterns.SavingBehavior = "moderate"
		}
	}

	if len(bundle.Loans) > 0 {
		repaidRate := float64(countLoansByStatus(bundle.Loans, consts.LoanStatusRepaid)) / float64(len(bundle.Loans))
		switch {
		case repaidRate >= 0.8:
			patterns.LoanBehavior = "excellent"
		case repaidRate >= 0.6:
			patterns.LoanBehavior = "good"
		default:
			patterns.LoanBehavior = "needs_improvement"
		}
	}

	return patterns
}
