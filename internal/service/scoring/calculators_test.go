package scoring

import (
	"testing"
	"time"

	"creditscoring/internal/pkg/consts"
	storemodels "creditscoring/internal/pkg/store/models"
	"creditscoring/internal/service/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newAccount(balance float64, createdDaysAgo int) storemodels.Account {
	return storemodels.Account{
		ID:        primitive.NewObjectID(),
		Balance:   balance,
		CreatedAt: testNow.AddDate(0, 0, -createdDaysAgo),
	}
}

func newTransaction(txType consts.TransactionType, amount float64, daysAgo int) storemodels.Transaction {
	return storemodels.Transaction{
		ID:        primitive.NewObjectID(),
		Amount:    amount,
		Type:      txType,
		CreatedAt: testNow.AddDate(0, 0, -daysAgo),
	}
}

func newLoan(amount float64, status consts.LoanStatus, endDaysFromNow int) storemodels.Loan {
	return storemodels.Loan{
		ID:        primitive.NewObjectID(),
		Amount:    amount,
		Status:    status,
		EndDate:   testNow.AddDate(0, 0, endDaysFromNow),
		CreatedAt: testNow.AddDate(0, 0, -200),
	}
}

func newRepayment(amount float64, status consts.RepaymentStatus, daysAgo int) storemodels.Repayment {
	return storemodels.Repayment{
		ID:        primitive.NewObjectID(),
		Amount:    amount,
		Status:    status,
		CreatedAt: testNow.AddDate(0, 0, -daysAgo),
	}
}

func newBundle(ageDays int) *history.Bundle {
	return &history.Bundle{
		Customer: storemodels.Customer{
			ID:        primitive.NewObjectID(),
			FullName:  "Test Customer",
			CreatedAt: testNow.AddDate(0, 0, -ageDays),
		},
	}
}

func TestPaymentHistoryScore(t *testing.T) {
	t.Run("no loans is neutral", func(t *testing.T) {
		bundle := newBundle(400)
		assert.Equal(t, 750.0, PaymentHistoryScore(bundle, testNow))
	})

	t.Run("fully repaid loans score high", func(t *testing.T) {
		bundle := newBundle(400)
		bundle.Loans = []storemodels.Loan{newLoan(10000, consts.LoanStatusRepaid, 100)}
		bundle.Repayments = []storemodels.Repayment{
			newRepayment(5000, consts.RepaymentStatusCompleted, 60),
			newRepayment(5000, consts.RepaymentStatusCompleted, 30),
		}
		bundle.Transactions = []storemodels.Transaction{
			newTransaction(consts.TransactionLoanRepayment, 5000, 60),
			newTransaction(consts.TransactionLoanRepayment, 5000, 30),
		}

		score := PaymentHistoryScore(bundle, testNow)
		// 300 + 300 (full ratio) + 150 (perfect consistency with one gap)
		// + 10 (one repayment in the last 30 days)
		assert.InDelta(t, 760, score, 1)
	})

	t.Run("overdue loans are penalized", func(t *testing.T) {
		clean := newBundle(400)
		clean.Loans = []storemodels.Loan{newLoan(10000, consts.LoanStatusActive, 100)}

		overdue := newBundle(400)
		overdue.Loans = []storemodels.Loan{newLoan(10000, consts.LoanStatusActive, -10)}

		assert.Equal(t, PaymentHistoryScore(clean, testNow)-50, PaymentHistoryScore(overdue, testNow))
	})

	t.Run("pending repayments do not count", func(t *testing.T) {
		bundle := newBundle(400)
		bundle.Loans = []storemodels.Loan{newLoan(10000, consts.LoanStatusActive, 100)}
		bundle.Repayments = []storemodels.Repayment{
			newRepayment(10000, consts.RepaymentStatusPending, 30),
		}

		// ratio 0, consistency default 0.5
		assert.InDelta(t, 375, PaymentHistoryScore(bundle, testNow), 1)
	})

	t.Run("score never decreases as repayment ratio grows", func(t *testing.T) {
		previous := 0.0
		for repaid := 0.0; repaid <= 10000; repaid += 1000 {
			bundle := newBundle(400)
			bundle.Loans = []storemodels.Loan{newLoan(10000, consts.LoanStatusActive, 100)}
			if repaid > 0 {
				bundle.Repayments = []storemodels.Repayment{
					newRepayment(repaid, consts.RepaymentStatusCompleted, 30),
				}
			}

			score := PaymentHistoryScore(bundle, testNow)
			assert.GreaterOrEqual(t, score, previous)
			previous = score
		}
	})
}

func TestAccountAgeScore(t *testing.T) {
	cases := []struct {
		ageDays  int
		expected float64
	}{
		{1200, 800},
		{1095, 800},
		{800, 750},
		{400, 700},
		{365, 700},
		{200, 650},
		{100, 600},
		{30, 550},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, AccountAgeScore(newBundle(tc.ageDays), testNow), "age %d days", tc.ageDays)
	}

	t.Run("falls back to oldest account when registration time missing", func(t *testing.T) {
		bundle := &history.Bundle{
			Customer: storemodels.Customer{ID: primitive.NewObjectID()},
			Accounts: []storemodels.Account{
				newAccount(100, 50),
				newAccount(200, 800),
			},
		}
		assert.Equal(t, 750.0, AccountAgeScore(bundle, testNow))
	})
}

func TestTransactionPatternScore(t *testing.T) {
	t.Run("no transactions scores 400", func(t *testing.T) {
		assert.Equal(t, 400.0, TransactionPatternScore(newBundle(400), testNow))
	})

	t.Run("frequent diverse regular activity scores well", func(t *testing.T) {
		bundle := newBundle(400)
		for day := 0; day < 300; day += 5 {
			txType := consts.TransactionDeposit
			if day%15 == 0 {
				txType = consts.TransactionWithdrawal
			}
			bundle.Transactions = append(bundle.Transactions, newTransaction(txType, 500, day))
		}

		score := TransactionPatternScore(bundle, testNow)
		assert.Greater(t, score, 500.0)
		assert.LessOrEqual(t, score, 850.0)
	})

	t.Run("result is clamped to the valid range", func(t *testing.T) {
		bundle := newBundle(400)
		// dense high-value activity across many types
		types := []consts.TransactionType{
			consts.TransactionDeposit, consts.TransactionCredit, consts.TransactionWithdrawal,
			consts.TransactionDebit, consts.TransactionLoanRepayment, consts.TransactionTransfer,
		}
		for day := 0; day < 120; day++ {
			bundle.Transactions = append(bundle.Transactions,
				newTransaction(types[day%len(types)], 8000, day))
		}

		score := TransactionPatternScore(bundle, testNow)
		assert.LessOrEqual(t, score, 850.0)
		assert.GreaterOrEqual(t, score, 300.0)
	})
}

func TestDepositBehaviorScore(t *testing.T) {
	t.Run("no deposits scores 400", func(t *testing.T) {
		bundle := newBundle(400)
		bundle.Transactions = []storemodels.Transaction{
			newTransaction(consts.TransactionWithdrawal, -100, 10),
		}
		assert.Equal(t, 400.0, DepositBehaviorScore(bundle, testNow))
	})

	t.Run("negative-amount credits are not deposits", func(t *testing.T) {
		bundle := newBundle(400)
		bundle.Transactions = []storemodels.Transaction{
			newTransaction(consts.TransactionCredit, -100, 10),
		}
		assert.Equal(t, 400.0, DepositBehaviorScore(bundle, testNow))
	})

	t.Run("steady identical deposits score the consistency bonus in full", func(t *testing.T) {
		bundle := newBundle(400)
		bundle.Accounts = []storemodels.Account{newAccount(2000, 400)}
		for day := 10; day <= 100; day += 10 {
			bundle.Transactions = append(bundle.Transactions,
				newTransaction(consts.TransactionDeposit, 1000, day))
		}

		// deposits: 10 x 1000 => amount term 100, freq 10/100*30=3 => 90,
		// consistency 1 => 100, balance 2000 => 20
		assert.InDelta(t, 300+100+90+100+20, DepositBehaviorScore(bundle, testNow), 1)
	})
}

func TestLoanManagementScore(t *testing.T) {
	t.Run("no loans is neutral", func(t *testing.T) {
		assert.Equal(t, 750.0, LoanManagementScore(newBundle(400)))
	})

	t.Run("repaid loans and few active loans score well", func(t *testing.T) {
		bundle := newBundle(400)
		bundle.Loans = []storemodels.Loan{
			newLoan(5000, consts.LoanStatusRepaid, 100),
			newLoan(5000, consts.LoanStatusRepaid, 100),
			newLoan(5000, consts.LoanStatusActive, 100),
		}
		bundle.Repayments = []storemodels.Repayment{
			newRepayment(5000, consts.RepaymentStatusCompleted, 60),
			newRepayment(5000, consts.RepaymentStatusCompleted, 30),
		}

		// 500 + 2/3*200 + 100 + 40
		assert.InDelta(t, 773.3, LoanManagementScore(bundle), 1)
	})

	t.Run("too many active loans and rejections are penalized", func(t *testing.T) {
		bundle := newBundle(400)
		for i := 0; i < 5; i++ {
			bundle.Loans = append(bundle.Loans, newLoan(1000, consts.LoanStatusActive, 100))
		}
		bundle.Loans = append(bundle.Loans, newLoan(1000, consts.LoanStatusRejected, 100))

		// 500 + 0 - 50 - 30
		assert.Equal(t, 420.0, LoanManagementScore(bundle))
	})
}

func TestFinancialStabilityScore(t *testing.T) {
	t.Run("stable balances and low utilization score well", func(t *testing.T) {
		bundle := newBundle(400)
		bundle.Accounts = []storemodels.Account{newAccount(12000, 400)}
		bundle.Transactions = []storemodels.Transaction{
			newTransaction(consts.TransactionDeposit, 500, 30),
			newTransaction(consts.TransactionDeposit, 500, 20),
			newTransaction(consts.TransactionWithdrawal, -100, 10),
		}

		// 500 + 150 (low volatility) + 100 (utilization 0.1) + 100 (balance > 10000)
		assert.Equal(t, 850.0, FinancialStabilityScore(bundle))
	})

	t.Run("overdrafts lower the score relative to an identical clean customer", func(t *testing.T) {
		clean := newBundle(400)
		clean.Accounts = []storemodels.Account{newAccount(2000, 400), newAccount(500, 300)}

		overdrawn := newBundle(400)
		overdrawn.Accounts = []storemodels.Account{newAccount(2000, 400), newAccount(-500, 300)}

		assert.Greater(t, FinancialStabilityScore(clean), FinancialStabilityScore(overdrawn))
	})
}

func TestReconstructBalanceHistory(t *testing.T) {
	t.Run("no transactions yields just the current balance", func(t *testing.T) {
		assert.Equal(t, []float64{500.0}, reconstructBalanceHistory(nil, 500))
	})

	t.Run("walks deposits and withdrawals backward", func(t *testing.T) {
		transactions := []storemodels.Transaction{
			newTransaction(consts.TransactionDeposit, 1000, 1),
			newTransaction(consts.TransactionWithdrawal, -200, 2),
		}

		history := reconstructBalanceHistory(transactions, 800)
		require.Len(t, history, 3)
		// undo newest deposit first, then the withdrawal
		assert.Equal(t, []float64{800, -200, 0}, history)
	})

	t.Run("window is limited to the most recent 60 transactions", func(t *testing.T) {
		var transactions []storemodels.Transaction
		for day := 0; day < 100; day++ {
			transactions = append(transactions, newTransaction(consts.TransactionDeposit, 10, day))
		}

		history := reconstructBalanceHistory(transactions, 1000)
		assert.Len(t, history, 61)
	})
}
