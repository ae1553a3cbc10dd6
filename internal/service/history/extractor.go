package history

import (
	"context"
	"errors"
	"log/slog"

	"creditscoring/internal/pkg/logger"
	"creditscoring/internal/pkg/store/models"
	"creditscoring/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrCustomerNotFound is returned when the customer identifier does not
// resolve to a known customer. A customer with no accounts is not an error.
var ErrCustomerNotFound = errors.New("customer not found")

// Bundle holds one customer's complete financial history, scoped to that
// customer's accounts. It is built fresh per scoring call and discarded
// afterwards; callers may cache results but never the bundle itself.
type Bundle struct {
	Customer     models.Customer
	Accounts     []models.Account
	Transactions []models.Transaction
	Loans        []models.Loan
	Repayments   []models.Repayment
}

// Empty reports whether the customer has no accounts at all, which routes
// scoring to the default new-user response.
func (b *Bundle) Empty() bool {
	return len(b.Accounts) == 0
}

type Extractor struct {
	customerRepo    interfaces.CustomerRepositoryInterface
	accountRepo     interfaces.AccountRepositoryInterface
	transactionRepo interfaces.TransactionRepositoryInterface
	loanRepo        interfaces.LoanRepositoryInterface
	repaymentRepo   interfaces.RepaymentRepositoryInterface
}

func NewExtractor(
	customerRepo interfaces.CustomerRepositoryInterface,
	accountRepo interfaces.AccountRepositoryInterface,
	transactionRepo interfaces.TransactionRepositoryInterface,
	loanRepo interfaces.LoanRepositoryInterface,
	repaymentRepo interfaces.RepaymentRepositoryInterface,
) *Extractor {
	return &Extractor{
		customerRepo:    customerRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		loanRepo:        loanRepo,
		repaymentRepo:   repaymentRepo,
	}
}

// Extract gathers the customer's accounts, transactions, loans and repayments
// into a single bundle. Transactions come back newest first.
func (e *Extractor) Extract(ctx context.Context, customerID primitive.ObjectID) (*Bundle, error) {

	customer, err := e.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.CtxWarn(ctx, "Customer not found",
				slog.String("customer_id", customerID.Hex()))
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	accounts, err := e.accountRepo.GetAccountsByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	bundle := &Bundle{Customer: *customer, Accounts: accounts}
	if len(accounts) == 0 {
		logger.CtxInfo(ctx, "Customer has no accounts, returning empty bundle",
			slog.String("customer_id", customerID.Hex()))
		return bundle, nil
	}

	accountIDs := make([]primitive.ObjectID, 0, len(accounts))
	for _, account := range accounts {
		accountIDs = append(accountIDs, account.ID)
	}

	transactions, err := e.transactionRepo.GetTransactionsByAccountIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}
	bundle.Transactions = transactions

	loans, err := e.loanRepo.GetLoansByAccountIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}
	bundle.Loans = loans

	if len(loans) > 0 {
		loanIDs := make([]primitive.ObjectID, 0, len(loans))
		for _, loan := range loans {
			loanIDs = append(loanIDs, loan.ID)
		}

		repayments, err := e.repaymentRepo.GetRepaymentsByLoanIDs(ctx, loanIDs)
		if err != nil {
			return nil, err
		}
		bundle.Repayments = repayments
	}

	logger.CtxDebug(ctx, "Extracted financial history",
		slog.String("customer_id", customerID.Hex()),
		slog.Int("accounts", len(bundle.Accounts)),
		slog.Int("transactions", len(bundle.Transactions)),
		slog.Int("loans", len(bundle.Loans)),
		slog.Int("repayments", len(bundle.Repayments)))

	return bundle, nil
}
