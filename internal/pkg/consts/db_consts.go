package consts

// MongoDB collection names.
const (
	CustomerCollection    = "Customers"
	AccountCollection     = "Accounts"
	TransactionCollection = "Transactions"
	LoanCollection        = "Loans"
	RepaymentCollection   = "Repayments"
)
