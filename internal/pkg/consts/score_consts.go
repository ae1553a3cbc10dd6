package consts

type TransactionType string

const (
	TransactionDeposit          TransactionType = "deposit"
	TransactionCredit           TransactionType = "credit"
	TransactionWithdrawal       TransactionType = "withdrawal"
	TransactionDebit            TransactionType = "debit"
	TransactionLoanDisbursement TransactionType = "loan_disbursement"
	TransactionLoanRepayment    TransactionType = "loan_repayment"
	TransactionTransfer         TransactionType = "transfer"
	TransactionReversal         TransactionType = "reversal"
)

type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "pending"
	LoanStatusActive   LoanStatus = "active"
	LoanStatusRepaid   LoanStatus = "repaid"
	LoanStatusRejected LoanStatus = "rejected"
)

type RepaymentStatus string

const (
	RepaymentStatusPending   RepaymentStatus = "pending"
	RepaymentStatusCompleted RepaymentStatus = "completed"
)

// Valid credit score range shared by every factor calculator and the aggregator.
const (
	ScoreMin = 300
	ScoreMax = 850
)

const (
	RatingExcellent = "excellent"
	RatingVeryGood  = "very_good"
	RatingGood      = "good"
	RatingFair      = "fair"
	RatingPoor      = "poor"
	RatingVeryPoor  = "very_poor"
)

const (
	RiskVeryLow  = "very_low"
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
	RiskVeryHigh = "very_high"
)
