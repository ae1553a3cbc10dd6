package models

import "time"

type AccountAnalysis struct {
	TotalAccounts           int     `json:"total_accounts"`
	TotalBalance            float64 `json:"total_balance"`
	AverageBalance          float64 `json:"average_balance"`
	NegativeBalanceAccounts int     `json:"negative_balance_accounts"`
}

type TransactionAnalysis struct {
	TotalTransactions        int      `json:"total_transactions"`
	TransactionTypes         []string `json:"transaction_types"`
	AverageTransactionAmount float64  `json:"average_transaction_amount"`
	Deposits                 int      `json:"deposits"`
	Withdrawals              int      `json:"withdrawals"`
	LoanRepayments           int      `json:"loan_repayments"`
}

type LoanAnalysis struct {
	TotalLoans        int     `json:"total_loans"`
	ActiveLoans       int     `json:"active_loans"`
	RepaidLoans       int     `json:"repaid_loans"`
	RejectedLoans     int     `json:"rejected_loans"`
	TotalLoanAmount   float64 `json:"total_loan_amount"`
	AverageLoanAmount float64 `json:"average_loan_amount"`
}

type BehavioralPatterns struct {
	TransactionFrequency string `json:"transaction_frequency"`
	SpendingPattern      string `json:"spending_pattern"`
	SavingBehavior       string `json:"saving_behavior"`
	LoanBehavior         string `json:"loan_behavior"`
}

type DetailedAnalysis struct {
	AccountAnalysis     AccountAnalysis     `json:"account_analysis"`
	TransactionAnalysis TransactionAnalysis `json:"transaction_analysis"`
	LoanAnalysis        LoanAnalysis        `json:"loan_analysis"`
	BehavioralPatterns  BehavioralPatterns  `json:"behavioral_patterns"`
}

type ImprovementArea struct {
	CurrentContribution     int      `json:"current_contribution"`
	MaxPossibleContribution float64  `json:"max_possible_contribution"`
	PotentialGain           float64  `json:"potential_gain"`
	Actions                 []string `json:"actions"`
}

type PriorityAction struct {
	Area          string   `json:"area"`
	PotentialGain int      `json:"potential_gain"`
	TopAction     string   `json:"top_action"`
	AllActions    []string `json:"all_actions"`
}

type ImprovementImpact struct {
	CurrentScore              int                        `json:"current_score"`
	MaximumPossibleScore      int                        `json:"maximum_possible_score"`
	TotalPotentialImprovement float64                    `json:"total_potential_improvement"`
	ImprovementAreas          map[string]ImprovementArea `json:"improvement_areas"`
	PriorityActions           []PriorityAction           `json:"priority_actions"`
}

type FactorsDetailedResult struct {
	CustomerID        string            `json:"customer_id"`
	CreditScore       int               `json:"credit_score"`
	ScoreBreakdown    ScoreBreakdown    `json:"score_breakdown"`
	DetailedFactors   []DetailedFactor  `json:"detailed_factors"`
	DetailedAnalysis  DetailedAnalysis  `json:"detailed_analysis"`
	ImprovementImpact ImprovementImpact `json:"improvement_impact"`
	GeneratedAt       time.Time         `json:"generated_at"`
}
