package models

import "time"

// FactorScore is one factor's entry in the score breakdown. Contribution is
// the rounded product of the raw sub-score and its weight; the six
// contributions sum to the final score within rounding tolerance.
type FactorScore struct {
	Score        int     `json:"score"`
	Weight       float64 `json:"weight"`
	Contribution int     `json:"contribution"`
}

type ScoreBreakdown struct {
	PaymentHistory      FactorScore `json:"payment_history"`
	AccountAge          FactorScore `json:"account_age"`
	TransactionPatterns FactorScore `json:"transaction_patterns"`
	DepositBehavior     FactorScore `json:"deposit_behavior"`
	LoanManagement      FactorScore `json:"loan_management"`
	FinancialStability  FactorScore `json:"financial_stability"`
}

type DetailedFactor struct {
	Category    string `json:"category"`
	Status      string `json:"status"`
	Impact      string `json:"impact"`
	Description string `json:"description"`
	ScoreImpact int    `json:"score_impact"`
}

type RiskAssessment struct {
	RiskLevel            string   `json:"risk_level"`
	RiskDescription      string   `json:"risk_description"`
	RiskFactors          []string `json:"risk_factors"`
	RecommendedLoanLimit float64  `json:"recommended_loan_limit"`
}

// ScoreResult is the engine's primary output for a single scoring call.
type ScoreResult struct {
	CustomerID      string           `json:"customer_id"`
	CreditScore     int              `json:"credit_score"`
	ScoreRating     string           `json:"score_rating"`
	ScoreBreakdown  ScoreBreakdown   `json:"score_breakdown"`
	DetailedFactors []DetailedFactor `json:"detailed_factors"`
	Recommendations []string         `json:"recommendations"`
	RiskAssessment  RiskAssessment   `json:"risk_assessment"`
	LastUpdated     time.Time        `json:"last_updated"`
}
