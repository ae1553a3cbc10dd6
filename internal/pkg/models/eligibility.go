package models

import "time"

type InterestRateRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type LoanTerms struct {
	MinRepaymentPeriodMonths int  `json:"min_repayment_period"`
	MaxRepaymentPeriodMonths int  `json:"max_repayment_period"`
	CollateralRequired       bool `json:"collateral_required"`
	GuarantorRequired        bool `json:"guarantor_required"`
}

type AlternativeOffer struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

// LoanEligibility is the policy decision derived from the credit score alone.
// Eligible is false below a score of 550 regardless of any other factor.
type LoanEligibility struct {
	Status                  string            `json:"status"`
	Eligible                bool              `json:"eligible"`
	MaxLoanAmount           float64           `json:"max_loan_amount"`
	InterestRateRange       InterestRateRange `json:"interest_rate_range"`
	ApprovalProbability     int               `json:"approval_probability"`
	RecommendedAmount       float64           `json:"recommended_amount"`
	Terms                   LoanTerms         `json:"terms"`
	RequestedAmount         *float64          `json:"requested_amount,omitempty"`
	RequestedAmountApproved *bool             `json:"requested_amount_approved,omitempty"`
	AlternativeOffer        *AlternativeOffer `json:"alternative_offer,omitempty"`
}

type EligibilityResult struct {
	CustomerID      string          `json:"customer_id"`
	CreditScore     int             `json:"credit_score"`
	ScoreRating     string          `json:"score_rating"`
	LoanEligibility LoanEligibility `json:"loan_eligibility"`
	RiskAssessment  RiskAssessment  `json:"risk_assessment"`
	GeneratedAt     time.Time       `json:"generated_at"`
}
