package scoring

import (
	"math"

	"creditscoring/internal/pkg/models"
)

// minimumEligibleScore is the hard floor: below it eligibility is false
// regardless of any other factor.
const minimumEligibleScore = 550

// LoanEligibility derives the loan policy decision from the credit score and
// the advisory loan limit. The final maximum is the lesser of the tier ceiling
// and the risk-assessed recommended limit.
func LoanEligibility(creditScore int, recommendedLoanLimit float64, requestedAmount *float64) models.LoanEligibility {
	tier := lookupThreshold(eligibilityTiers, float64(creditScore), eligibilityTierFallback)

	finalMaxAmount := math.Min(tier.MaxAmount, recommendedLoanLimit)

	maxRepaymentPeriod := 24
	if creditScore >= 650 {
		maxRepaymentPeriod = 36
	}

	eligibility := models.LoanEligibility{
		Status:   tier.Status,
		Eligible: creditScore >= minimumEligibleScore,
		MaxLoanAmount: finalMaxAmount,
		InterestRateRange: models.InterestRateRange{
			Min: tier.InterestMin,
			Max: tier.InterestMax,
		},
		ApprovalProbability: tier.ApprovalProbability,
		RecommendedAmount:   finalMaxAmount * 0.7,
		Terms: models.LoanTerms{
			MinRepaymentPeriodMonths: 6,
			MaxRepaymentPeriodMonths: maxRepaymentPeriod,
			CollateralRequired:       creditScore < 600,
			GuarantorRequired:        creditScore < minimumEligibleScore,
		},
	}

	if requestedAmount != nil {
		approved := *requestedAmount <= finalMaxAmount
		eligibility.RequestedAmount = requestedAmount
		eligibility.RequestedAmountApproved = &approved

		if !approved {
			eligibility.AlternativeOffer = &models.AlternativeOffer{
				Amount: finalMaxAmount,
				Reason: "Reduced amount based on credit assessment",
			}
		}
	}

	return eligibility
}
