package scoring

import (
	"fmt"
	"math"
	"time"

	"creditscoring/internal/pkg/models"
	"creditscoring/internal/service/history"
)

// DetailedFactors builds the ordered qualitative factor list shown alongside
// the numeric breakdown.
func DetailedFactors(bundle *history.Bundle, now time.Time) []models.DetailedFactor {
	var factors []models.DetailedFactor

	if len(bundle.Loans) > 0 {
		ratio := repaymentRatio(bundle)
		switch {
		case ratio >= 0.9:
			factors = append(factors, models.DetailedFactor{
				Category:    "Payment History",
				Status:      "excellent",
				Impact:      "very_high",
				Description: fmt.Sprintf("Outstanding payment history with %.1f%% repayment rate", ratio*100),
				ScoreImpact: 35,
			})
		case ratio >= 0.7:
			factors = append(factors, models.DetailedFactor{
				Category:    "Payment History",
				Status:      "good",
				Impact:      "high",
				Description: fmt.Sprintf("Good payment history with %.1f%% repayment rate", ratio*100),
				ScoreImpact: 25,
			})
		default:
			factors = append(factors, models.DetailedFactor{
				Category:    "Payment History",
				Status:      "needs_improvement",
				Impact:      "high",
				Description: fmt.Sprintf("Payment history needs improvement - %.1f%% repayment rate", ratio*100),
				ScoreImpact: -15,
			})
		}
	}

	if !bundle.Customer.CreatedAt.IsZero() {
		years := daysBetween(bundle.Customer.CreatedAt, now) / 365
		switch {
		case years >= 2:
			factors = append(factors, models.DetailedFactor{
				Category:    "Account Age",
				Status:      "excellent",
				Impact:      "medium",
				Description: fmt.Sprintf("Established credit history of %.1f years", years),
				ScoreImpact: 15,
			})
		case years >= 1:
			factors = append(factors, models.DetailedFactor{
				Category:    "Account Age",
				Status:      "good",
				Impact:      "medium",
				Description: fmt.Sprintf("Good credit history length of %.1f years", years),
				ScoreImpact: 10,
			})
		default:
			factors = append(factors, models.DetailedFactor{
				Category:    "Account Age",
				Status:      "building",
				Impact:      "low",
				Description: fmt.Sprintf("Building credit history - %.1f years", years),
				ScoreImpact: 5,
			})
		}
	}

	if len(bundle.Transactions) > 0 {
		daysActive := daysBetween(oldestTransactionTime(bundle.Transactions), now)
		monthlyActivity := float64(len(bundle.Transactions)) / math.Max(1, daysActive/30)
		switch {
		case monthlyActivity >= 10:
			factors = append(factors, models.DetailedFactor{
				Category:    "Transaction Activity",
				Status:      "excellent",
				Impact:      "medium",
				Description: fmt.Sprintf("Very active account with %.1f transactions per month", monthlyActivity),
				ScoreImpact: 20,
			})
		case monthlyActivity >= 5:
			factors = append(factors, models.DetailedFactor{
				Category:    "Transaction Activity",
				Status:      "good",
				Impact:      "medium",
				Description: fmt.Sprintf("Good account activity with %.1f transactions per month", monthlyActivity),
				ScoreImpact: 15,
			})
		default:
			factors = append(factors, models.DetailedFactor{
				Category:    "Transaction Activity",
				Status:      "low",
				Impact:      "low",
				Description: fmt.Sprintf("Low account activity with %.1f transactions per month", monthlyActivity),
				ScoreImpact: 5,
			})
		}
	}

	balance := totalBalance(bundle.Accounts)
	switch {
	case balance >= 10000:
		factors = append(factors, models.DetailedFactor{
			Category:    "Financial Stability",
			Status:      "excellent",
			Impact:      "medium",
			Description: fmt.Sprintf("Strong financial position with %.2f ETB balance", balance),
			ScoreImpact: 15,
		})
	case balance >= 5000:
		factors = append(factors, models.DetailedFactor{
			Category:    "Financial Stability",
			Status:      "good",
			Impact:      "low",
			Description: fmt.Sprintf("Stable financial position with %.2f ETB balance", balance),
			ScoreImpact: 10,
		})
	default:
		factors = append(factors, models.DetailedFactor{
			Category:    "Financial Stability",
			Status:      "building",
			Impact:      "low",
			Description: fmt.Sprintf("Building financial stability - current balance %.2f ETB", balance),
			ScoreImpact: 0,
		})
	}

	return factors
}
