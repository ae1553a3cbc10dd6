package scoring

import (
	"math"
	"sort"

	"creditscoring/internal/pkg/consts"
	"creditscoring/internal/pkg/models"
)

var improvementActions = map[string][]string{
	"payment_history": {
		"Make all loan payments on time",
		"Set up automatic payments",
		"Pay off overdue loans",
	},
	"transaction_patterns": {
		"Increase account activity",
		"Diversify transaction types",
		"Maintain regular transaction patterns",
	},
	"deposit_behavior": {
		"Make regular deposits",
		"Increase deposit amounts",
		"Maintain consistent saving habits",
	},
}

var improvementAreaTitles = map[string]string{
	"payment_history":      "Payment History",
	"transaction_patterns": "Transaction Patterns",
	"deposit_behavior":     "Deposit Behavior",
}

// ImprovementImpact projects the point gain available in the three most
// actionable areas: the theoretical maximum contribution (top of the score
// range times the factor weight) minus the current contribution.
func ImprovementImpact(currentScore int, breakdown models.ScoreBreakdown) models.ImprovementImpact {
	areas := map[string]models.ImprovementArea{
		"payment_history":      improvementArea(breakdown.PaymentHistory, "payment_history"),
		"transaction_patterns": improvementArea(breakdown.TransactionPatterns, "transaction_patterns"),
		"deposit_behavior":     improvementArea(breakdown.DepositBehavior, "deposit_behavior"),
	}

	var totalGain float64
	for _, area := range areas {
		totalGain += area.PotentialGain
	}

	return models.ImprovementImpact{
		CurrentScore:              currentScore,
		MaximumPossibleScore:      consts.ScoreMax,
		TotalPotentialImprovement: math.Min(totalGain, float64(consts.ScoreMax-currentScore)),
		ImprovementAreas:          areas,
		PriorityActions:           priorityActions(areas),
	}
}

func improvementArea(factor models.FactorScore, key string) models.ImprovementArea {
	maxContribution := consts.ScoreMax * factor.Weight
	return models.ImprovementArea{
		CurrentContribution:     factor.Contribution,
		MaxPossibleContribution: maxContribution,
		PotentialGain:           maxContribution - float64(factor.Contribution),
		Actions:                 improvementActions[key],
	}
}

// priorityActions surfaces the three areas with the largest potential gain,
// largest first.
func priorityActions(areas map[string]models.ImprovementArea) []models.PriorityAction {
	keys := make([]string, 0, len(areas))
	for key := range areas {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return areas[keys[i]].PotentialGain > areas[keys[j]].PotentialGain
	})

	if len(keys) > 3 {
		keys = keys[:3]
	}

	actions := make([]models.PriorityAction, 0, len(keys))
	for _, key := range keys {
		area := areas[key]
		actions = append(actions, models.PriorityAction{
			Area:          improvementAreaTitles[key],
			PotentialGain: int(math.Round(area.PotentialGain)),
			TopAction:     area.Actions[0],
			AllActions:    area.Actions,
		})
	}

	return actions
}
