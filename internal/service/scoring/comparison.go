package scoring

import (
	"creditscoring/internal/pkg/consts"
	"creditscoring/internal/pkg/models"
)

// Percentile returns the customer's approximate population percentile. The
// lookup is a fixed policy table, not a live computation over the population.
func Percentile(score int) int {
	return lookupThreshold(percentileBands, float64(score), percentileFallback)
}

// ratingShares describes what share of the population sits in each rating
// band; conservative fixed defaults used when no live telemetry exists.
var ratingShares = map[string]models.RatingShare{
	consts.RatingExcellent: {Percentage: 15, Description: "Top 15% of users"},
	consts.RatingVeryGood:  {Percentage: 20, Description: "Top 35% of users"},
	consts.RatingGood:      {Percentage: 25, Description: "Top 60% of users"},
	consts.RatingFair:      {Percentage: 20, Description: "Average range"},
	consts.RatingPoor:      {Percentage: 15, Description: "Below average"},
	consts.RatingVeryPoor:  {Percentage: 5, Description: "Bottom 5% of users"},
}

// RatingShareFor returns the population share entry for a rating band.
func RatingShareFor(rating string) models.RatingShare {
	if share, ok := ratingShares[rating]; ok {
		return share
	}
	return models.RatingShare{Percentage: 0, Description: "Unknown"}
}

// Compare positions a customer's score against the supplied population
// averages.
func Compare(score int, rating string, averages models.PopulationAverages) models.ScoreComparison {
	return models.ScoreComparison{
		AboveAverage:          score > averages.Overall,
		DifferenceFromAverage: score - averages.Overall,
		RatingComparison:      RatingShareFor(rating),
	}
}
