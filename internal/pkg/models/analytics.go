package models

import "time"

type FactorSummary struct {
	Factor           string `json:"factor"`
	ImpactPercentage int    `json:"impact_percentage"`
	AverageScore     int    `json:"average_score"`
}

// AnalyticsResult aggregates scoring results across the whole customer
// population. Distributions are computed by batch-scoring every customer;
// average-score and top-factor tables are fixed policy inputs.
type AnalyticsResult struct {
	TotalCustomers    int                `json:"total_customers"`
	ScoredCustomers   int                `json:"scored_customers"`
	ScoreDistribution map[string]int     `json:"score_distribution"`
	RiskDistribution  map[string]int     `json:"risk_distribution"`
	AverageScores     PopulationAverages `json:"average_scores"`
	TopFactors        []FactorSummary    `json:"top_factors"`
	GeneratedAt       time.Time          `json:"generated_at"`
}
