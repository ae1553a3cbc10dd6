package models

import "time"

// PopulationAverages is an externally supplied policy table, not computed
// live from the data store.
type PopulationAverages struct {
	Overall              int `json:"overall" yaml:"overall"`
	NewCustomers         int `json:"new_customers" yaml:"new_customers"`
	EstablishedCustomers int `json:"established_customers" yaml:"established_customers"`
	ActiveBorrowers      int `json:"active_borrowers" yaml:"active_borrowers"`
	Savers               int `json:"savers" yaml:"savers"`
}

type RatingShare struct {
	Percentage  int    `json:"percentage"`
	Description string `json:"description"`
}

type ScoreComparison struct {
	AboveAverage          bool        `json:"above_average"`
	DifferenceFromAverage int         `json:"difference_from_average"`
	RatingComparison      RatingShare `json:"rating_comparison"`
}

type ComparisonResult struct {
	CustomerID     string             `json:"customer_id"`
	CustomerScore  int                `json:"customer_score"`
	CustomerRating string             `json:"customer_rating"`
	AverageScores  PopulationAverages `json:"average_scores"`
	Percentile     int                `json:"customer_percentile"`
	Comparison     ScoreComparison    `json:"comparison"`
	GeneratedAt    time.Time          `json:"generated_at"`
}
