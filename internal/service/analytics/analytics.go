package analytics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"creditscoring/internal/pkg/log_messages"
	"creditscoring/internal/pkg/logger"
	"creditscoring/internal/pkg/models"
	"creditscoring/internal/pkg/utils/worker"
	"creditscoring/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scorer is the single-customer scoring operation the batch map fans out over.
type Scorer interface {
	CalculateScore(ctx context.Context, customerID primitive.ObjectID) (*models.ScoreResult, error)
}

type Service struct {
	customerRepo interfaces.CustomerRepositoryInterface
	scorer       Scorer
	numWorkers   int
	averages     models.PopulationAverages
}

func NewService(
	customerRepo interfaces.CustomerRepositoryInterface,
	scorer Scorer,
	numWorkers int,
	averages models.PopulationAverages,
) *Service {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Service{
		customerRepo: customerRepo,
		scorer:       scorer,
		numWorkers:   numWorkers,
		averages:     averages,
	}
}

// topFactors is a fixed policy summary of which factors move scores most,
// ordered by weight.
var topFactors = []models.FactorSummary{
	{Factor: "Payment History", ImpactPercentage: 35, AverageScore: 680},
	{Factor: "Transaction Patterns", ImpactPercentage: 20, AverageScore: 650},
	{Factor: "Account Age", ImpactPercentage: 15, AverageScore: 720},
	{Factor: "Deposit Behavior", ImpactPercentage: 15, AverageScore: 640},
	{Factor: "Loan Management", ImpactPercentage: 10, AverageScore: 690},
	{Factor: "Financial Stability", ImpactPercentage: 5, AverageScore: 660},
}

// GenerateAnalytics batch-scores the whole customer population: an
// embarrassingly parallel map over independent single-customer scoring calls,
// followed by a sequential reduce into distributions. Customers whose scoring
// fails are skipped and counted out of ScoredCustomers.
func (s *Service) GenerateAnalytics(ctx context.Context) (*models.AnalyticsResult, error) {

	customerIDs, err := s.customerRepo.ListCustomerIDs(ctx)
	if err != nil {
		return nil, err
	}

	pool := worker.NewWorkerPool(s.numWorkers)
	defer pool.Stop()

	results := make([]*models.ScoreResult, len(customerIDs))
	var wg sync.WaitGroup

	for i, customerID := range customerIDs {
		i, customerID := i, customerID
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			result, err := s.scorer.CalculateScore(ctx, customerID)
			if err != nil {
				logger.CtxWarn(ctx, "Skipping customer in batch scoring",
					slog.String("customer_id", customerID.Hex()),
					slog.Any("error", err))
				return
			}
			results[i] = result
		})
	}
	wg.Wait()

	scoreDistribution := make(map[string]int)
	riskDistribution := make(map[string]int)
	var scored int

	for _, result := range results {
		if result == nil {
			continue
		}
		scored++
		scoreDistribution[result.ScoreRating]++
		riskDistribution[result.RiskAssessment.RiskLevel]++
	}

	if scored < len(customerIDs) {
		logger.CtxWarn(ctx, log_messages.ErrorBatchScoringIncomplete,
			slog.Int("total", len(customerIDs)),
			slog.Int("scored", scored))
	}

	return &models.AnalyticsResult{
		TotalCustomers:    len(customerIDs),
		ScoredCustomers:   scored,
		ScoreDistribution: scoreDistribution,
		RiskDistribution:  riskDistribution,
		AverageScores:     s.averages,
		TopFactors:        topFactors,
		GeneratedAt:       time.Now(),
	}, nil
}
