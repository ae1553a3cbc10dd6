package scoring

import (
	"context"
	"log/slog"
	"time"

	"creditscoring/internal/pkg/consts"
	"creditscoring/internal/pkg/log_messages"
	"creditscoring/internal/pkg/logger"
	"creditscoring/internal/pkg/models"
	"creditscoring/internal/service/history"
	"creditscoring/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HistoryExtractor supplies the financial history bundle for one customer.
type HistoryExtractor interface {
	Extract(ctx context.Context, customerID primitive.ObjectID) (*history.Bundle, error)
}

// Config carries the engine's policy inputs: factor weights, how long results
// may be cached, and the population-average table for comparisons.
type Config struct {
	Weights            Weights
	CacheTTL           time.Duration
	PopulationAverages models.PopulationAverages
}

// Engine converts a customer's raw financial history into a credit score,
// rating, risk assessment and loan-policy outputs. It is stateless between
// calls: every invocation extracts its own bundle, and concurrent calls are
// safe.
type Engine struct {
	extractor HistoryExtractor
	cache     interfaces.ScoreCacheInterface
	cfg       Config
	now       func() time.Time
}

// NewEngine builds an engine. The cache is optional; pass nil to always
// compute fresh.
func NewEngine(extractor HistoryExtractor, cache interfaces.ScoreCacheInterface, cfg Config) *Engine {
	if cfg.Weights == (Weights{}) {
		cfg.Weights = DefaultWeights()
	}
	return &Engine{
		extractor: extractor,
		cache:     cache,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CalculateScore is the engine's primary operation. It is total for any
// resolvable customer: a customer with no accounts receives the fixed
// new-user response instead of an error.
func (e *Engine) CalculateScore(ctx context.Context, customerID primitive.ObjectID) (*models.ScoreResult, error) {

	if e.cache != nil {
		cached, err := e.cache.GetScoreResult(ctx, customerID.Hex())
		if err != nil {
			logger.CtxWarn(ctx, log_messages.ErrorScoreCacheRead,
				slog.String("customer_id", customerID.Hex()),
				slog.Any("error", err))
		} else if cached != nil {
			logger.CtxDebug(ctx, "Score result served from cache",
				slog.String("customer_id", customerID.Hex()))
			return cached, nil
		}
	}

	bundle, err := e.extractor.Extract(ctx, customerID)
	if err != nil {
		return nil, err
	}

	result := e.scoreBundle(bundle, customerID.Hex())

	if e.cache != nil {
		if err := e.cache.SaveScoreResult(ctx, customerID.Hex(), result, e.cfg.CacheTTL); err != nil {
			logger.CtxWarn(ctx, log_messages.ErrorScoreCacheWrite,
				slog.String("customer_id", customerID.Hex()),
				slog.Any("error", err))
		}
	}

	return result, nil
}

// scoreBundle computes the full score result from an extracted bundle.
func (e *Engine) scoreBundle(bundle *history.Bundle, customerID string) *models.ScoreResult {
	now := e.now()

	if bundle.Empty() {
		return e.defaultScoreResponse(customerID, now)
	}

	scores := CalculateFactorScores(bundle, now)
	finalScore, breakdown := Aggregate(scores, e.cfg.Weights)
	rating := RatingFor(finalScore)

	return &models.ScoreResult{
		CustomerID:      customerID,
		CreditScore:     finalScore,
		ScoreRating:     rating,
		ScoreBreakdown:  breakdown,
		DetailedFactors: DetailedFactors(bundle, now),
		Recommendations: Recommendations(bundle, finalScore, now),
		RiskAssessment:  AssessRisk(bundle, finalScore, now),
		LastUpdated:     now,
	}
}

// GetLoanEligibility layers the loan decision table on top of the score.
func (e *Engine) GetLoanEligibility(ctx context.Context, customerID primitive.ObjectID, requestedAmount *float64) (*models.EligibilityResult, error) {
	result, err := e.CalculateScore(ctx, customerID)
	if err != nil {
		return nil, err
	}

	eligibility := LoanEligibility(result.CreditScore, result.RiskAssessment.RecommendedLoanLimit, requestedAmount)

	return &models.EligibilityResult{
		CustomerID:      customerID.Hex(),
		CreditScore:     result.CreditScore,
		ScoreRating:     result.ScoreRating,
		LoanEligibility: eligibility,
		RiskAssessment:  result.RiskAssessment,
		GeneratedAt:     e.now(),
	}, nil
}

// GetScoreComparison positions the customer against the configured
// population-average table.
func (e *Engine) GetScoreComparison(ctx context.Context, customerID primitive.ObjectID) (*models.ComparisonResult, error) {
	result, err := e.CalculateScore(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return &models.ComparisonResult{
		CustomerID:     customerID.Hex(),
		CustomerScore:  result.CreditScore,
		CustomerRating: result.ScoreRating,
		AverageScores:  e.cfg.PopulationAverages,
		Percentile:     Percentile(result.CreditScore),
		Comparison:     Compare(result.CreditScore, result.ScoreRating, e.cfg.PopulationAverages),
		GeneratedAt:    e.now(),
	}, nil
}

// GetScoreFactorsDetailed returns the numeric breakdown together with the raw
// history analysis and the improvement projection. It always computes from a
// fresh bundle since the analysis needs the raw records.
func (e *Engine) GetScoreFactorsDetailed(ctx context.Context, customerID primitive.ObjectID) (*models.FactorsDetailedResult, error) {
	bundle, err := e.extractor.Extract(ctx, customerID)
	if err != nil {
		return nil, err
	}

	result := e.scoreBundle(bundle, customerID.Hex())

	return &models.FactorsDetailedResult{
		CustomerID:        customerID.Hex(),
		CreditScore:       result.CreditScore,
		ScoreBreakdown:    result.ScoreBreakdown,
		DetailedFactors:   result.DetailedFactors,
		DetailedAnalysis:  DetailedAnalysis(bundle),
		ImprovementImpact: ImprovementImpact(result.CreditScore, result.ScoreBreakdown),
		GeneratedAt:       e.now(),
	}, nil
}

// defaultScoreResponse is the fixed new-user response used when the customer
// has no accounts. The breakdown values follow from scoring every factor 350
// under the standard weights.
func (e *Engine) defaultScoreResponse(customerID string, now time.Time) *models.ScoreResult {
	return &models.ScoreResult{
		CustomerID:  customerID,
		CreditScore: 350,
		ScoreRating: consts.RatingVeryPoor,
		ScoreBreakdown: models.ScoreBreakdown{
			PaymentHistory:      models.FactorScore{Score: 350, Weight: 0.35, Contribution: 122},
			AccountAge:          models.FactorScore{Score: 350, Weight: 0.15, Contribution: 52},
			TransactionPatterns: models.FactorScore{Score: 350, Weight: 0.20, Contribution: 70},
			DepositBehavior:     models.FactorScore{Score: 350, Weight: 0.15, Contribution: 52},
			LoanManagement:      models.FactorScore{Score: 350, Weight: 0.10, Contribution: 35},
			FinancialStability:  models.FactorScore{Score: 350, Weight: 0.05, Contribution: 17},
		},
		DetailedFactors: []models.DetailedFactor{
			{
				Category:    "New User",
				Status:      "building",
				Impact:      "high",
				Description: "New user with limited credit history",
				ScoreImpact: 0,
			},
		},
		Recommendations: []string{
			"Start building your credit history with regular account activity",
			"Make deposits to establish financial stability",
			"Use your account regularly for transactions",
			"Build a positive payment history over time",
		},
		RiskAssessment: models.RiskAssessment{
			RiskLevel:            consts.RiskVeryHigh,
			RiskDescription:      "New user with no established credit history",
			RiskFactors:          []string{"No credit history", "New account"},
			RecommendedLoanLimit: 1000,
		},
		LastUpdated: now,
	}
}
