package scoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"creditscoring/internal/pkg/consts"
	"creditscoring/internal/pkg/models"
	storemodels "creditscoring/internal/pkg/store/models"
	"creditscoring/internal/service/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Extractor mock ---

type mockExtractor struct{ mock.Mock }

func (m *mockExtractor) Extract(ctx context.Context, customerID primitive.ObjectID) (*history.Bundle, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) != nil {
		return args.Get(0).(*history.Bundle), args.Error(1)
	}
	return nil, args.Error(1)
}

// --- Score cache mock ---

type mockScoreCache struct{ mock.Mock }

func (m *mockScoreCache) GetScoreResult(ctx context.Context, customerID string) (*models.ScoreResult, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) != nil {
		return args.Get(0).(*models.ScoreResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockScoreCache) SaveScoreResult(ctx context.Context, customerID string, result *models.ScoreResult, ttl time.Duration) error {
	return m.Called(ctx, customerID, result, ttl).Error(0)
}

func (m *mockScoreCache) DeleteScoreResult(ctx context.Context, customerID string) error {
	return m.Called(ctx, customerID).Error(0)
}

func testEngine(extractor HistoryExtractor, cache *mockScoreCache) *Engine {
	cfg := Config{
		Weights:            DefaultWeights(),
		CacheTTL:           15 * time.Minute,
		PopulationAverages: models.PopulationAverages{Overall: 650, NewCustomers: 580, EstablishedCustomers: 720, ActiveBorrowers: 680, Savers: 740},
	}

	var engine *Engine
	if cache != nil {
		engine = NewEngine(extractor, cache, cfg)
	} else {
		engine = NewEngine(extractor, nil, cfg)
	}
	engine.now = func() time.Time { return testNow }
	return engine
}

func TestCalculateScoreDefaultResponseForNoAccounts(t *testing.T) {
	customerID := primitive.NewObjectID()

	extractor := new(mockExtractor)
	extractor.On("Extract", mock.Anything, customerID).
		Return(&history.Bundle{Customer: storemodels.Customer{ID: customerID}}, nil)

	engine := testEngine(extractor, nil)

	result, err := engine.CalculateScore(context.Background(), customerID)
	require.NoError(t, err)

	assert.Equal(t, 350, result.CreditScore)
	assert.Equal(t, consts.RatingVeryPoor, result.ScoreRating)
	assert.Equal(t, consts.RiskVeryHigh, result.RiskAssessment.RiskLevel)
	assert.Equal(t, 1000.0, result.RiskAssessment.RecommendedLoanLimit)
	assert.Equal(t, []string{"No credit history", "New account"}, result.RiskAssessment.RiskFactors)

	assert.Equal(t, 122, result.ScoreBreakdown.PaymentHistory.Contribution)
	assert.Equal(t, 52, result.ScoreBreakdown.AccountAge.Contribution)
	assert.Equal(t, 70, result.ScoreBreakdown.TransactionPatterns.Contribution)
	assert.Equal(t, 52, result.ScoreBreakdown.DepositBehavior.Contribution)
	assert.Equal(t, 35, result.ScoreBreakdown.LoanManagement.Contribution)
	assert.Equal(t, 17, result.ScoreBreakdown.FinancialStability.Contribution)

	require.Len(t, result.DetailedFactors, 1)
	assert.Equal(t, "New User", result.DetailedFactors[0].Category)
	assert.Len(t, result.Recommendations, 4)
}

func TestCalculateScoreNotFoundPassesThrough(t *testing.T) {
	customerID := primitive.NewObjectID()

	extractor := new(mockExtractor)
	extractor.On("Extract", mock.Anything, customerID).Return(nil, history.ErrCustomerNotFound)

	engine := testEngine(extractor, nil)

	result, err := engine.CalculateScore(context.Background(), customerID)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, history.ErrCustomerNotFound)
}

func TestCalculateScoreIsIdempotent(t *testing.T) {
	customerID := primitive.NewObjectID()
	bundle := scenarioBundle(customerID)

	extractor := new(mockExtractor)
	extractor.On("Extract", mock.Anything, customerID).Return(bundle, nil)

	engine := testEngine(extractor, nil)

	first, err := engine.CalculateScore(context.Background(), customerID)
	require.NoError(t, err)
	second, err := engine.CalculateScore(context.Background(), customerID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// scenarioBundle is a mid-range customer: one 10000 loan with 8000 repaid, a
// 2000 balance, a 400-day-old account and steady activity over 300 days.
func scenarioBundle(customerID primitive.ObjectID) *history.Bundle {
	bundle := &history.Bundle{
		Customer: storemodels.Customer{
			ID:        customerID,
			CreatedAt: testNow.AddDate(0, 0, -400),
		},
		Accounts: []storemodels.Account{newAccount(2000, 400)},
		Loans: []storemodels.Loan{
			{
				ID:                    primitive.NewObjectID(),
				Amount:                10000,
				InterestRate:          12,
				Status:                consts.LoanStatusActive,
				RepaymentPeriodMonths: 12,
				EndDate:               testNow.AddDate(0, 0, 60),
				CreatedAt:             testNow.AddDate(0, 0, -200),
			},
		},
		Repayments: []storemodels.Repayment{
			newRepayment(8000, consts.RepaymentStatusCompleted, 150),
		},
	}

	for day := 10; day <= 290; day += 10 {
		bundle.Transactions = append(bundle.Transactions,
			newTransaction(consts.TransactionDeposit, 1000, day))
	}
	bundle.Transactions = append(bundle.Transactions,
		newTransaction(consts.TransactionLoanRepayment, 8000, 150))

	return bundle
}

func TestCalculateScoreMidRangeScenario(t *testing.T) {
	customerID := primitive.NewObjectID()

	extractor := new(mockExtractor)
	extractor.On("Extract", mock.Anything, customerID).Return(scenarioBundle(customerID), nil)

	engine := testEngine(extractor, nil)

	result, err := engine.CalculateScore(context.Background(), customerID)
	require.NoError(t, err)

	// mostly repaid loan, one-year-plus account: lands in the fair/good range
	assert.GreaterOrEqual(t, result.CreditScore, 600)
	assert.LessOrEqual(t, result.CreditScore, 699)
	assert.Contains(t, []string{consts.RatingFair, consts.RatingGood}, result.ScoreRating)

	assert.Equal(t, 700, result.ScoreBreakdown.AccountAge.Score)

	sum := result.ScoreBreakdown.PaymentHistory.Contribution +
		result.ScoreBreakdown.AccountAge.Contribution +
		result.ScoreBreakdown.TransactionPatterns.Contribution +
		result.ScoreBreakdown.DepositBehavior.Contribution +
		result.ScoreBreakdown.LoanManagement.Contribution +
		result.ScoreBreakdown.FinancialStability.Contribution
	assert.InDelta(t, result.CreditScore, sum, 2)

	assert.LessOrEqual(t, result.RiskAssessment.RecommendedLoanLimit, 50000.0)

	eligibility, err := engine.GetLoanEligibility(context.Background(), customerID, nil)
	require.NoError(t, err)
	assert.True(t, eligibility.LoanEligibility.Eligible)
}

func TestCalculateScoreUsesCache(t *testing.T) {
	customerID := primitive.NewObjectID()
	cached := &models.ScoreResult{CustomerID: customerID.Hex(), CreditScore: 712, ScoreRating: consts.RatingVeryGood}

	extractor := new(mockExtractor)
	cache := new(mockScoreCache)
	cache.On("GetScoreResult", mock.Anything, customerID.Hex()).Return(cached, nil)

	engine := testEngine(extractor, cache)

	result, err := engine.CalculateScore(context.Background(), customerID)
	require.NoError(t, err)
	assert.Equal(t, cached, result)
	extractor.AssertNotCalled(t, "Extract")
}

func TestCalculateScoreWritesCacheOnMiss(t *testing.T) {
	customerID := primitive.NewObjectID()

	extractor := new(mockExtractor)
	extractor.On("Extract", mock.Anything, customerID).Return(scenarioBundle(customerID), nil)

	cache := new(mockScoreCache)
	cache.On("GetScoreResult", mock.Anything, customerID.Hex()).Return(nil, nil)
	cache.On("SaveScoreResult", mock.Anything, customerID.Hex(), mock.Anything, 15*time.Minute).Return(nil)

	engine := testEngine(extractor, cache)

	_, err := engine.CalculateScore(context.Background(), customerID)
	require.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestCalculateScoreSurvivesCacheFailures(t *testing.T) {
	customerID := primitive.NewObjectID()

	extractor := new(mockExtractor)
	extractor.On("Extract", mock.Anything, customerID).Return(scenarioBundle(customerID), nil)

	cache := new(mockScoreCache)
	cache.On("GetScoreResult", mock.Anything, customerID.Hex()).Return(nil, errors.New("redis down"))
	cache.On("SaveScoreResult", mock.Anything, customerID.Hex(), mock.Anything, mock.Anything).Return(errors.New("redis down"))

	engine := testEngine(extractor, cache)

	result, err := engine.CalculateScore(context.Background(), customerID)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestGetScoreComparison(t *testing.T) {
	customerID := primitive.NewObjectID()

	extractor := new(mockExtractor)
	extractor.On("Extract", mock.Anything, customerID).Return(scenarioBundle(customerID), nil)

	engine := testEngine(extractor, nil)

	comparison, err := engine.GetScoreComparison(context.Background(), customerID)
	require.NoError(t, err)

	assert.Equal(t, customerID.Hex(), comparison.CustomerID)
	assert.Equal(t, 650, comparison.AverageScores.Overall)
	assert.Equal(t, comparison.CustomerScore > 650, comparison.Comparison.AboveAverage)
	assert.Equal(t, comparison.CustomerScore-650, comparison.Comparison.DifferenceFromAverage)
	assert.Equal(t, Percentile(comparison.CustomerScore), comparison.Percentile)
}

func TestGetScoreFactorsDetailed(t *testing.T) {
	customerID := primitive.NewObjectID()

	extractor := new(mockExtractor)
	extractor.On("Extract", mock.Anything, customerID).Return(scenarioBundle(customerID), nil)

	engine := testEngine(extractor, nil)

	detailed, err := engine.GetScoreFactorsDetailed(context.Background(), customerID)
	require.NoError(t, err)

	assert.Equal(t, customerID.Hex(), detailed.CustomerID)
	assert.Equal(t, 1, detailed.DetailedAnalysis.AccountAnalysis.TotalAccounts)
	assert.Equal(t, 30, detailed.DetailedAnalysis.TransactionAnalysis.TotalTransactions)
	assert.Equal(t, 1, detailed.DetailedAnalysis.LoanAnalysis.TotalLoans)
	assert.NotEmpty(t, detailed.ImprovementImpact.PriorityActions)
	assert.NotEmpty(t, detailed.DetailedFactors)
}
