package router

import (
	"time"

	"creditscoring/internal/app/handlers"
	"creditscoring/internal/pkg/config"
	mongodb "creditscoring/internal/pkg/db/mongo"
	"creditscoring/internal/pkg/store/impl/accounts"
	"creditscoring/internal/pkg/store/impl/customers"
	"creditscoring/internal/pkg/store/impl/loans"
	"creditscoring/internal/pkg/store/impl/repayments"
	"creditscoring/internal/pkg/store/impl/transactions"
	"creditscoring/internal/pkg/store/repository"
	"creditscoring/internal/service/analytics"
	"creditscoring/internal/service/history"
	"creditscoring/internal/service/scoring"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// SetupRouter wires the repositories, extractor, engine and handlers into the
// HTTP surface. A nil redisClient disables result caching.
func SetupRouter(cfg *config.AppConfig, mongoClient *mongodb.MongoClient, redisClient *redis.Client) *gin.Engine {
	server := gin.Default()

	customersRepo := customers.NewCustomersRepository(mongoClient)
	accountsRepo := accounts.NewAccountsRepository(mongoClient)
	transactionsRepo := transactions.NewTransactionsRepository(mongoClient)
	loansRepo := loans.NewLoansRepository(mongoClient)
	repaymentsRepo := repayments.NewRepaymentsRepository(mongoClient)

	extractor := history.NewExtractor(customersRepo, accountsRepo, transactionsRepo, loansRepo, repaymentsRepo)

	var scoreCache *repository.ScoreCacheAdapter
	engineCfg := scoring.Config{
		Weights:            scoring.DefaultWeights(),
		CacheTTL:           time.Duration(cfg.Scoring.CacheTTLMinutes) * time.Minute,
		PopulationAverages: cfg.Scoring.PopulationAverages,
	}

	var engine *scoring.Engine
	if redisClient != nil {
		scoreCache = repository.NewScoreCacheAdapter(redisClient)
		engine = scoring.NewEngine(extractor, scoreCache, engineCfg)
	} else {
		engine = scoring.NewEngine(extractor, nil, engineCfg)
	}

	analyticsService := analytics.NewService(customersRepo, engine, cfg.Scoring.AnalyticsWorkers, cfg.Scoring.PopulationAverages)

	scoreHandler := handlers.NewScoreHandler(engine, analyticsService)

	v1 := server.Group("/api/v1")
	{
		v1.GET("/customers/:customer_id/credit-score", scoreHandler.GetCreditScore)
		v1.GET("/customers/:customer_id/credit-score/eligibility", scoreHandler.GetLoanEligibility)
		v1.GET("/customers/:customer_id/credit-score/comparison", scoreHandler.GetScoreComparison)
		v1.GET("/customers/:customer_id/credit-score/factors", scoreHandler.GetScoreFactorsDetailed)
		v1.GET("/admin/credit-score/analytics", scoreHandler.GetAnalytics)
	}

	healthCheckHandler := handlers.NewHealthCheckHandler()
	server.GET("/CreditScoring/HealthCheck", healthCheckHandler.HealthCheck)

	return server
}
