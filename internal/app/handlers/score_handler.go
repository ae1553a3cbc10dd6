package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"creditscoring/internal/pkg/log_messages"
	"creditscoring/internal/pkg/logger"
	"creditscoring/internal/pkg/models"
	"creditscoring/internal/service/history"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate = validator.New()

// ScoringServiceInterface is the engine surface the HTTP layer consumes.
type ScoringServiceInterface interface {
	CalculateScore(ctx context.Context, customerID primitive.ObjectID) (*models.ScoreResult, error)
	GetLoanEligibility(ctx context.Context, customerID primitive.ObjectID, requestedAmount *float64) (*models.EligibilityResult, error)
	GetScoreComparison(ctx context.Context, customerID primitive.ObjectID) (*models.ComparisonResult, error)
	GetScoreFactorsDetailed(ctx context.Context, customerID primitive.ObjectID) (*models.FactorsDetailedResult, error)
}

type AnalyticsServiceInterface interface {
	GenerateAnalytics(ctx context.Context) (*models.AnalyticsResult, error)
}

type ScoreHandler struct {
	scoring   ScoringServiceInterface
	analytics AnalyticsServiceInterface
}

func NewScoreHandler(scoring ScoringServiceInterface, analytics AnalyticsServiceInterface) *ScoreHandler {
	return &ScoreHandler{
		scoring:   scoring,
		analytics: analytics,
	}
}

type eligibilityQuery struct {
	RequestedAmount *float64 `form:"requested_amount" validate:"omitempty,gt=0"`
}

// setupTraceContext tags the request context with a fresh trace ID.
func (h *ScoreHandler) setupTraceContext(c *gin.Context) context.Context {
	traceID := uuid.New().String()
	ctx := logger.WithTraceID(c.Request.Context(), traceID)

	logger.CtxInfo(ctx, "New scoring request started",
		slog.String("path", c.FullPath()),
		slog.String("customer_id", c.Param("customer_id")),
	)

	return ctx
}

func (h *ScoreHandler) customerID(c *gin.Context) (primitive.ObjectID, bool) {
	customerID, err := primitive.ObjectIDFromHex(c.Param("customer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": log_messages.ErrorInvalidCustomerIDFormat})
		return primitive.NilObjectID, false
	}
	return customerID, true
}

func (h *ScoreHandler) GetCreditScore(c *gin.Context) {
	ctx := h.setupTraceContext(c)

	customerID, ok := h.customerID(c)
	if !ok {
		return
	}

	result, err := h.scoring.CalculateScore(ctx, customerID)
	if err != nil {
		h.writeError(c, ctx, err, log_messages.ErrorCalculatingScore)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ScoreHandler) GetLoanEligibility(c *gin.Context) {
	ctx := h.setupTraceContext(c)

	customerID, ok := h.customerID(c)
	if !ok {
		return
	}

	var query eligibilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requested_amount must be greater than zero"})
		return
	}

	result, err := h.scoring.GetLoanEligibility(ctx, customerID, query.RequestedAmount)
	if err != nil {
		h.writeError(c, ctx, err, log_messages.ErrorCalculatingScore)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ScoreHandler) GetScoreComparison(c *gin.Context) {
	ctx := h.setupTraceContext(c)

	customerID, ok := h.customerID(c)
	if !ok {
		return
	}

	result, err := h.scoring.GetScoreComparison(ctx, customerID)
	if err != nil {
		h.writeError(c, ctx, err, log_messages.ErrorCalculatingScore)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ScoreHandler) GetScoreFactorsDetailed(c *gin.Context) {
	ctx := h.setupTraceContext(c)

	customerID, ok := h.customerID(c)
	if !ok {
		return
	}

	result, err := h.scoring.GetScoreFactorsDetailed(ctx, customerID)
	if err != nil {
		h.writeError(c, ctx, err, log_messages.ErrorCalculatingScore)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ScoreHandler) GetAnalytics(c *gin.Context) {
	ctx := h.setupTraceContext(c)

	result, err := h.analytics.GenerateAnalytics(ctx)
	if err != nil {
		logger.CtxError(ctx, "Failed to generate analytics", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate analytics"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ScoreHandler) writeError(c *gin.Context, ctx context.Context, err error, logMsg string) {
	if errors.Is(err, history.ErrCustomerNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": log_messages.ErrorCustomerNotFound})
		return
	}

	logger.CtxError(ctx, logMsg, err, slog.String("customer_id", c.Param("customer_id")))
	c.JSON(http.StatusInternalServerError, gin.H{"error": logMsg})
}
