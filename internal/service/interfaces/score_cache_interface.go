package interfaces

import (
	"context"
	"time"

	"creditscoring/internal/pkg/models"
)

// ScoreCacheInterface caches computed score results only. The underlying
// financial history bundle is never cached.
type ScoreCacheInterface interface {
	GetScoreResult(ctx context.Context, customerID string) (*models.ScoreResult, error)
	SaveScoreResult(ctx context.Context, customerID string, result *models.ScoreResult, ttl time.Duration) error
	DeleteScoreResult(ctx context.Context, customerID string) error
}
