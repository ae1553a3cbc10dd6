package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"creditscoring/internal/pkg/models"
	storemodels "creditscoring/internal/pkg/store/models"

	"github.com/redis/go-redis/v9"
)

// ScoreCacheAdapter caches computed ScoreResult documents in Redis. Only the
// result is cached; the financial history bundle is rebuilt on every miss.
type ScoreCacheAdapter struct {
	client *redis.Client
}

func NewScoreCacheAdapter(client *redis.Client) *ScoreCacheAdapter {
	return &ScoreCacheAdapter{client: client}
}

func (a *ScoreCacheAdapter) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return a.client.Set(ctx, key, value, expiration).Err()
}

func (a *ScoreCacheAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	return a.client.Get(ctx, key).Bytes()
}

func (a *ScoreCacheAdapter) Delete(ctx context.Context, key string) error {
	return a.client.Del(ctx, key).Err()
}

func (a *ScoreCacheAdapter) TTL(ctx context.Context, key string) (time.Duration, error) {
	return a.client.TTL(ctx, key).Result()
}

func (a *ScoreCacheAdapter) GetScoreResult(ctx context.Context, customerID string) (*models.ScoreResult, error) {
	key := storemodels.ScoreCacheKeyBuilder(customerID)

	data, err := a.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var result models.ScoreResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached score result: %w", err)
	}

	return &result, nil
}

func (a *ScoreCacheAdapter) SaveScoreResult(
	ctx context.Context,
	customerID string,
	result *models.ScoreResult,
	ttl time.Duration,
) error {
	key := storemodels.ScoreCacheKeyBuilder(customerID)

	if ttl <= 0 {
		ttl = time.Minute
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal score result: %w", err)
	}

	return a.Set(ctx, key, data, ttl)
}

func (a *ScoreCacheAdapter) DeleteScoreResult(ctx context.Context, customerID string) error {
	return a.Delete(ctx, storemodels.ScoreCacheKeyBuilder(customerID))
}
