package cleanup

import (
	"context"

	mongodb "creditscoring/internal/pkg/db/mongo"
	redisdb "creditscoring/internal/pkg/db/redis"
	"creditscoring/internal/pkg/logger"
)

func CleanupResources(ctx context.Context, mongoClient *mongodb.MongoClient, redisClient *redisdb.RedisClient) {
	if mongoClient != nil && mongoClient.Client != nil {
		if err := mongodb.Disconnect(mongoClient.Client); err != nil {
			logger.CtxError(ctx, "Failed to disconnect from MongoDB", err)
		}
	}
	if redisClient != nil && redisClient.Client != nil {
		if err := redisdb.Disconnect(redisClient.Client); err != nil {
			logger.CtxError(ctx, "Failed to disconnect from Redis", err)
		}
	}
}
