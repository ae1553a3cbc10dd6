package main

import (
	"context"
	"fmt"
	"log"

	"creditscoring/internal/app/router"
	"creditscoring/internal/pkg/cleanup"
	config "creditscoring/internal/pkg/config"
	mongodb "creditscoring/internal/pkg/db/mongo"
	redisdb "creditscoring/internal/pkg/db/redis"
	"creditscoring/internal/pkg/logger"
)

func main() {

	ctx := context.Background()

	logger.Init()

	cfg, err := config.LoadFromConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to MongoDB
	mongoClient, err := mongodb.ConnectToMongoDB(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Connect to Redis
	redisClient, err := redisdb.ConnectToRedis(ctx, cfg.Redis, nil)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	defer cleanup.CleanupResources(ctx, mongoClient, redisClient)

	server := router.SetupRouter(cfg, mongoClient, redisClient.Client)
	port := cfg.Server.Port

	if err := server.Run(":" + fmt.Sprintf("%d", port)); err != nil {
		logger.CtxError(ctx, "Failed to start server", err)
	}
}
