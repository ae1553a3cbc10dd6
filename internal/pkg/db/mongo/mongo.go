package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"creditscoring/internal/pkg/config"
	"creditscoring/internal/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func ConnectToMongoDB(ctx context.Context, cfg config.MongoConfig) (*MongoClient, error) {
	return connectWithConnector(ctx, cfg, &DefaultMongoConnector{})
}

func connectWithConnector(ctx context.Context, cfg config.MongoConfig, connector MongoConnector) (*MongoClient, error) {

	mongoURI := buildMongoURI(cfg)

	// Redact username and password for safe logging
	safeURI := redactMongoURI(mongoURI)

	logger.CtxInfo(ctx, "Connecting to MongoDB",
		slog.String("uri", safeURI),
		slog.String("database", cfg.DBName),
	)

	connectTimeout := cfg.ConnectTimeout
	clientOpts := options.Client().
		ApplyURI(mongoURI).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout * 2).
		SetSocketTimeout(connectTimeout * 3).
		SetHeartbeatInterval(10 * time.Second).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize)

	client, err := connector.Connect(ctx, clientOpts)
	if err != nil {
		logger.CtxError(ctx, "Failed to connect to MongoDB", err,
			slog.String("uri", safeURI),
			slog.String("database", cfg.DBName),
		)
		return nil, err
	}

	if err := connector.Ping(ctx, client); err != nil {
		logger.CtxError(ctx, "MongoDB ping failed", err,
			slog.String("uri", safeURI),
			slog.String("database", cfg.DBName),
		)
		return nil, err
	}

	logger.CtxInfo(ctx, "Successfully connected to MongoDB",
		slog.String("uri", safeURI),
		slog.String("database", cfg.DBName),
	)

	db := client.Database(cfg.DBName)

	logger.CtxDebug(ctx, "MongoDB client and database initialized",
		slog.String("db_name", cfg.DBName),
		slog.String("mongo_uri", safeURI),
	)

	return &MongoClient{
		Client:   client,
		Database: db,
	}, nil
}

// buildMongoURI injects credentials into the configured host URI. Both
// mongodb:// and mongodb+srv:// schemes are supported; when no username is
// configured the URI is used as-is.
func buildMongoURI(cfg config.MongoConfig) string {
	if cfg.Username == "" {
		return cfg.URI
	}

	scheme := "mongodb://"
	if strings.HasPrefix(cfg.URI, "mongodb+srv://") {
		scheme = "mongodb+srv://"
	}

	host := strings.TrimPrefix(cfg.URI, scheme)
	host = strings.TrimPrefix(host, "mongodb://")

	return fmt.Sprintf("%s%s:%s@%s",
		scheme,
		url.QueryEscape(cfg.Username),
		url.QueryEscape(cfg.Password),
		host,
	)
}

func Disconnect(client *mongo.Client) error {
	return client.Disconnect(context.Background())
}

// redactMongoURI hides username and password from a MongoDB URI
func redactMongoURI(uri string) string {
	parts := strings.SplitN(uri, "@", 2)
	if len(parts) == 2 {
		scheme := "mongodb://"
		if strings.HasPrefix(uri, "mongodb+srv://") {
			scheme = "mongodb+srv://"
		}
		return scheme + "***:***@" + parts[1]
	}
	return uri // fallback
}
