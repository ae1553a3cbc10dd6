package transactions

import (
	"context"
	"log/slog"

	"creditscoring/internal/pkg/consts"
	mongodb "creditscoring/internal/pkg/db/mongo"
	"creditscoring/internal/pkg/logger"
	"creditscoring/internal/pkg/store/models"
	"creditscoring/internal/pkg/store/repository"
	"creditscoring/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TransactionRepository struct {
	repo interfaces.TransactionStoreInterface
}

func NewTransactionsRepository(client *mongodb.MongoClient) *TransactionRepository {
	collection := client.Database.Collection(consts.TransactionCollection)
	repo := repository.NewMongoRepository[models.Transaction](collection)
	return &TransactionRepository{repo: repo}
}

func NewTransactionRepositoryWithInterface(repo interfaces.TransactionStoreInterface) *TransactionRepository {
	return &TransactionRepository{repo: repo}
}

// GetTransactionsByAccountIDs returns every transaction belonging to the
// given accounts, newest first. Timestamp ordering matters to the pattern
// calculators downstream.
func (tr *TransactionRepository) GetTransactionsByAccountIDs(
	ctx context.Context,
	accountIDs []primitive.ObjectID,
) ([]models.Transaction, error) {

	if len(accountIDs) == 0 {
		return nil, nil
	}

	filter := bson.M{"accountId": bson.M{"$in": accountIDs}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	txns, err := tr.repo.Find(ctx, filter, opts)
	if err != nil {
		logger.CtxError(ctx, "Error fetching transactions for accounts", err,
			slog.Int("account_count", len(accountIDs)))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched transactions by account ids", slog.Int("count", len(txns)))

	return txns, nil
}
