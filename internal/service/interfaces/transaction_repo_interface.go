package interfaces

import (
	"context"

	"creditscoring/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TransactionRepositoryInterface interface {
	// GetTransactionsByAccountIDs returns transactions newest first.
	GetTransactionsByAccountIDs(ctx context.Context, accountIDs []primitive.ObjectID) ([]models.Transaction, error)
}

type TransactionStoreInterface interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Transaction, error)
}
