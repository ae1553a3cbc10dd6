package interfaces

import (
	"context"

	"creditscoring/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AccountRepositoryInterface interface {
	GetAccountsByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]models.Account, error)
}

type AccountStoreInterface interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Account, error)
}
