package interfaces

import (
	"context"

	"creditscoring/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CustomerRepositoryInterface interface {
	GetCustomerByID(ctx context.Context, customerID primitive.ObjectID) (*models.Customer, error)
	ListCustomerIDs(ctx context.Context) ([]primitive.ObjectID, error)
	CountCustomers(ctx context.Context) (int64, error)
}

type CustomerStoreInterface interface {
	FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.Customer, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Customer, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error)
}
