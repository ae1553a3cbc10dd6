package interfaces

import (
	"context"

	"creditscoring/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LoanRepositoryInterface interface {
	GetLoansByAccountIDs(ctx context.Context, accountIDs []primitive.ObjectID) ([]models.Loan, error)
}

type LoanStoreInterface interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Loan, error)
}
