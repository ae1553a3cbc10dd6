package interfaces

import (
	"context"

	"creditscoring/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RepaymentRepositoryInterface interface {
	GetRepaymentsByLoanIDs(ctx context.Context, loanIDs []primitive.ObjectID) ([]models.Repayment, error)
}

type RepaymentStoreInterface interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Repayment, error)
}
