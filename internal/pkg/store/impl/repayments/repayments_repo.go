package repayments

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
)

type RepaymentRepository struct {
	repo interfaces.RepaymentStoreInterface
}

func NewRepaymentsRepository(client *mongodb.MongoClient) *RepaymentRepository {
	collection := client.Database.Collection(consts.RepaymentCollection)
	repo := repository.NewMongoRepository[models.Repayment](collection)
	return &RepaymentRepository{repo: repo}
}

func NewRepaymentRepositoryWithInterface(repo interfaces.RepaymentStoreInterface) *RepaymentRepository {
	return &RepaymentRepository{repo: repo}
}

func (rr *RepaymentRepository) GetRepaymentsByLoanIDs(
	ctx context.Context,
	loanIDs []primitive.ObjectID,
) ([]models.Repayment, error) {

	if len(loanIDs) == 0 {
		return nil, nil
	}

	filter := bson.M{"loanId": bson.M{"$in": loanIDs}}

	repayments, err := rr.repo.Find(ctx, filter)
	if err != nil {
		logger.CtxError(ctx, "Error fetching repayments for loans", err,
			slog.Int("loan_count", len(loanIDs)))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched repayments by loan ids", slog.Int("count", len(repayments)))

	return repayments, nil
}
