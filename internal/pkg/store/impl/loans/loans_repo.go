package loans

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

type LoanRepository struct {
	repo interfaces.LoanStoreInterface
}

func NewLoansRepository(client *mongodb.MongoClient) *LoanRepository {
	collection := client.Database.Collection(consts.LoanCollection)
	repo := repository.NewMongoRepository[models.Loan](collection)
	return &LoanRepository{repo: repo}
}

func NewLoanRepositoryWithInterface(repo interfaces.LoanStoreInterface) *LoanRepository {
	return &LoanRepository{repo: repo}
}

func (lr *LoanRepository) GetLoansByAccountIDs(
	ctx context.Context,
	accountIDs []primitive.ObjectID,
) ([]models.Loan, error) {

	if len(accountIDs) == 0 {
		return nil, nil
	}

	filter := bson.M{"accountId": bson.M{"$in": accountIDs}}

	loans, err := lr.repo.Find(ctx, filter)
	if err != nil {
		logger.CtxError(ctx, "Error fetching loans for accounts", err,
			slog.Int("account_count", len(accountIDs)))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched loans by account ids", slog.Int("count", len(loans)))

	return loans, nil
}
