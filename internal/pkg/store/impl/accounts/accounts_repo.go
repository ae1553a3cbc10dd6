package accounts

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

type AccountRepository struct {
	repo interfaces.AccountStoreInterface
}

func NewAccountsRepository(client *mongodb.MongoClient) *AccountRepository {
	collection := client.Database.Collection(consts.AccountCollection)
	repo := repository.NewMongoRepository[models.Account](collection)
	return &AccountRepository{repo: repo}
}

func NewAccountRepositoryWithInterface(repo interfaces.AccountStoreInterface) *AccountRepository {
	return &AccountRepository{repo: repo}
}

func (ar *AccountRepository) GetAccountsByCustomerID(
	ctx context.Context,
	customerID primitive.ObjectID,
) ([]models.Account, error) {

	filter := bson.M{"customerId": customerID}

	accounts, err := ar.repo.Find(ctx, filter)
	if err != nil {
		logger.CtxError(ctx, "Error fetching accounts for customer", err,
			slog.String("customer_id", customerID.Hex()))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched accounts by customer id",
		slog.String("customer_id", customerID.Hex()),
		slog.Int("count", len(accounts)),
	)

	return accounts, nil
}
