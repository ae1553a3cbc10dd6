package customers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"creditscoring/internal/pkg/consts"
	mongodb "creditscoring/internal/pkg/db/mongo"
	"creditscoring/internal/pkg/logger"
	"creditscoring/internal/pkg/store/models"
	"creditscoring/internal/pkg/store/repository"
	"creditscoring/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CustomerRepository struct {
	repo interfaces.CustomerStoreInterface
}

func NewCustomersRepository(client *mongodb.MongoClient) *CustomerRepository {
	collection := client.Database.Collection(consts.CustomerCollection)
	repo := repository.NewMongoRepository[models.Customer](collection)
	return &CustomerRepository{repo: repo}
}

func NewCustomerRepositoryWithInterface(repo interfaces.CustomerStoreInterface) *CustomerRepository {
	return &CustomerRepository{repo: repo}
}

func (cr *CustomerRepository) GetCustomerByID(
	ctx context.Context,
	customerID primitive.ObjectID,
) (*models.Customer, error) {

	filter := bson.M{"_id": customerID}
	customer, err := cr.repo.FindOne(ctx, filter, options.FindOne())

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.CtxWarn(ctx, "No customer found for id", slog.String("customer_id", customerID.Hex()))
			return nil, err
		}
		logger.CtxError(ctx, "Error finding customer by id", err, slog.String("customer_id", customerID.Hex()))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched customer", slog.String("customer_id", customerID.Hex()))
	return &customer, nil
}

func (cr *CustomerRepository) ListCustomerIDs(ctx context.Context) ([]primitive.ObjectID, error) {

	values, err := cr.repo.Distinct(ctx, "_id", bson.M{})
	if err != nil {
		logger.CtxError(ctx, "Error listing customer ids", err)
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		id, ok := v.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("unexpected customer id type %T", v)
		}
		ids = append(ids, id)
	}

	logger.CtxDebug(ctx, "Listed customer ids", slog.Int("count", len(ids)))
	return ids, nil
}

func (cr *CustomerRepository) CountCustomers(ctx context.Context) (int64, error) {

	count, err := cr.repo.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.CtxError(ctx, "Error counting customers", err)
		return 0, err
	}

	return count, nil
}
