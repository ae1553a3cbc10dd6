package repository

import (
	"context"

	"creditscoring/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository is a typed read-only wrapper around a Mongo collection.
// The scoring engine never writes back to storage, so only query operations
// are exposed.
type MongoRepository[T any] struct {
	collection interfaces.MongoRepositoryInterface
}

func NewMongoRepository[T any](collection interfaces.MongoRepositoryInterface) *MongoRepository[T] {
	return &MongoRepository[T]{collection: collection}
}

func (r *MongoRepository[T]) FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (T, error) {

	var result T

	if err := r.collection.FindOne(ctx, filter, opt).Decode(&result); err != nil {
		return result, err
	}

	return result, nil

}

func (r *MongoRepository[T]) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]T, error) {

	if cursor, err := r.collection.Find(ctx, filter, opts...); err != nil {
		return nil, err
	} else {
		defer func() {
			if err := cursor.Close(ctx); err != nil {
				_ = err
			}
		}()

		var results []T
		for cursor.Next(ctx) {
			var entity T
			if err := cursor.Decode(&entity); err != nil {
				return nil, err
			}
			results = append(results, entity)
		}
		return results, cursor.Err()
	}
}

func (r *MongoRepository[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {

	if count, err := r.collection.CountDocuments(ctx, filter); err != nil {
		return 0, err
	} else {
		return count, nil
	}
}

func (r *MongoRepository[T]) Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error) {

	if values, err := r.collection.Distinct(ctx, fieldName, filter); err != nil {
		return nil, err
	} else {
		return values, nil
	}
}
