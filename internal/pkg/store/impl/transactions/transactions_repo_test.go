package transactions

import (
	"context"
	"errors"
	"testing"

	"creditscoring/internal/pkg/store/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mockTransactionStore struct {
	findFunc func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Transaction, error)
}

func (m *mockTransactionStore) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Transaction, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, filter, opts...)
	}
	return nil, errors.New("mock find not implemented")
}

func TestGetTransactionsByAccountIDs(t *testing.T) {
	accountIDs := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

	t.Run("queries with an $in filter sorted newest first", func(t *testing.T) {
		expected := []models.Transaction{{ID: primitive.NewObjectID(), Amount: 500}}
		store := &mockTransactionStore{
			findFunc: func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Transaction, error) {
				assert.Equal(t, bson.M{"accountId": bson.M{"$in": accountIDs}}, filter)
				require.Len(t, opts, 1)
				assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, opts[0].Sort)
				return expected, nil
			},
		}
		repo := NewTransactionRepositoryWithInterface(store)

		txns, err := repo.GetTransactionsByAccountIDs(context.Background(), accountIDs)
		require.NoError(t, err)
		assert.Equal(t, expected, txns)
	})

	t.Run("no account ids short-circuits without querying", func(t *testing.T) {
		store := &mockTransactionStore{
			findFunc: func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Transaction, error) {
				t.Fatal("Find should not be called for an empty id list")
				return nil, nil
			},
		}
		repo := NewTransactionRepositoryWithInterface(store)

		txns, err := repo.GetTransactionsByAccountIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.Nil(t, txns)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		dbErr := errors.New("find failed")
		store := &mockTransactionStore{
			findFunc: func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Transaction, error) {
				return nil, dbErr
			},
		}
		repo := NewTransactionRepositoryWithInterface(store)

		_, err := repo.GetTransactionsByAccountIDs(context.Background(), accountIDs)
		assert.ErrorIs(t, err, dbErr)
	})
}
