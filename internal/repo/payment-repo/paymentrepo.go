package paymentrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/shopmesh/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Repository is the payment ledger: one Redis string per transaction,
// keyed by the transaction id and holding its status.
type Repository struct {
	rdb redis.Cmdable
}

func New(rdb redis.Cmdable) *Repository {
	return &Repository{
		rdb: rdb,
	}
}

// Create writes the record only if the id is unused. Records never expire.
func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) error {
	ok, err := r.rdb.SetNX(ctx, txn.ID, string(txn.Status), 0).Result()
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return err
	}
	if !ok {
		zap.L().Error("transaction id already recorded", zap.String("transaction_id", txn.ID))
		return domain.ErrAlreadyExists
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	status, err := r.rdb.Get(ctx, id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return &domain.Transaction{ID: id, Status: domain.TransactionStatus(status)}, nil
}
