package paymentservice

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

import (
	"context"
	"errors"
	"strings"

	"github.com/GlebRadaev/shopmesh/internal/domain"
	"github.com/GlebRadaev/shopmesh/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, txn *domain.Transaction) error
	FindByID(ctx context.Context, id string) (*domain.Transaction, error)
}

const TransactionIDPrefix = "txn_"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDuplicateID         = errors.New("transaction id already recorded")
)

type Service struct {
	repo  Repo
	newID func() string
}

func New(repo Repo) *Service {
	return &Service{
		repo:  repo,
		newID: newTransactionID,
	}
}

func newTransactionID() string {
	return TransactionIDPrefix + uuid.NewString()
}

// Pay records a simulated payment outcome. No gateway is involved, the
// outcome is always SUCCESS. The write is insert-if-absent, so a repeated
// id fails instead of replacing an existing record.
func (s *Service) Pay(ctx context.Context, payer auth.Identity, amount float64) (*domain.Transaction, error) {
	txn := &domain.Transaction{
		ID:     s.newID(),
		Status: domain.TransactionSuccess,
	}

	if err := s.repo.Create(ctx, txn); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrDuplicateID
		}
		zap.L().Error("can't record transaction: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("payment recorded",
		zap.String("transaction_id", txn.ID),
		zap.Int64("user_id", payer.UserID),
		zap.Float64("amount", amount),
	)
	return txn, nil
}

// GetStatus does no ownership check: anyone holding the id can read its status.
func (s *Service) GetStatus(ctx context.Context, id string) (*domain.Transaction, error) {
	if !strings.HasPrefix(id, TransactionIDPrefix) {
		return nil, ErrTransactionNotFound
	}
	txn, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't read transaction: ", zap.Error(err))
		return nil, err
	}
	if txn == nil {
		return nil, ErrTransactionNotFound
	}
	return txn, nil
}
