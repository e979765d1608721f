package orderservice

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/shopmesh/internal/domain"
	"github.com/GlebRadaev/shopmesh/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, order *domain.Order) error
	FindOrdersByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
}

type Service struct {
	repo  Repo
	newID func() string
}

func New(repo Repo) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

// CreateOrder stores the order under the caller's identity as it reads in the token.
func (s *Service) CreateOrder(ctx context.Context, owner auth.Identity, item string, price float64) (*domain.Order, error) {
	order := &domain.Order{
		ID:        s.newID(),
		Item:      item,
		Price:     price,
		UserID:    owner.UserID,
		Username:  owner.Username,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, order); err != nil {
		zap.L().Error("can't save order: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("order created", zap.String("order_id", order.ID), zap.Int64("user_id", owner.UserID))
	return order, nil
}

func (s *Service) GetOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := s.repo.FindOrdersByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}
