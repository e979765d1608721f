package orderrepo

import (
	"context"

	"github.com/GlebRadaev/shopmesh/internal/domain"
	"github.com/GlebRadaev/shopmesh/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (id, item, price, user_id, username, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, order.ID, order.Item, order.Price, order.UserID, order.Username, order.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		zap.L().Error("can't save order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindOrdersByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	query := `
        SELECT id, item, price, user_id, username, created_at
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.Item, &order.Price, &order.UserID, &order.Username, &order.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate order rows", zap.Error(err))
		return nil, err
	}
	return orders, nil
}
