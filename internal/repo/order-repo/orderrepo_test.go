package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/shopmesh/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertOrderQuery = `
        INSERT INTO orders (id, item, price, user_id, username, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	selectOrdersQuery = `
        SELECT id, item, price, user_id, username, created_at
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at ASC
    `
)

var orderColumns = []string{"id", "item", "price", "user_id", "username", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	order := &domain.Order{
		ID:        "6c1f1a3e-3c1d-4f0e-9b1a-0d7a0b1c2d3e",
		Item:      "book",
		Price:     10,
		UserID:    1,
		Username:  "alice",
		CreatedAt: now,
	}

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   bool
		expectedErr error
	}{
		{
			name: "Order saved",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(insertOrderQuery)).
					WithArgs(order.ID, "book", 10.0, int64(1), "alice", now).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Duplicate id",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(insertOrderQuery)).
					WithArgs(order.ID, "book", 10.0, int64(1), "alice", now).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr:   true,
			expectedErr: domain.ErrAlreadyExists,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(insertOrderQuery)).
					WithArgs(order.ID, "book", 10.0, int64(1), "alice", now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), order)
			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindOrdersByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		userID    int64
		mockSetup func()
		expectErr bool
		result    []domain.Order
	}{
		{
			name:   "Orders of the owner only",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows(orderColumns).
					AddRow("a", "book", 10.0, int64(1), "alice", now).
					AddRow("b", "pen", 2.5, int64(1), "alice", now.Add(time.Second))
				mock.ExpectQuery(regexp.QuoteMeta(selectOrdersQuery)).WithArgs(int64(1)).WillReturnRows(rows)
			},
			result: []domain.Order{
				{ID: "a", Item: "book", Price: 10, UserID: 1, Username: "alice", CreatedAt: now},
				{ID: "b", Item: "pen", Price: 2.5, UserID: 1, Username: "alice", CreatedAt: now.Add(time.Second)},
			},
		},
		{
			name:   "No orders",
			userID: 2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectOrdersQuery)).WithArgs(int64(2)).
					WillReturnRows(pgxmock.NewRows(orderColumns))
			},
			result: []domain.Order{},
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectOrdersQuery)).WithArgs(int64(1)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name:   "Scan error",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows(orderColumns).
					AddRow("a", "book", "not-a-price", int64(1), "alice", now)
				mock.ExpectQuery(regexp.QuoteMeta(selectOrdersQuery)).WithArgs(int64(1)).WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindOrdersByUserID(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
