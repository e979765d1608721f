package repo

import (
	"testing"

	orderrepo "github.com/GlebRadaev/shopmesh/internal/repo/order-repo"
	paymentrepo "github.com/GlebRadaev/shopmesh/internal/repo/payment-repo"
	userrepo "github.com/GlebRadaev/shopmesh/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repos := NewIdentity(mockDB)

	assert.IsType(t, &userrepo.Repository{}, repos.UserRepo)
	assert.Nil(t, repos.OrderRepo)
	assert.Nil(t, repos.PaymentRepo)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestNewOrders(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repos := NewOrders(mockDB)

	assert.IsType(t, &orderrepo.Repository{}, repos.OrderRepo)
	assert.Nil(t, repos.UserRepo)
	assert.Nil(t, repos.PaymentRepo)
}

func TestNewPayment(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	repos := NewPayment(client)

	assert.IsType(t, &paymentrepo.Repository{}, repos.PaymentRepo)
	assert.Nil(t, repos.UserRepo)
	assert.Nil(t, repos.OrderRepo)
}
