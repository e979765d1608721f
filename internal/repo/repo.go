package repo

import (
	"github.com/GlebRadaev/shopmesh/internal/pg"
	orderrepo "github.com/GlebRadaev/shopmesh/internal/repo/order-repo"
	paymentrepo "github.com/GlebRadaev/shopmesh/internal/repo/payment-repo"
	userrepo "github.com/GlebRadaev/shopmesh/internal/repo/user-repo"
	"github.com/GlebRadaev/shopmesh/internal/service/authservice"
	"github.com/GlebRadaev/shopmesh/internal/service/orderservice"
	"github.com/GlebRadaev/shopmesh/internal/service/paymentservice"
	"github.com/redis/go-redis/v9"
)

// Repositories holds the stores of a single service process; the ones the
// process does not own stay nil.
type Repositories struct {
	UserRepo    authservice.Repo
	OrderRepo   orderservice.Repo
	PaymentRepo paymentservice.Repo
}

func NewIdentity(conn pg.Database) *Repositories {
	return &Repositories{UserRepo: userrepo.New(conn)}
}

func NewOrders(conn pg.Database) *Repositories {
	return &Repositories{OrderRepo: orderrepo.New(conn)}
}

func NewPayment(rdb redis.Cmdable) *Repositories {
	return &Repositories{PaymentRepo: paymentrepo.New(rdb)}
}
