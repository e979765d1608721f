package service

import (
	"time"

	"github.com/GlebRadaev/shopmesh/internal/handlers/auth"
	"github.com/GlebRadaev/shopmesh/internal/handlers/orders"
	"github.com/GlebRadaev/shopmesh/internal/handlers/payment"
	"github.com/GlebRadaev/shopmesh/internal/repo"
	authservice "github.com/GlebRadaev/shopmesh/internal/service/authservice"
	orderservice "github.com/GlebRadaev/shopmesh/internal/service/orderservice"
	paymentservice "github.com/GlebRadaev/shopmesh/internal/service/paymentservice"
	pkgauth "github.com/GlebRadaev/shopmesh/pkg/auth"
)

type Services struct {
	AuthService    auth.Service
	OrderService   orders.Service
	PaymentService payment.Service
}

// New builds a service for every repository present in repo.
func New(repo *repo.Repositories, jwtService pkgauth.JWTServiceInterface, tokenTTL time.Duration) *Services {
	services := &Services{}
	if repo.UserRepo != nil {
		services.AuthService = authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService, tokenTTL)
	}
	if repo.OrderRepo != nil {
		services.OrderService = orderservice.New(repo.OrderRepo)
	}
	if repo.PaymentRepo != nil {
		services.PaymentService = paymentservice.New(repo.PaymentRepo)
	}
	return services
}
