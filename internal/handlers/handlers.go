package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/GlebRadaev/shopmesh/docs"
	authhandlers "github.com/GlebRadaev/shopmesh/internal/handlers/auth"
	ordershandlers "github.com/GlebRadaev/shopmesh/internal/handlers/orders"
	paymenthandlers "github.com/GlebRadaev/shopmesh/internal/handlers/payment"
	"github.com/GlebRadaev/shopmesh/internal/service"
	"github.com/GlebRadaev/shopmesh/pkg/auth"
	"github.com/GlebRadaev/shopmesh/pkg/utils"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Pay(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
}

// HealthCheck reports whether the store behind a service answers.
type HealthCheck func(ctx context.Context) error

type Handlers struct {
	AuthHandler    AuthHandler
	OrderHandler   OrderHandler
	PaymentHandler PaymentHandler

	Verifier auth.Verifier
	Access   zerolog.Logger
	Health   HealthCheck
}

// New builds a handler for every service present in s.
func New(s *service.Services, verifier auth.Verifier) *Handlers {
	h := &Handlers{
		Verifier: verifier,
		Access:   zerolog.Nop(),
	}
	if s.AuthService != nil {
		h.AuthHandler = authhandlers.New(s.AuthService)
	}
	if s.OrderService != nil {
		h.OrderHandler = ordershandlers.New(s.OrderService)
	}
	if s.PaymentService != nil {
		h.PaymentHandler = paymenthandlers.New(s.PaymentService)
	}
	return h
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		hlog.NewHandler(h.Access),
		hlog.RequestIDHandler("req_id", "X-Request-Id"),
		hlog.AccessHandler(logRequest),
	)
	r.Get("/ping", h.ping)
	if instance := h.docsInstance(); instance != "" {
		r.Get("/swagger/*", swaggerHandler(instance))
	}

	if h.AuthHandler != nil {
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.Get("/profile", h.AuthHandler.Profile)
		})
	}

	if h.OrderHandler != nil {
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.Verifier))
			r.Post("/create", h.OrderHandler.CreateOrder)
			r.Get("/check", h.OrderHandler.GetOrders)
		})
	}

	if h.PaymentHandler != nil {
		r.With(auth.Middleware(h.Verifier)).Post("/pay", h.PaymentHandler.Pay)
		r.Get("/pay/status/{id}", h.PaymentHandler.GetStatus)
	}

	return r
}

// docsInstance names the swagger document of the service these handlers serve.
func (h *Handlers) docsInstance() string {
	switch {
	case h.AuthHandler != nil:
		return "identity"
	case h.OrderHandler != nil:
		return "orders"
	case h.PaymentHandler != nil:
		return "payment"
	}
	return ""
}

func swaggerHandler(instance string) http.HandlerFunc {
	return httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
		httpSwagger.InstanceName(instance),
	)
}

func logRequest(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Stringer("url", r.URL).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}

func (h *Handlers) ping(w http.ResponseWriter, r *http.Request) {
	if h.Health != nil {
		if err := h.Health(r.Context()); err != nil {
			zap.L().Error("health check failed", zap.Error(err))
			utils.RespondWithError(w, http.StatusServiceUnavailable, "storage unavailable")
			return
		}
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
