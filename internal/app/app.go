package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/shopmesh/internal/config"
	"github.com/GlebRadaev/shopmesh/internal/handlers"
	"github.com/GlebRadaev/shopmesh/internal/pg"
	"github.com/GlebRadaev/shopmesh/internal/repo"
	"github.com/GlebRadaev/shopmesh/internal/service"
	"github.com/GlebRadaev/shopmesh/migrations"
	"github.com/GlebRadaev/shopmesh/pkg/auth"
	"github.com/GlebRadaev/shopmesh/pkg/logger"
	redisclient "github.com/GlebRadaev/shopmesh/pkg/redis"
)

// Kind selects which of the services a process runs.
type Kind string

const (
	Identity Kind = "identity"
	Orders   Kind = "orders"
	Payment  Kind = "payment"
)

var ErrUnknownKind = errors.New("unknown service kind")

var defaultAddress = map[Kind]string{
	Identity: ":5001",
	Orders:   ":5002",
	Payment:  ":5003",
}

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	kind Kind
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	health  handlers.HealthCheck
	closers []func()

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New(kind Kind) *Application {
	return &Application{
		kind:  kind,
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	addr, ok := defaultAddress[a.kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, a.kind)
	}

	cfg, err := config.New(addr)
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	err = logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	access, err := logger.NewAccessLogger(cfg, string(a.kind), os.Stdout)
	if err != nil {
		return fmt.Errorf("can't init access logger: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.JWTSecret)
	if err != nil {
		return fmt.Errorf("can't init token service: %w", err)
	}

	a.cfg = cfg
	if err = a.connectStores(ctx); err != nil {
		a.closeStores()
		return err
	}
	a.srv = service.New(a.repo, jwtService, cfg.TokenTTL)
	a.api = handlers.New(a.srv, jwtService)
	a.api.Access = access
	a.api.Health = a.health

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("service", string(a.kind)))
	return nil
}

func (a *Application) connectStores(ctx context.Context) error {
	switch a.kind {
	case Identity, Orders:
		pool, err := pg.NewPool(ctx, a.cfg.Database)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return fmt.Errorf("can't build pgx pool: %w", err)
		}
		a.closers = append(a.closers, pool.Close)

		dir, newRepo := migrations.IdentityDir, repo.NewIdentity
		if a.kind == Orders {
			dir, newRepo = migrations.OrdersDir, repo.NewOrders
		}
		if err := pg.RunMigrations(pool, migrations.Migrations, dir); err != nil {
			zap.L().Error("migrations failed: ", zap.Error(err))
			return fmt.Errorf("can't run migrations: %w", err)
		}
		a.repo = newRepo(pool)
		a.health = pool.Ping
	case Payment:
		client, err := redisclient.NewClient(ctx, a.cfg)
		if err != nil {
			zap.L().Error("connect redis failed: ", zap.Error(err))
			return fmt.Errorf("can't connect redis: %w", err)
		}
		a.closers = append(a.closers, func() {
			if err := client.Close(); err != nil {
				zap.L().Error("can't close redis client", zap.Error(err))
			}
		})
		a.repo = repo.NewPayment(client)
		a.health = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
	}
	return nil
}

func (a *Application) closeStores() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.closeStores()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
