// Package smoke drives the register, login, order and payment flow against running services.
package smoke

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/shopmesh/internal/dto"
	"github.com/GlebRadaev/shopmesh/pkg/clients"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrOrderMissing     = errors.New("created order missing from list")
	ErrDuplicateTxn     = errors.New("transaction id returned twice")
	ErrStatusMismatch   = errors.New("status differs from pay response")
)

type Config struct {
	IdentityURL string
	OrdersURL   string
	PaymentURL  string
	Username    string
	Password    string
	Item        string
	Price       float64
	Parallel    int
}

type Report struct {
	UserID       int64
	OrderID      string
	Orders       int
	Transactions []string
}

type Runner struct {
	cfg    Config
	client clients.HTTPClientI
}

func New(cfg Config, client clients.HTTPClientI) *Runner {
	if cfg.Parallel < 1 {
		cfg.Parallel = 1
	}
	if cfg.Item == "" {
		cfg.Item = "book"
	}
	if cfg.Price == 0 {
		cfg.Price = 10
	}
	return &Runner{cfg: cfg, client: client}
}

func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	userID, err := r.register(ctx)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	report.UserID = userID

	token, err := r.login(ctx)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	headers := func() http.Header {
		return http.Header{"Authorization": {"Bearer " + token}}
	}

	orderID, err := r.createOrder(ctx, headers())
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	report.OrderID = orderID

	orders, err := r.checkOrders(ctx, headers(), report.UserID)
	if err != nil {
		return nil, fmt.Errorf("check orders: %w", err)
	}
	report.Orders = orders

	payments, err := r.pay(ctx, headers)
	if err != nil {
		return nil, fmt.Errorf("pay: %w", err)
	}
	for _, p := range payments {
		report.Transactions = append(report.Transactions, p.TransactionID)
	}

	if err := r.checkStatuses(ctx, payments); err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}

	zap.L().Info("smoke run passed",
		zap.Int64("user_id", report.UserID),
		zap.String("order_id", report.OrderID),
		zap.Int("transactions", len(report.Transactions)),
	)
	return report, nil
}

// register treats an existing user as success so the run can be repeated.
func (r *Runner) register(ctx context.Context) (int64, error) {
	status, body, err := r.postJSON(ctx, r.cfg.IdentityURL+"/users/register", nil, dto.RegisterRequestDTO{
		Username: r.cfg.Username,
		Password: r.cfg.Password,
	})
	if err != nil {
		return 0, err
	}
	switch status {
	case http.StatusCreated:
		var resp dto.RegisterResponseDTO
		if err := json.Unmarshal(body, &resp); err != nil {
			return 0, err
		}
		return resp.UserID, nil
	case http.StatusConflict:
		zap.L().Info("user already registered", zap.String("username", r.cfg.Username))
		return 0, nil
	}
	return 0, unexpected(status, body)
}

func (r *Runner) login(ctx context.Context) (string, error) {
	status, body, err := r.postJSON(ctx, r.cfg.IdentityURL+"/users/login", nil, dto.LoginRequestDTO{
		Username: r.cfg.Username,
		Password: r.cfg.Password,
	})
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", unexpected(status, body)
	}
	var resp dto.LoginResponseDTO
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (r *Runner) createOrder(ctx context.Context, headers http.Header) (string, error) {
	status, body, err := r.postJSON(ctx, r.cfg.OrdersURL+"/create", headers, dto.CreateOrderRequestDTO{
		Item:  r.cfg.Item,
		Price: r.cfg.Price,
	})
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", unexpected(status, body)
	}
	var resp dto.CreateOrderResponseDTO
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", err
	}
	return resp.OrderID, nil
}

// checkOrders requires the created order in the list. userID is zero when the
// user was already registered and its id is unknown.
func (r *Runner) checkOrders(ctx context.Context, headers http.Header, userID int64) (int, error) {
	status, body, _, err := r.client.Get(ctx, r.cfg.OrdersURL+"/check", headers)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, unexpected(status, body)
	}
	var orders []dto.GetOrdersResponseDTO
	if err := json.Unmarshal(body, &orders); err != nil {
		return 0, err
	}
	for _, o := range orders {
		if userID != 0 && o.UserID != userID {
			continue
		}
		if o.Item == r.cfg.Item && o.Price == r.cfg.Price && o.Username == r.cfg.Username {
			return len(orders), nil
		}
	}
	return 0, ErrOrderMissing
}

// pay fires Parallel payments at once and requires every id to be distinct.
func (r *Runner) pay(ctx context.Context, headers func() http.Header) ([]dto.PayResponseDTO, error) {
	payments := make([]dto.PayResponseDTO, r.cfg.Parallel)

	g, gCtx := errgroup.WithContext(ctx)
	for i := range payments {
		g.Go(func() error {
			status, body, err := r.postJSON(gCtx, r.cfg.PaymentURL+"/pay", headers(), dto.PayRequestDTO{Amount: r.cfg.Price})
			if err != nil {
				return err
			}
			if status != http.StatusOK {
				return unexpected(status, body)
			}
			return json.Unmarshal(body, &payments[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(payments))
	for _, p := range payments {
		if _, ok := seen[p.TransactionID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTxn, p.TransactionID)
		}
		seen[p.TransactionID] = struct{}{}
	}
	return payments, nil
}

func (r *Runner) checkStatuses(ctx context.Context, payments []dto.PayResponseDTO) error {
	g, gCtx := errgroup.WithContext(ctx)
	for _, p := range payments {
		g.Go(func() error {
			status, body, _, err := r.client.Get(gCtx, r.cfg.PaymentURL+"/pay/status/"+p.TransactionID, nil)
			if err != nil {
				return err
			}
			if status != http.StatusOK {
				return unexpected(status, body)
			}
			var resp dto.TransactionStatusResponseDTO
			if err := json.Unmarshal(body, &resp); err != nil {
				return err
			}
			if resp.Status != p.Status || resp.TransactionID != p.TransactionID {
				return fmt.Errorf("%w: %s is %s, paid as %s", ErrStatusMismatch, p.TransactionID, resp.Status, p.Status)
			}
			return nil
		})
	}
	return g.Wait()
}

func (r *Runner) postJSON(ctx context.Context, url string, headers http.Header, payload any) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}
	status, respBody, _, err := r.client.Post(ctx, url, headers, body)
	return status, respBody, err
}

func unexpected(status int, body []byte) error {
	return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, status, strings.TrimSpace(string(body)))
}
