package orders

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/shopmesh/internal/domain"
	"github.com/GlebRadaev/shopmesh/internal/dto"
	"github.com/GlebRadaev/shopmesh/pkg/auth"
	"github.com/GlebRadaev/shopmesh/pkg/utils"
)

type Service interface {
	CreateOrder(ctx context.Context, owner auth.Identity, item string, price float64) (*domain.Order, error)
	GetOrders(ctx context.Context, userID int64) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create an order
//	@Description	Store a new order owned by the authenticated user
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateOrderRequestDTO	true	"Order to create"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CreateOrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Invalid token"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/create [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), owner, req.Item, req.Price)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateOrderResponseDTO{
		Message: "order created",
		OrderID: order.ID,
	})
}

// GetOrders godoc
//
//	@Summary		List own orders
//	@Description	Return every order created by the authenticated user
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.GetOrdersResponseDTO
//	@Failure		401	{object}	utils.Response	"Invalid token"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/check [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	orders, err := h.orderService.GetOrders(r.Context(), owner.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.GetOrdersResponseDTO, 0, len(orders))
	for _, order := range orders {
		response = append(response, dto.GetOrdersResponseDTO{
			Item:     order.Item,
			Price:    order.Price,
			UserID:   order.UserID,
			Username: order.Username,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
