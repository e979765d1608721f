package payment

//go:generate mockgen -source=payment.go -destination=mock_payment.go -package=payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/shopmesh/internal/domain"
	"github.com/GlebRadaev/shopmesh/internal/dto"
	"github.com/GlebRadaev/shopmesh/internal/service/paymentservice"
	"github.com/GlebRadaev/shopmesh/pkg/auth"
	"github.com/GlebRadaev/shopmesh/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Pay(ctx context.Context, payer auth.Identity, amount float64) (*domain.Transaction, error)
	GetStatus(ctx context.Context, id string) (*domain.Transaction, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Pay godoc
//
//	@Summary		Pay
//	@Description	Record a simulated payment for the authenticated user
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.PayRequestDTO	true	"Payment amount"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PayResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Invalid token"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/pay [post]
func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	payer, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req dto.PayRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	txn, err := h.paymentService.Pay(r.Context(), payer, req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayResponseDTO{
		TransactionID: txn.ID,
		Status:        string(txn.Status),
		User:          payer.Username,
	})
}

// GetStatus godoc
//
//	@Summary		Transaction status
//	@Description	Look up a recorded transaction by id
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path		string	true	"Transaction id"
//	@Success		200	{object}	dto.TransactionStatusResponseDTO
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/pay/status/{id} [get]
func (h *PaymentHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	txn, err := h.paymentService.GetStatus(r.Context(), id)
	if err != nil {
		if errors.Is(err, paymentservice.ErrTransactionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionStatusResponseDTO{
		TransactionID: txn.ID,
		Status:        string(txn.Status),
	})
}
