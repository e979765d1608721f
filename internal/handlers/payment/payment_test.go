package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/shopmesh/internal/domain"
	"github.com/GlebRadaev/shopmesh/internal/dto"
	"github.com/GlebRadaev/shopmesh/internal/service/paymentservice"
	"github.com/GlebRadaev/shopmesh/pkg/auth"
	"github.com/GlebRadaev/shopmesh/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestPayHandler(t *testing.T) {
	handler, service := NewMock(t)
	alice := auth.Identity{UserID: 1, Username: "alice"}

	tests := []struct {
		name          string
		body          string
		identity      *auth.Identity
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  *dto.PayResponseDTO
	}{
		{
			name:     "Payment recorded",
			body:     `{"amount":10}`,
			identity: &alice,
			prepareMock: func() {
				service.EXPECT().Pay(gomock.Any(), alice, 10.0).Return(&domain.Transaction{
					ID:     "txn_1",
					Status: domain.TransactionSuccess,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.PayResponseDTO{TransactionID: "txn_1", Status: "SUCCESS", User: "alice"},
		},
		{
			name:          "No identity in context",
			body:          `{"amount":10}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid token",
		},
		{
			name:          "Invalid request body",
			body:          `amount=10`,
			identity:      &alice,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:     "Ledger failure",
			body:     `{"amount":10}`,
			identity: &alice,
			prepareMock: func() {
				service.EXPECT().Pay(gomock.Any(), alice, 10.0).Return(nil, paymentservice.ErrDuplicateID)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/pay", bytes.NewBufferString(tt.body))
			if tt.identity != nil {
				req = req.WithContext(auth.WithIdentity(req.Context(), *tt.identity))
			}
			rr := httptest.NewRecorder()

			handler.Pay(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			if tt.expectedBody != nil {
				var resp dto.PayResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, *tt.expectedBody, resp)
			}
		})
	}
}

func TestGetStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  *dto.TransactionStatusResponseDTO
	}{
		{
			name: "Known transaction",
			id:   "txn_1",
			prepareMock: func() {
				service.EXPECT().GetStatus(gomock.Any(), "txn_1").Return(&domain.Transaction{
					ID:     "txn_1",
					Status: domain.TransactionSuccess,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.TransactionStatusResponseDTO{TransactionID: "txn_1", Status: "SUCCESS"},
		},
		{
			name: "Failed transaction",
			id:   "txn_2",
			prepareMock: func() {
				service.EXPECT().GetStatus(gomock.Any(), "txn_2").Return(&domain.Transaction{
					ID:     "txn_2",
					Status: domain.TransactionFailed,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.TransactionStatusResponseDTO{TransactionID: "txn_2", Status: "FAILED"},
		},
		{
			name: "Unknown transaction",
			id:   "txn_missing",
			prepareMock: func() {
				service.EXPECT().GetStatus(gomock.Any(), "txn_missing").Return(nil, paymentservice.ErrTransactionNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Transaction not found",
		},
		{
			name: "Ledger failure",
			id:   "txn_1",
			prepareMock: func() {
				service.EXPECT().GetStatus(gomock.Any(), "txn_1").Return(nil, errors.New("redis down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/pay/status/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			handler.GetStatus(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			if tt.expectedBody != nil {
				var resp dto.TransactionStatusResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, *tt.expectedBody, resp)
			}
		})
	}
}
