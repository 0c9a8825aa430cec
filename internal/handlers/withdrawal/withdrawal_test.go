package withdrawal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ndychko/gowallet/internal/domain"
	"github.com/ndychko/gowallet/internal/dto"
	"github.com/ndychko/gowallet/internal/service/withdrawalservice"
	"github.com/ndychko/gowallet/pkg/auth"
)

func NewMock(t *testing.T) (*WithdrawalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withRouteID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful creation",
			body: `{"amount":50,"method":"bank","account_details":{"iban":"DE02120300000000202051"}}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), userID, 50.0, domain.MethodBank, gomock.Any()).
					Return(&domain.WithdrawalRequest{
						ID:     7,
						UserID: userID,
						Amount: 50,
						Method: domain.MethodBank,
						Status: domain.RequestPending, CreatedAt: now,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{"amount":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Unknown method fails validation",
			body:         `{"amount":50,"method":"cheque","account_details":{"iban":"x"}}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing account details fails validation",
			body:         `{"amount":50,"method":"bank"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Amount below the minimum",
			body: `{"amount":19.99,"method":"bank","account_details":{"iban":"x"}}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), userID, 19.99, domain.MethodBank, gomock.Any()).
					Return(nil, withdrawalservice.ErrMinAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Insufficient funds",
			body: `{"amount":50,"method":"bank","account_details":{"iban":"x"}}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), userID, 50.0, domain.MethodBank, gomock.Any()).
					Return(nil, domain.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Concurrent balance update conflict",
			body: `{"amount":50,"method":"bank","account_details":{"iban":"x"}}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), userID, 50.0, domain.MethodBank, gomock.Any()).
					Return(nil, domain.ErrConcurrencyConflict)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: `{"amount":50,"method":"bank","account_details":{"iban":"x"}}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), userID, 50.0, domain.MethodBank, gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/withdrawals", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, userID))
			w := httptest.NewRecorder()
			handler.Create(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.WithdrawalResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(7), body.ID)
				assert.Equal(t, "pending", body.Status)
			}
		})
	}
}

func TestGetWithdrawalsHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetWithdrawals(gomock.Any(), userID).
					Return([]domain.WithdrawalRequest{
						{ID: 8, UserID: userID, Amount: 30, Method: domain.MethodCrypto, Status: domain.RequestPending, CreatedAt: now},
						{ID: 7, UserID: userID, Amount: 50, Method: domain.MethodBank, Status: domain.RequestSettled, CreatedAt: now.Add(-time.Hour)},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No withdrawals",
			prepareMock: func() {
				service.EXPECT().
					GetWithdrawals(gomock.Any(), userID).
					Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetWithdrawals(gomock.Any(), userID).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/withdrawals", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, userID))
			w := httptest.NewRecorder()
			handler.GetWithdrawals(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.WithdrawalResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestApproveHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful approval",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), int64(7)).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Request not found",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), int64(7)).Return(domain.ErrRequestNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Request is not pending",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), int64(7)).Return(domain.ErrInvalidStateTransition)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Balance update conflict",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), int64(7)).Return(domain.ErrConcurrencyConflict)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), int64(7)).Return(errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/withdrawals/"+tt.id+"/approve", nil)
			r = withRouteID(r, tt.id)
			w := httptest.NewRecorder()
			handler.Approve(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRejectHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful rejection",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().Reject(gomock.Any(), int64(7)).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Request not found",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().Reject(gomock.Any(), int64(7)).Return(domain.ErrRequestNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Request is not pending",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().Reject(gomock.Any(), int64(7)).Return(domain.ErrInvalidStateTransition)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/withdrawals/"+tt.id+"/reject", nil)
			r = withRouteID(r, tt.id)
			w := httptest.NewRecorder()
			handler.Reject(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
