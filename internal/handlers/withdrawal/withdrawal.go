package withdrawal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ndychko/gowallet/internal/domain"
	"github.com/ndychko/gowallet/internal/dto"
	"github.com/ndychko/gowallet/pkg/auth"
	"github.com/ndychko/gowallet/pkg/utils"
	"github.com/ndychko/gowallet/pkg/validate"
)

//go:generate mockgen -source=withdrawal.go -destination=mock_withdrawal.go -package=withdrawal

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, amount float64, method domain.WithdrawalMethod, accountDetails json.RawMessage) (*domain.WithdrawalRequest, error)
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64) error
	GetWithdrawals(ctx context.Context, userID uuid.UUID) ([]domain.WithdrawalRequest, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// Create godoc
//
//	@Summary		Request a withdrawal
//	@Description	Reserve the amount from the available balance and record a pending withdrawal request.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalCreateRequestDTO	true	"Withdrawal request payload"
//	@Success		201		{object}	dto.WithdrawalResponseDTO		"Created withdrawal request"
//	@Failure		400		{object}	utils.Response					"Invalid request payload"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient funds"
//	@Failure		409		{object}	utils.Response					"Concurrent balance update conflict"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/wallet/withdrawals [post]
func (h *WithdrawalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.WithdrawalCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	withdrawal, err := h.withdrawalService.Create(r.Context(), userID, req.Amount, domain.WithdrawalMethod(req.Method), req.AccountDetails)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrConcurrencyConflict):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.WithdrawalResponseDTO{
		ID:        withdrawal.ID,
		Amount:    withdrawal.Amount,
		Method:    string(withdrawal.Method),
		Status:    string(withdrawal.Status),
		CreatedAt: withdrawal.CreatedAt,
	})
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawal requests history
//	@Description	Get the authenticated user's withdrawal requests, newest first.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO	"Withdrawal requests"
//	@Success		204	{object}	utils.Response				"No withdrawal requests"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	withdrawals, err := h.withdrawalService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = dto.WithdrawalResponseDTO{
			ID:        wd.ID,
			Amount:    wd.Amount,
			Method:    string(wd.Method),
			Status:    string(wd.Status),
			CreatedAt: wd.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Approve godoc
//
//	@Summary		Approve a withdrawal request
//	@Description	Commit the reserved amount and settle the request. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Withdrawal request ID"
//	@Success		200	{object}	utils.Response	"Withdrawal approved"
//	@Failure		400	{object}	utils.Response	"Invalid request ID"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Request is not pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/approve [post]
func (h *WithdrawalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.withdrawalService.Approve, "withdrawal approved")
}

// Reject godoc
//
//	@Summary		Reject a withdrawal request
//	@Description	Release the reserved amount back to the available balance. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Withdrawal request ID"
//	@Success		200	{object}	utils.Response	"Withdrawal rejected"
//	@Failure		400	{object}	utils.Response	"Invalid request ID"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Request is not pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/reject [post]
func (h *WithdrawalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.withdrawalService.Reject, "withdrawal rejected")
}

func (h *WithdrawalHandler) resolve(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id int64) error, message string) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	if err := fn(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidStateTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrConcurrencyConflict):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}
