package deposit

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

//go:generate mockgen -source=deposit.go -destination=mock_deposit.go -package=deposit

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, amount float64, method string) (*domain.DepositRequest, error)
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64) error
	GetDeposits(ctx context.Context, userID uuid.UUID) ([]domain.DepositRequest, error)
}

type DepositHandler struct {
	depositService Service
}

func New(depositService Service) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
	}
}

// Create godoc
//
//	@Summary		Request a deposit
//	@Description	Record a pending deposit request. The balance is credited only after approval.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositCreateRequestDTO	true	"Deposit request payload"
//	@Success		201		{object}	dto.DepositResponseDTO		"Created deposit request"
//	@Failure		400		{object}	utils.Response				"Invalid request payload"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/deposits [post]
func (h *DepositHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.DepositCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	deposit, err := h.depositService.Create(r.Context(), userID, req.Amount, req.Method)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.DepositResponseDTO{
		ID:        deposit.ID,
		Amount:    deposit.Amount,
		Method:    deposit.Method,
		Status:    string(deposit.Status),
		CreatedAt: deposit.CreatedAt,
	})
}

// GetDeposits godoc
//
//	@Summary		Get deposit requests history
//	@Description	Get the authenticated user's deposit requests, newest first.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DepositResponseDTO	"Deposit requests"
//	@Success		204	{object}	utils.Response			"No deposit requests"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/deposits [get]
func (h *DepositHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	deposits, err := h.depositService.GetDeposits(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch deposits")
		return
	}

	if len(deposits) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Deposits not found")
		return
	}

	response := make([]dto.DepositResponseDTO, len(deposits))
	for i, dep := range deposits {
		response[i] = dto.DepositResponseDTO{
			ID:        dep.ID,
			Amount:    dep.Amount,
			Method:    dep.Method,
			Status:    string(dep.Status),
			CreatedAt: dep.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Approve godoc
//
//	@Summary		Approve a deposit request
//	@Description	Credit the deposited amount to the available balance. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Deposit request ID"
//	@Success		200	{object}	utils.Response	"Deposit approved"
//	@Failure		400	{object}	utils.Response	"Invalid request ID"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Request is not pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/deposits/{id}/approve [post]
func (h *DepositHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.depositService.Approve, "deposit approved")
}

// Reject godoc
//
//	@Summary		Reject a deposit request
//	@Description	Close the deposit request with no balance effect. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Deposit request ID"
//	@Success		200	{object}	utils.Response	"Deposit rejected"
//	@Failure		400	{object}	utils.Response	"Invalid request ID"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Request is not pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/deposits/{id}/reject [post]
func (h *DepositHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.depositService.Reject, "deposit rejected")
}

func (h *DepositHandler) resolve(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id int64) error, message string) {
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
