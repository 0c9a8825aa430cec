package wallet

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ndychko/gowallet/internal/domain"
	"github.com/ndychko/gowallet/internal/dto"
	"github.com/ndychko/gowallet/pkg/auth"
	"github.com/ndychko/gowallet/pkg/utils"
)

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=wallet

type Service interface {
	GetAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	GetTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
}

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current wallet balance
//	@Description	Retrieve the available, locked and total balance for the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balances"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	account, err := h.walletService.GetAccount(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Available: account.Available,
		Locked:    account.Locked,
		Total:     account.Total(),
	})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	Get the authenticated user's ledger entries, newest first, paginated with limit and offset.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int								false	"Page size (default 20, max 100)"
//	@Param			offset	query		int								false	"Page offset"
//	@Success		200		{array}		dto.TransactionResponseDTO		"Transaction history"
//	@Success		204		{object}	utils.Response					"No transactions"
//	@Failure		400		{object}	utils.Response					"Invalid pagination parameters"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	limit, offset, err := parsePagination(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid pagination parameters")
		return
	}

	transactions, err := h.walletService.GetTransactions(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, t := range transactions {
		response[i] = dto.TransactionResponseDTO{
			ID:            t.ID,
			Type:          string(t.Type),
			Amount:        t.Amount,
			BalanceBefore: t.BalanceBefore,
			BalanceAfter:  t.BalanceAfter,
			Status:        string(t.Status),
			Description:   t.Description,
			ReferenceID:   t.ReferenceID,
			CreatedAt:     t.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func parsePagination(r *http.Request) (limit, offset int, err error) {
	limit = defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 || limit > maxHistoryLimit {
			return 0, 0, strconv.ErrRange
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, strconv.ErrRange
		}
	}
	return limit, offset, nil
}
