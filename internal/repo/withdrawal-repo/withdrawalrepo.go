package withdrawalrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/ndychko/gowallet/internal/domain"
	"github.com/ndychko/gowallet/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateWithdrawalRequest(ctx context.Context, withdrawal *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
		INSERT INTO withdrawal_requests (user_id, amount, method, account_details, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		withdrawal.UserID,
		withdrawal.Amount,
		withdrawal.Method,
		withdrawal.AccountDetails,
		withdrawal.Status,
	).Scan(&withdrawal.ID, &withdrawal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal request", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) GetWithdrawalRequestByID(ctx context.Context, id int64) (*domain.WithdrawalRequest, error) {
	query := `
        SELECT id, user_id, amount, method, account_details, status, created_at
        FROM withdrawal_requests
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var withdrawal domain.WithdrawalRequest
	err := row.Scan(&withdrawal.ID, &withdrawal.UserID, &withdrawal.Amount, &withdrawal.Method, &withdrawal.AccountDetails, &withdrawal.Status, &withdrawal.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get withdrawal request", zap.Error(err))
		return nil, err
	}
	return &withdrawal, nil
}

func (r *Repository) GetWithdrawalRequestsByUserID(ctx context.Context, userID uuid.UUID) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT id, user_id, amount, method, account_details, status, created_at
        FROM withdrawal_requests
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.WithdrawalRequest
	for rows.Next() {
		var wd domain.WithdrawalRequest
		err := rows.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.Method, &wd.AccountDetails, &wd.Status, &wd.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal request row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}

	return withdrawals, nil
}

// UpdateWithdrawalRequestStatus flips the request state only when it is
// still in the expected state, so a stale or duplicate approve/reject
// surfaces as domain.ErrInvalidStateTransition instead of a double effect.
func (r *Repository) UpdateWithdrawalRequestStatus(ctx context.Context, id int64, from, to domain.RequestStatus) error {
	query := `
		UPDATE withdrawal_requests
		SET status = $1
		WHERE id = $2 AND status = $3
	`
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("failed to update withdrawal request status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidStateTransition
	}
	return nil
}
