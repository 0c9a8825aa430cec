package depositrepo

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

func (r *Repository) CreateDepositRequest(ctx context.Context, deposit *domain.DepositRequest) (*domain.DepositRequest, error) {
	query := `
		INSERT INTO deposit_requests (user_id, amount, method, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		deposit.UserID,
		deposit.Amount,
		deposit.Method,
		deposit.Status,
	).Scan(&deposit.ID, &deposit.CreatedAt)
	if err != nil {
		zap.L().Error("can't save deposit request", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

func (r *Repository) GetDepositRequestByID(ctx context.Context, id int64) (*domain.DepositRequest, error) {
	query := `
        SELECT id, user_id, amount, method, status, created_at
        FROM deposit_requests
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var deposit domain.DepositRequest
	err := row.Scan(&deposit.ID, &deposit.UserID, &deposit.Amount, &deposit.Method, &deposit.Status, &deposit.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get deposit request", zap.Error(err))
		return nil, err
	}
	return &deposit, nil
}

func (r *Repository) GetDepositRequestsByUserID(ctx context.Context, userID uuid.UUID) ([]domain.DepositRequest, error) {
	query := `
        SELECT id, user_id, amount, method, status, created_at
        FROM deposit_requests
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch deposit requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.DepositRequest
	for rows.Next() {
		var dep domain.DepositRequest
		err := rows.Scan(&dep.ID, &dep.UserID, &dep.Amount, &dep.Method, &dep.Status, &dep.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan deposit request row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, dep)
	}

	return deposits, nil
}

// UpdateDepositRequestStatus flips the request state only when it is still
// in the expected state; zero affected rows means a stale or duplicate call.
func (r *Repository) UpdateDepositRequestStatus(ctx context.Context, id int64, from, to domain.RequestStatus) error {
	query := `
		UPDATE deposit_requests
		SET status = $1
		WHERE id = $2 AND status = $3
	`
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("failed to update deposit request status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidStateTransition
	}
	return nil
}
