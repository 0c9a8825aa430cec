package accountrepo

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

func (r *Repository) GetAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	query := `
        SELECT user_id, available_balance, locked_balance, version
        FROM accounts
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var account domain.Account
	err := row.Scan(&account.UserID, &account.Available, &account.Locked, &account.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// CreateAccount initializes a zero-balance account. Safe to call
// concurrently: the insert is a no-op when the row already exists and the
// stored row is returned either way.
func (r *Repository) CreateAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (user_id, available_balance, locked_balance, version)
        VALUES ($1, 0, 0, 1)
        ON CONFLICT (user_id) DO NOTHING
        RETURNING user_id, available_balance, locked_balance, version
    `
	row := r.db.QueryRow(ctx, query, userID)
	var account domain.Account
	err := row.Scan(&account.UserID, &account.Available, &account.Locked, &account.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Lost the race to a concurrent insert; the row exists now.
			return r.GetAccount(ctx, userID)
		}
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// CompareAndSwapAccount is the sole balance mutation primitive. The update
// applies only when the stored version still matches expectedVersion;
// otherwise domain.ErrConcurrencyConflict is returned and the caller must
// re-read and retry.
func (r *Repository) CompareAndSwapAccount(ctx context.Context, userID uuid.UUID, expectedVersion int64, available, locked float64) (*domain.Account, error) {
	query := `
        UPDATE accounts
        SET available_balance = $1, locked_balance = $2, version = version + 1
        WHERE user_id = $3 AND version = $4
        RETURNING user_id, available_balance, locked_balance, version
    `
	row := r.db.QueryRow(ctx, query, available, locked, userID, expectedVersion)
	var account domain.Account
	err := row.Scan(&account.UserID, &account.Available, &account.Locked, &account.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConcurrencyConflict
		}
		zap.L().Error("failed to swap account balances", zap.Error(err))
		return nil, err
	}
	return &account, nil
}
