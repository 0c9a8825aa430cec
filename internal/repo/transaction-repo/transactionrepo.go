package transactionrepo

import (
	"context"

	"github.com/google/uuid"
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

// CreateTransaction appends one ledger entry. The store assigns id and
// created_at; both are written back into transaction.
func (r *Repository) CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, type, amount, balance_before, balance_after, status, description, reference_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		transaction.UserID,
		transaction.Type,
		transaction.Amount,
		transaction.BalanceBefore,
		transaction.BalanceAfter,
		transaction.Status,
		transaction.Description,
		transaction.ReferenceID,
	).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) GetTransactionsByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, type, amount, balance_before, balance_after, status, description, reference_id, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.BalanceBefore, &t.BalanceAfter, &t.Status, &t.Description, &t.ReferenceID, &t.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}

// UpdateStatusByReference resolves the pending ledger entry linked to a
// request. Every resolved request must have exactly one such entry, so a
// miss means the ledger is inconsistent.
func (r *Repository) UpdateStatusByReference(ctx context.Context, transactionType domain.TransactionType, referenceID string, status domain.TransactionStatus) error {
	query := `
		UPDATE transactions
		SET status = $1
		WHERE type = $2 AND reference_id = $3 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, status, transactionType, referenceID)
	if err != nil {
		zap.L().Error("failed to update transaction status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		zap.L().Error("no pending transaction for reference",
			zap.String("type", string(transactionType)),
			zap.String("reference_id", referenceID))
		return domain.ErrInvariantViolation
	}
	return nil
}
