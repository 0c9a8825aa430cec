package balanceservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ndychko/gowallet/internal/domain"
)

//go:generate mockgen -source=balanceservice.go -destination=mock_balanceservice.go -package=balanceservice

type AccountRepo interface {
	GetAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	CreateAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	CompareAndSwapAccount(ctx context.Context, userID uuid.UUID, expectedVersion int64, available, locked float64) (*domain.Account, error)
}

type TransactionRepo interface {
	GetTransactionsByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
}

type AccountCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	Set(ctx context.Context, account *domain.Account) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// maxCASRetries bounds the read-compute-swap cycle on a version conflict.
// Exhaustion surfaces domain.ErrConcurrencyConflict to the caller.
const maxCASRetries = 5

// Service moves value between the available and locked halves of one
// account. All mutation goes through a compare-and-swap on the account
// version, so concurrent operations on the same account never work from a
// stale balance.
type Service struct {
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	cache           AccountCache
}

func New(accountRepo AccountRepo, transactionRepo TransactionRepo, cache AccountCache) *Service {
	return &Service{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// GetAccount returns the user's account, lazily creating it with zero
// balances on first access. The cache is advisory: a miss or error falls
// through to the store.
func (s *Service) GetAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	cached, err := s.cache.Get(ctx, userID)
	if err != nil {
		zap.L().Warn("balance cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	account, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, account); err != nil {
		zap.L().Warn("balance cache write failed", zap.Error(err))
	}
	return account, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.GetTransactionsByUserID(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// Reserve moves amount from available to locked. Fails with
// domain.ErrInsufficientFunds when the available balance, re-read on every
// attempt, does not cover the amount.
func (s *Service) Reserve(ctx context.Context, userID uuid.UUID, amount float64) (*domain.Account, error) {
	return s.mutate(ctx, userID, amount, func(account *domain.Account) (float64, float64, error) {
		if account.Available < amount {
			return 0, 0, domain.ErrInsufficientFunds
		}
		return account.Available - amount, account.Locked + amount, nil
	})
}

// Release returns amount from locked back to available, undoing a
// reservation when a pending withdrawal is rejected or rolled back.
func (s *Service) Release(ctx context.Context, userID uuid.UUID, amount float64) (*domain.Account, error) {
	return s.mutate(ctx, userID, amount, func(account *domain.Account) (float64, float64, error) {
		if account.Locked < amount {
			zap.L().Error("release exceeds locked balance",
				zap.String("user_id", userID.String()),
				zap.Float64("locked", account.Locked),
				zap.Float64("amount", amount))
			return 0, 0, domain.ErrInvariantViolation
		}
		return account.Available + amount, account.Locked - amount, nil
	})
}

// Commit permanently removes amount from locked once a withdrawal settles.
func (s *Service) Commit(ctx context.Context, userID uuid.UUID, amount float64) (*domain.Account, error) {
	return s.mutate(ctx, userID, amount, func(account *domain.Account) (float64, float64, error) {
		if account.Locked < amount {
			zap.L().Error("commit exceeds locked balance",
				zap.String("user_id", userID.String()),
				zap.Float64("locked", account.Locked),
				zap.Float64("amount", amount))
			return 0, 0, domain.ErrInvariantViolation
		}
		return account.Available, account.Locked - amount, nil
	})
}

// Credit adds amount to the available balance.
func (s *Service) Credit(ctx context.Context, userID uuid.UUID, amount float64) (*domain.Account, error) {
	return s.mutate(ctx, userID, amount, func(account *domain.Account) (float64, float64, error) {
		return account.Available + amount, account.Locked, nil
	})
}

// mutate runs one read-compute-swap cycle up to maxCASRetries times.
// compute receives a freshly read account and returns the new available and
// locked balances, so preconditions are never checked against stale state.
func (s *Service) mutate(ctx context.Context, userID uuid.UUID, amount float64, compute func(*domain.Account) (float64, float64, error)) (*domain.Account, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	for attempt := 0; attempt < maxCASRetries; attempt++ {
		account, err := s.getOrCreate(ctx, userID)
		if err != nil {
			return nil, err
		}

		available, locked, err := compute(account)
		if err != nil {
			return nil, err
		}

		updated, err := s.accountRepo.CompareAndSwapAccount(ctx, userID, account.Version, available, locked)
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			continue
		}
		if err != nil {
			zap.L().Error("failed to update account balances", zap.Error(err))
			return nil, err
		}

		if err := s.cache.Invalidate(ctx, userID); err != nil {
			zap.L().Warn("balance cache invalidation failed", zap.Error(err))
		}
		return updated, nil
	}

	zap.L().Warn("balance update retries exhausted", zap.String("user_id", userID.String()))
	return nil, domain.ErrConcurrencyConflict
}

func (s *Service) getOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.GetAccount(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		account, err = s.accountRepo.CreateAccount(ctx, userID)
		if err != nil {
			zap.L().Error("failed to create account", zap.Error(err))
			return nil, err
		}
	}
	return account, nil
}
