package withdrawalservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ndychko/gowallet/internal/domain"
	"github.com/ndychko/gowallet/internal/pg"
)

//go:generate mockgen -source=withdrawalservice.go -destination=mock_withdrawalservice.go -package=withdrawalservice

type WithdrawalRepo interface {
	CreateWithdrawalRequest(ctx context.Context, withdrawal *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	GetWithdrawalRequestByID(ctx context.Context, id int64) (*domain.WithdrawalRequest, error)
	GetWithdrawalRequestsByUserID(ctx context.Context, userID uuid.UUID) ([]domain.WithdrawalRequest, error)
	UpdateWithdrawalRequestStatus(ctx context.Context, id int64, from, to domain.RequestStatus) error
}

type TransactionRepo interface {
	CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	UpdateStatusByReference(ctx context.Context, transactionType domain.TransactionType, referenceID string, status domain.TransactionStatus) error
}

type Balance interface {
	GetAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	Reserve(ctx context.Context, userID uuid.UUID, amount float64) (*domain.Account, error)
	Release(ctx context.Context, userID uuid.UUID, amount float64) (*domain.Account, error)
	Commit(ctx context.Context, userID uuid.UUID, amount float64) (*domain.Account, error)
}

// MinWithdrawalAmount is the smallest withdrawal a user may request.
const MinWithdrawalAmount = 20.00

var (
	ErrMinAmount           = fmt.Errorf("withdrawal amount must be at least %.2f: %w", MinWithdrawalAmount, domain.ErrValidation)
	ErrInvalidMethod       = fmt.Errorf("withdrawal method must be bank, crypto or paypal: %w", domain.ErrValidation)
	ErrEmptyAccountDetails = fmt.Errorf("account details must not be empty: %w", domain.ErrValidation)
)

// Service drives the withdrawal request state machine:
// pending -> approved -> settled, or pending -> rejected.
type Service struct {
	withdrawalRepo  WithdrawalRepo
	transactionRepo TransactionRepo
	balance         Balance
	txManager       pg.TXManager
}

func New(withdrawalRepo WithdrawalRepo, transactionRepo TransactionRepo, balance Balance, txManager pg.TXManager) *Service {
	return &Service{
		withdrawalRepo:  withdrawalRepo,
		transactionRepo: transactionRepo,
		balance:         balance,
		txManager:       txManager,
	}
}

// Create validates the request, reserves the amount and records the request
// together with its pending ledger entry. The reserve call is authoritative;
// the balance pre-check only gives the caller a fast answer. If the records
// can't be written after the reserve succeeded, the reservation is released.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, amount float64, method domain.WithdrawalMethod, accountDetails json.RawMessage) (*domain.WithdrawalRequest, error) {
	if amount < MinWithdrawalAmount {
		return nil, ErrMinAmount
	}
	switch method {
	case domain.MethodBank, domain.MethodCrypto, domain.MethodPayPal:
	default:
		return nil, ErrInvalidMethod
	}
	if len(bytes.TrimSpace(accountDetails)) == 0 || string(accountDetails) == "null" {
		return nil, ErrEmptyAccountDetails
	}

	account, err := s.balance.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account.Available < amount {
		return nil, domain.ErrInsufficientFunds
	}

	reserved, err := s.balance.Reserve(ctx, userID, amount)
	if err != nil {
		return nil, err
	}

	withdrawal := &domain.WithdrawalRequest{
		UserID:         userID,
		Amount:         amount,
		Method:         method,
		AccountDetails: accountDetails,
		Status:         domain.RequestPending,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.withdrawalRepo.CreateWithdrawalRequest(ctx, withdrawal); err != nil {
			return err
		}
		transaction := &domain.Transaction{
			UserID:        userID,
			Type:          domain.TransactionWithdrawal,
			Amount:        amount,
			BalanceBefore: reserved.Available + amount,
			BalanceAfter:  reserved.Available,
			Status:        domain.TransactionPending,
			Description:   fmt.Sprintf("Withdrawal to %s", method),
			ReferenceID:   strconv.FormatInt(withdrawal.ID, 10),
		}
		_, err := s.transactionRepo.CreateTransaction(ctx, transaction)
		return err
	})
	if err != nil {
		zap.L().Error("failed to record withdrawal request, releasing reservation", zap.Error(err))
		if _, rerr := s.balance.Release(ctx, userID, amount); rerr != nil {
			zap.L().Error("failed to release reservation after write failure",
				zap.String("user_id", userID.String()),
				zap.Float64("amount", amount),
				zap.Error(rerr))
		}
		return nil, err
	}

	return withdrawal, nil
}

// Approve moves a pending request through approved to settled and removes
// the reserved amount for good. The pending -> approved flip claims the
// request, so a concurrent or repeated approve fails instead of committing
// the funds twice.
func (s *Service) Approve(ctx context.Context, id int64) error {
	withdrawal, err := s.withdrawalRepo.GetWithdrawalRequestByID(ctx, id)
	if err != nil {
		return err
	}
	if withdrawal == nil {
		return domain.ErrRequestNotFound
	}

	if err := s.withdrawalRepo.UpdateWithdrawalRequestStatus(ctx, id, domain.RequestPending, domain.RequestApproved); err != nil {
		return err
	}

	if _, err := s.balance.Commit(ctx, withdrawal.UserID, withdrawal.Amount); err != nil {
		zap.L().Error("failed to commit reserved funds, reverting approval", zap.Int64("id", id), zap.Error(err))
		if rerr := s.withdrawalRepo.UpdateWithdrawalRequestStatus(ctx, id, domain.RequestApproved, domain.RequestPending); rerr != nil {
			zap.L().Error("failed to revert withdrawal approval", zap.Int64("id", id), zap.Error(rerr))
		}
		return err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.withdrawalRepo.UpdateWithdrawalRequestStatus(ctx, id, domain.RequestApproved, domain.RequestSettled); err != nil {
			return err
		}
		return s.transactionRepo.UpdateStatusByReference(ctx, domain.TransactionWithdrawal, strconv.FormatInt(id, 10), domain.TransactionCompleted)
	})
	if err != nil {
		zap.L().Error("failed to settle approved withdrawal", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// Reject returns the reserved amount to the available balance and marks the
// request and its ledger entry rejected.
func (s *Service) Reject(ctx context.Context, id int64) error {
	withdrawal, err := s.withdrawalRepo.GetWithdrawalRequestByID(ctx, id)
	if err != nil {
		return err
	}
	if withdrawal == nil {
		return domain.ErrRequestNotFound
	}

	if err := s.withdrawalRepo.UpdateWithdrawalRequestStatus(ctx, id, domain.RequestPending, domain.RequestRejected); err != nil {
		return err
	}

	if _, err := s.balance.Release(ctx, withdrawal.UserID, withdrawal.Amount); err != nil {
		zap.L().Error("failed to release reserved funds, reverting rejection", zap.Int64("id", id), zap.Error(err))
		if rerr := s.withdrawalRepo.UpdateWithdrawalRequestStatus(ctx, id, domain.RequestRejected, domain.RequestPending); rerr != nil {
			zap.L().Error("failed to revert withdrawal rejection", zap.Int64("id", id), zap.Error(rerr))
		}
		return err
	}

	if err := s.transactionRepo.UpdateStatusByReference(ctx, domain.TransactionWithdrawal, strconv.FormatInt(id, 10), domain.TransactionRejected); err != nil {
		zap.L().Error("failed to mark withdrawal transaction rejected", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GetWithdrawals(ctx context.Context, userID uuid.UUID) ([]domain.WithdrawalRequest, error) {
	withdrawals, err := s.withdrawalRepo.GetWithdrawalRequestsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
