package depositservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ndychko/gowallet/internal/domain"
	"github.com/ndychko/gowallet/internal/pg"
)

//go:generate mockgen -source=depositservice.go -destination=mock_depositservice.go -package=depositservice

type DepositRepo interface {
	CreateDepositRequest(ctx context.Context, deposit *domain.DepositRequest) (*domain.DepositRequest, error)
	GetDepositRequestByID(ctx context.Context, id int64) (*domain.DepositRequest, error)
	GetDepositRequestsByUserID(ctx context.Context, userID uuid.UUID) ([]domain.DepositRequest, error)
	UpdateDepositRequestStatus(ctx context.Context, id int64, from, to domain.RequestStatus) error
}

type TransactionRepo interface {
	CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	UpdateStatusByReference(ctx context.Context, transactionType domain.TransactionType, referenceID string, status domain.TransactionStatus) error
}

type Balance interface {
	GetAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	Credit(ctx context.Context, userID uuid.UUID, amount float64) (*domain.Account, error)
}

const (
	MinDepositAmount = 10.00
	MaxDepositAmount = 10000.00
)

var (
	ErrAmountRange = fmt.Errorf("deposit amount must be between %.2f and %.2f: %w", MinDepositAmount, MaxDepositAmount, domain.ErrValidation)
	ErrEmptyMethod = fmt.Errorf("payment method must not be empty: %w", domain.ErrValidation)
)

// Service drives the deposit request state machine: pending -> approved or
// pending -> rejected. A deposit touches no balance until it is approved.
type Service struct {
	depositRepo     DepositRepo
	transactionRepo TransactionRepo
	balance         Balance
	txManager       pg.TXManager
}

func New(depositRepo DepositRepo, transactionRepo TransactionRepo, balance Balance, txManager pg.TXManager) *Service {
	return &Service{
		depositRepo:     depositRepo,
		transactionRepo: transactionRepo,
		balance:         balance,
		txManager:       txManager,
	}
}

// Create records a deposit request and its pending ledger entry as one unit.
// The entry snapshots the balance the credit will apply to once approved.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, amount float64, method string) (*domain.DepositRequest, error) {
	if amount < MinDepositAmount || amount > MaxDepositAmount {
		return nil, ErrAmountRange
	}
	if strings.TrimSpace(method) == "" {
		return nil, ErrEmptyMethod
	}

	account, err := s.balance.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	deposit := &domain.DepositRequest{
		UserID: userID,
		Amount: amount,
		Method: method,
		Status: domain.RequestPending,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.depositRepo.CreateDepositRequest(ctx, deposit); err != nil {
			return err
		}
		transaction := &domain.Transaction{
			UserID:        userID,
			Type:          domain.TransactionDeposit,
			Amount:        amount,
			BalanceBefore: account.Available,
			BalanceAfter:  account.Available + amount,
			Status:        domain.TransactionPending,
			Description:   fmt.Sprintf("Deposit via %s", method),
			ReferenceID:   strconv.FormatInt(deposit.ID, 10),
		}
		_, err := s.transactionRepo.CreateTransaction(ctx, transaction)
		return err
	})
	if err != nil {
		zap.L().Error("failed to record deposit request", zap.Error(err))
		return nil, err
	}

	return deposit, nil
}

// Approve credits the deposited amount. The pending -> approved flip claims
// the request first, so a duplicate approve can't credit twice.
func (s *Service) Approve(ctx context.Context, id int64) error {
	deposit, err := s.depositRepo.GetDepositRequestByID(ctx, id)
	if err != nil {
		return err
	}
	if deposit == nil {
		return domain.ErrRequestNotFound
	}

	if err := s.depositRepo.UpdateDepositRequestStatus(ctx, id, domain.RequestPending, domain.RequestApproved); err != nil {
		return err
	}

	if _, err := s.balance.Credit(ctx, deposit.UserID, deposit.Amount); err != nil {
		zap.L().Error("failed to credit deposit, reverting approval", zap.Int64("id", id), zap.Error(err))
		if rerr := s.depositRepo.UpdateDepositRequestStatus(ctx, id, domain.RequestApproved, domain.RequestPending); rerr != nil {
			zap.L().Error("failed to revert deposit approval", zap.Int64("id", id), zap.Error(rerr))
		}
		return err
	}

	if err := s.transactionRepo.UpdateStatusByReference(ctx, domain.TransactionDeposit, strconv.FormatInt(id, 10), domain.TransactionCompleted); err != nil {
		zap.L().Error("failed to mark deposit transaction completed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// Reject closes the request with no balance effect.
func (s *Service) Reject(ctx context.Context, id int64) error {
	deposit, err := s.depositRepo.GetDepositRequestByID(ctx, id)
	if err != nil {
		return err
	}
	if deposit == nil {
		return domain.ErrRequestNotFound
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.depositRepo.UpdateDepositRequestStatus(ctx, id, domain.RequestPending, domain.RequestRejected); err != nil {
			return err
		}
		return s.transactionRepo.UpdateStatusByReference(ctx, domain.TransactionDeposit, strconv.FormatInt(id, 10), domain.TransactionRejected)
	})
	if err != nil {
		return err
	}
	return nil
}

func (s *Service) GetDeposits(ctx context.Context, userID uuid.UUID) ([]domain.DepositRequest, error) {
	deposits, err := s.depositRepo.GetDepositRequestsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}
