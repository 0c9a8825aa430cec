package depositservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ndychko/gowallet/internal/domain"
	"github.com/ndychko/gowallet/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockDepositRepo, *MockTransactionRepo, *MockBalance, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	depositRepo := NewMockDepositRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	balance := NewMockBalance(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(depositRepo, transactionRepo, balance, txManager)
	defer ctrl.Finish()
	return service, depositRepo, transactionRepo, balance, txManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestCreate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		amount        float64
		method        string
		prepareMock   func(repo *MockDepositRepo, txRepo *MockTransactionRepo, balance *MockBalance, txManager *pg.MockTXManager)
		expectedError error
	}{
		{
			name:   "Creates a pending request with its ledger entry",
			amount: 100,
			method: "card",
			prepareMock: func(repo *MockDepositRepo, txRepo *MockTransactionRepo, balance *MockBalance, txManager *pg.MockTXManager) {
				balance.EXPECT().GetAccount(gomock.Any(), userID).Return(&domain.Account{UserID: userID, Available: 40, Version: 2}, nil)
				passThroughTx(txManager)
				repo.EXPECT().CreateDepositRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, deposit *domain.DepositRequest) (*domain.DepositRequest, error) {
						assert.Equal(t, domain.RequestPending, deposit.Status)
						deposit.ID = 11
						return deposit, nil
					},
				)
				txRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, domain.TransactionDeposit, transaction.Type)
						assert.Equal(t, domain.TransactionPending, transaction.Status)
						assert.Equal(t, 40.0, transaction.BalanceBefore)
						assert.Equal(t, 140.0, transaction.BalanceAfter)
						assert.Equal(t, "11", transaction.ReferenceID)
						return transaction, nil
					},
				)
			},
		},
		{
			name:   "Amount exactly at the maximum is accepted",
			amount: 10000.00,
			method: "card",
			prepareMock: func(repo *MockDepositRepo, txRepo *MockTransactionRepo, balance *MockBalance, txManager *pg.MockTXManager) {
				balance.EXPECT().GetAccount(gomock.Any(), userID).Return(&domain.Account{UserID: userID, Available: 0, Version: 1}, nil)
				passThroughTx(txManager)
				repo.EXPECT().CreateDepositRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, deposit *domain.DepositRequest) (*domain.DepositRequest, error) {
						deposit.ID = 11
						return deposit, nil
					},
				)
				txRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
						return transaction, nil
					},
				)
			},
		},
		{
			name:          "Amount below the minimum",
			amount:        9.99,
			method:        "card",
			prepareMock:   func(*MockDepositRepo, *MockTransactionRepo, *MockBalance, *pg.MockTXManager) {},
			expectedError: ErrAmountRange,
		},
		{
			name:          "Amount above the maximum",
			amount:        10000.01,
			method:        "card",
			prepareMock:   func(*MockDepositRepo, *MockTransactionRepo, *MockBalance, *pg.MockTXManager) {},
			expectedError: ErrAmountRange,
		},
		{
			name:          "Empty method",
			amount:        100,
			method:        "   ",
			prepareMock:   func(*MockDepositRepo, *MockTransactionRepo, *MockBalance, *pg.MockTXManager) {},
			expectedError: ErrEmptyMethod,
		},
		{
			name:   "Write failure surfaces to the caller",
			amount: 100,
			method: "card",
			prepareMock: func(repo *MockDepositRepo, txRepo *MockTransactionRepo, balance *MockBalance, txManager *pg.MockTXManager) {
				balance.EXPECT().GetAccount(gomock.Any(), userID).Return(&domain.Account{UserID: userID, Available: 40, Version: 2}, nil)
				passThroughTx(txManager)
				repo.EXPECT().CreateDepositRequest(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, depositRepo, transactionRepo, balance, txManager := NewMock(t)
			tt.prepareMock(depositRepo, transactionRepo, balance, txManager)

			deposit, err := service.Create(context.Background(), userID, tt.amount, tt.method)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(11), deposit.ID)
				assert.Equal(t, domain.RequestPending, deposit.Status)
			}
		})
	}
}

func TestApprove(t *testing.T) {
	userID := uuid.New()
	pending := &domain.DepositRequest{ID: 11, UserID: userID, Amount: 100, Status: domain.RequestPending}

	tests := []struct {
		name          string
		prepareMock   func(repo *MockDepositRepo, txRepo *MockTransactionRepo, balance *MockBalance)
		expectedError error
	}{
		{
			name: "Credits the amount and completes the ledger entry",
			prepareMock: func(repo *MockDepositRepo, txRepo *MockTransactionRepo, balance *MockBalance) {
				repo.EXPECT().GetDepositRequestByID(gomock.Any(), int64(11)).Return(pending, nil)
				repo.EXPECT().UpdateDepositRequestStatus(gomock.Any(), int64(11), domain.RequestPending, domain.RequestApproved).Return(nil)
				balance.EXPECT().Credit(gomock.Any(), userID, 100.0).Return(&domain.Account{UserID: userID, Available: 140, Version: 3}, nil)
				txRepo.EXPECT().UpdateStatusByReference(gomock.Any(), domain.TransactionDeposit, "11", domain.TransactionCompleted).Return(nil)
			},
		},
		{
			name: "Unknown request",
			prepareMock: func(repo *MockDepositRepo, txRepo *MockTransactionRepo, balance *MockBalance) {
				repo.EXPECT().GetDepositRequestByID(gomock.Any(), int64(11)).Return(nil, nil)
			},
			expectedError: domain.ErrRequestNotFound,
		},
		{
			name: "Already approved request can't be claimed twice",
			prepareMock: func(repo *MockDepositRepo, txRepo *MockTransactionRepo, balance *MockBalance) {
				approved := &domain.DepositRequest{ID: 11, UserID: userID, Amount: 100, Status: domain.RequestApproved}
				repo.EXPECT().GetDepositRequestByID(gomock.Any(), int64(11)).Return(approved, nil)
				repo.EXPECT().UpdateDepositRequestStatus(gomock.Any(), int64(11), domain.RequestPending, domain.RequestApproved).
					Return(domain.ErrInvalidStateTransition)
			},
			expectedError: domain.ErrInvalidStateTransition,
		},
		{
			name: "Credit failure reverts the claim",
			prepareMock: func(repo *MockDepositRepo, txRepo *MockTransactionRepo, balance *MockBalance) {
				repo.EXPECT().GetDepositRequestByID(gomock.Any(), int64(11)).Return(pending, nil)
				repo.EXPECT().UpdateDepositRequestStatus(gomock.Any(), int64(11), domain.RequestPending, domain.RequestApproved).Return(nil)
				balance.EXPECT().Credit(gomock.Any(), userID, 100.0).Return(nil, domain.ErrConcurrencyConflict)
				repo.EXPECT().UpdateDepositRequestStatus(gomock.Any(), int64(11), domain.RequestApproved, domain.RequestPending).Return(nil)
			},
			expectedError: domain.ErrConcurrencyConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, depositRepo, transactionRepo, balance, _ := NewMock(t)
			tt.prepareMock(depositRepo, transactionRepo, balance)

			err := service.Approve(context.Background(), int64(11))
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReject(t *testing.T) {
	userID := uuid.New()
	pending := &domain.DepositRequest{ID: 11, UserID: userID, Amount: 100, Status: domain.RequestPending}

	t.Run("Rejects the request and its ledger entry with no balance effect", func(t *testing.T) {
		service, depositRepo, transactionRepo, _, txManager := NewMock(t)
		depositRepo.EXPECT().GetDepositRequestByID(gomock.Any(), int64(11)).Return(pending, nil)
		passThroughTx(txManager)
		depositRepo.EXPECT().UpdateDepositRequestStatus(gomock.Any(), int64(11), domain.RequestPending, domain.RequestRejected).Return(nil)
		transactionRepo.EXPECT().UpdateStatusByReference(gomock.Any(), domain.TransactionDeposit, "11", domain.TransactionRejected).Return(nil)

		assert.NoError(t, service.Reject(context.Background(), int64(11)))
	})

	t.Run("Unknown request", func(t *testing.T) {
		service, depositRepo, _, _, _ := NewMock(t)
		depositRepo.EXPECT().GetDepositRequestByID(gomock.Any(), int64(11)).Return(nil, nil)

		assert.ErrorIs(t, service.Reject(context.Background(), int64(11)), domain.ErrRequestNotFound)
	})

	t.Run("Rejected request can't be rejected twice", func(t *testing.T) {
		service, depositRepo, _, _, txManager := NewMock(t)
		rejected := &domain.DepositRequest{ID: 11, UserID: userID, Amount: 100, Status: domain.RequestRejected}
		depositRepo.EXPECT().GetDepositRequestByID(gomock.Any(), int64(11)).Return(rejected, nil)
		passThroughTx(txManager)
		depositRepo.EXPECT().UpdateDepositRequestStatus(gomock.Any(), int64(11), domain.RequestPending, domain.RequestRejected).
			Return(domain.ErrInvalidStateTransition)

		assert.ErrorIs(t, service.Reject(context.Background(), int64(11)), domain.ErrInvalidStateTransition)
	})
}

func TestGetDeposits(t *testing.T) {
	userID := uuid.New()

	t.Run("Returns the user's requests", func(t *testing.T) {
		service, depositRepo, _, _, _ := NewMock(t)
		expected := []domain.DepositRequest{{ID: 11, UserID: userID, Amount: 100, Status: domain.RequestPending}}
		depositRepo.EXPECT().GetDepositRequestsByUserID(gomock.Any(), userID).Return(expected, nil)

		deposits, err := service.GetDeposits(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, expected, deposits)
	})

	t.Run("Propagates store errors", func(t *testing.T) {
		service, depositRepo, _, _, _ := NewMock(t)
		depositRepo.EXPECT().GetDepositRequestsByUserID(gomock.Any(), userID).Return(nil, errors.New("db error"))

		_, err := service.GetDeposits(context.Background(), userID)
		assert.Error(t, err)
	})
}
