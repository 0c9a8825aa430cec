package depositrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ndychko/gowallet/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_CreateDepositRequest(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Saves the request and writes back id and created_at",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO deposit_requests (user_id, amount, method, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at`)).
					WithArgs(userID, 100.0, "card", domain.RequestPending).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO deposit_requests (user_id, amount, method, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at`)).
					WithArgs(userID, 100.0, "card", domain.RequestPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			deposit := &domain.DepositRequest{
				UserID: userID,
				Amount: 100.0,
				Method: "card",
				Status: domain.RequestPending,
			}
			result, err := repo.CreateDepositRequest(context.Background(), deposit)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(11), result.ID)
				assert.Equal(t, now, result.CreatedAt)
			}
		})
	}
}

func TestRepository_GetDepositRequestByID(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.DepositRequest
	}{
		{
			name: "Existing request is returned",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "method", "status", "created_at"}).
					AddRow(int64(11), userID, 100.0, "card", domain.RequestPending, now)
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, user_id, amount, method, status, created_at
        FROM deposit_requests
        WHERE id = $1`)).
					WithArgs(int64(11)).
					WillReturnRows(rows)
			},
			result: &domain.DepositRequest{
				ID:        11,
				UserID:    userID,
				Amount:    100.0,
				Method:    "card",
				Status:    domain.RequestPending,
				CreatedAt: now,
			},
		},
		{
			name: "Unknown id returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, user_id, amount, method, status, created_at
        FROM deposit_requests
        WHERE id = $1`)).
					WithArgs(int64(11)).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, user_id, amount, method, status, created_at
        FROM deposit_requests
        WHERE id = $1`)).
					WithArgs(int64(11)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetDepositRequestByID(context.Background(), 11)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_GetDepositRequestsByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Returns the user's requests newest first",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "method", "status", "created_at"}).
					AddRow(int64(12), userID, 200.0, "paypal", domain.RequestPending, now).
					AddRow(int64(11), userID, 100.0, "card", domain.RequestApproved, now.Add(-time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, user_id, amount, method, status, created_at
        FROM deposit_requests
        WHERE user_id = $1
        ORDER BY created_at DESC`)).
					WithArgs(userID).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, user_id, amount, method, status, created_at
        FROM deposit_requests
        WHERE user_id = $1
        ORDER BY created_at DESC`)).
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetDepositRequestsByUserID(context.Background(), userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
		})
	}
}

func TestRepository_UpdateDepositRequestStatus(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
	}{
		{
			name: "Request in the expected state is updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
			UPDATE deposit_requests
			SET status = $1
			WHERE id = $2 AND status = $3`)).
					WithArgs(domain.RequestApproved, int64(11), domain.RequestPending).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Stale state is an invalid transition",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
			UPDATE deposit_requests
			SET status = $1
			WHERE id = $2 AND status = $3`)).
					WithArgs(domain.RequestApproved, int64(11), domain.RequestPending).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: domain.ErrInvalidStateTransition,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
			UPDATE deposit_requests
			SET status = $1
			WHERE id = $2 AND status = $3`)).
					WithArgs(domain.RequestApproved, int64(11), domain.RequestPending).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateDepositRequestStatus(context.Background(), 11, domain.RequestPending, domain.RequestApproved)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
