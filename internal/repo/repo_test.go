package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	accountrepo "github.com/ndychko/gowallet/internal/repo/account-repo"
	depositrepo "github.com/ndychko/gowallet/internal/repo/deposit-repo"
	transactionrepo "github.com/ndychko/gowallet/internal/repo/transaction-repo"
	withdrawalrepo "github.com/ndychko/gowallet/internal/repo/withdrawal-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.Account)
	assert.NotNil(t, repo.Transaction)
	assert.NotNil(t, repo.Withdrawal)
	assert.NotNil(t, repo.Deposit)

	assert.IsType(t, &accountrepo.Repository{}, repo.Account)
	assert.IsType(t, &transactionrepo.Repository{}, repo.Transaction)
	assert.IsType(t, &withdrawalrepo.Repository{}, repo.Withdrawal)
	assert.IsType(t, &depositrepo.Repository{}, repo.Deposit)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
