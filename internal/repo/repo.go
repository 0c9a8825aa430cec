package repo

import (
	"github.com/ndychko/gowallet/internal/pg"
	accountrepo "github.com/ndychko/gowallet/internal/repo/account-repo"
	depositrepo "github.com/ndychko/gowallet/internal/repo/deposit-repo"
	transactionrepo "github.com/ndychko/gowallet/internal/repo/transaction-repo"
	withdrawalrepo "github.com/ndychko/gowallet/internal/repo/withdrawal-repo"
)

type Repositories struct {
	Account     *accountrepo.Repository
	Transaction *transactionrepo.Repository
	Withdrawal  *withdrawalrepo.Repository
	Deposit     *depositrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		Account:     accountrepo.New(conn),
		Transaction: transactionrepo.New(conn),
		Withdrawal:  withdrawalrepo.New(conn),
		Deposit:     depositrepo.New(conn),
	}
}
