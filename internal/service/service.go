package service

import (
	"github.com/ndychko/gowallet/internal/handlers/deposit"
	"github.com/ndychko/gowallet/internal/handlers/wallet"
	"github.com/ndychko/gowallet/internal/handlers/withdrawal"

	"github.com/ndychko/gowallet/internal/pg"
	"github.com/ndychko/gowallet/internal/repo"
	balanceservice "github.com/ndychko/gowallet/internal/service/balanceservice"
	depositservice "github.com/ndychko/gowallet/internal/service/depositservice"
	withdrawalservice "github.com/ndychko/gowallet/internal/service/withdrawalservice"
)

type Services struct {
	BalanceService    wallet.Service
	WithdrawalService withdrawal.Service
	DepositService    deposit.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, accountCache balanceservice.AccountCache) *Services {
	balanceService := balanceservice.New(repo.Account, repo.Transaction, accountCache)
	withdrawalService := withdrawalservice.New(repo.Withdrawal, repo.Transaction, balanceService, txManager)
	depositService := depositservice.New(repo.Deposit, repo.Transaction, balanceService, txManager)

	return &Services{
		BalanceService:    balanceService,
		WithdrawalService: withdrawalService,
		DepositService:    depositService,
	}
}
