package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/ndychko/gowallet/docs"
	deposithandlers "github.com/ndychko/gowallet/internal/handlers/deposit"
	wallethandlers "github.com/ndychko/gowallet/internal/handlers/wallet"
	withdrawalhandlers "github.com/ndychko/gowallet/internal/handlers/withdrawal"
	"github.com/ndychko/gowallet/internal/service"
	"github.com/ndychko/gowallet/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetDeposits(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WalletHandler     WalletHandler
	WithdrawalHandler WithdrawalHandler
	DepositHandler    DepositHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		WalletHandler:     wallethandlers.New(s.BalanceService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		DepositHandler:    deposithandlers.New(s.DepositService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router, jwtService *auth.JWTService) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/wallet", func(r chi.Router) {
		r.Use(jwtService.Middleware)
		r.Get("/balance", h.WalletHandler.GetBalance)
		r.Get("/transactions", h.WalletHandler.GetTransactions)
		r.Route("/deposits", func(r chi.Router) {
			r.Post("/", h.DepositHandler.Create)
			r.Get("/", h.DepositHandler.GetDeposits)
		})
		r.Route("/withdrawals", func(r chi.Router) {
			r.Post("/", h.WithdrawalHandler.Create)
			r.Get("/", h.WithdrawalHandler.GetWithdrawals)
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(jwtService.Middleware, jwtService.AdminOnly)
		r.Post("/withdrawals/{id}/approve", h.WithdrawalHandler.Approve)
		r.Post("/withdrawals/{id}/reject", h.WithdrawalHandler.Reject)
		r.Post("/deposits/{id}/approve", h.DepositHandler.Approve)
		r.Post("/deposits/{id}/reject", h.DepositHandler.Reject)
	})

	return r
}
