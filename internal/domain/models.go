package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionWin        TransactionType = "win"
	TransactionLoss       TransactionType = "loss"
	TransactionAdjustment TransactionType = "adjustment"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionRejected  TransactionStatus = "rejected"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
	RequestSettled  RequestStatus = "settled"
)

type WithdrawalMethod string

const (
	MethodBank   WithdrawalMethod = "bank"
	MethodCrypto WithdrawalMethod = "crypto"
	MethodPayPal WithdrawalMethod = "paypal"
)

// Account holds one user's funds split into the part free to spend and the
// part reserved against pending withdrawals. Version is bumped on every
// balance change and guards concurrent updates.
type Account struct {
	UserID    uuid.UUID `db:"user_id"`
	Available float64   `db:"available_balance"`
	Locked    float64   `db:"locked_balance"`
	Version   int64     `db:"version"`
}

// Total is the sum of available and locked funds.
func (a *Account) Total() float64 {
	return a.Available + a.Locked
}

// Transaction is one entry of the append-only ledger. Only Status changes
// after creation; rows are never deleted.
type Transaction struct {
	ID            int64             `db:"id"`
	UserID        uuid.UUID         `db:"user_id"`
	Type          TransactionType   `db:"type"`
	Amount        float64           `db:"amount"`
	BalanceBefore float64           `db:"balance_before"`
	BalanceAfter  float64           `db:"balance_after"`
	Status        TransactionStatus `db:"status"`
	Description   string            `db:"description"`
	ReferenceID   string            `db:"reference_id"`
	CreatedAt     time.Time         `db:"created_at"`
}

type WithdrawalRequest struct {
	ID             int64            `db:"id"`
	UserID         uuid.UUID        `db:"user_id"`
	Amount         float64          `db:"amount"`
	Method         WithdrawalMethod `db:"method"`
	AccountDetails json.RawMessage  `db:"account_details"`
	Status         RequestStatus    `db:"status"`
	CreatedAt      time.Time        `db:"created_at"`
}

type DepositRequest struct {
	ID        int64         `db:"id"`
	UserID    uuid.UUID     `db:"user_id"`
	Amount    float64       `db:"amount"`
	Method    string        `db:"method"`
	Status    RequestStatus `db:"status"`
	CreatedAt time.Time     `db:"created_at"`
}
