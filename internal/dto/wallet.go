package dto

import "time"

type BalanceResponseDTO struct {
	Available float64 `json:"available" example:"500.5"`
	Locked    float64 `json:"locked" example:"50"`
	Total     float64 `json:"total" example:"550.5"`
}

type TransactionResponseDTO struct {
	ID            int64     `json:"id" example:"42"`
	Type          string    `json:"type" example:"deposit"`
	Amount        float64   `json:"amount" example:"100"`
	BalanceBefore float64   `json:"balance_before" example:"0"`
	BalanceAfter  float64   `json:"balance_after" example:"100"`
	Status        string    `json:"status" example:"completed"`
	Description   string    `json:"description" example:"Deposit via card"`
	ReferenceID   string    `json:"reference_id,omitempty" example:"7"`
	CreatedAt     time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
