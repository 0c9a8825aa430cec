package dto

import (
	"encoding/json"
	"time"
)

type WithdrawalCreateRequestDTO struct {
	Amount         float64         `json:"amount" validate:"required,gt=0" example:"50"`
	Method         string          `json:"method" validate:"required,oneof=bank crypto paypal" example:"bank"`
	AccountDetails json.RawMessage `json:"account_details" validate:"required"`
}

type WithdrawalResponseDTO struct {
	ID        int64     `json:"id" example:"7"`
	Amount    float64   `json:"amount" example:"50"`
	Method    string    `json:"method" example:"bank"`
	Status    string    `json:"status" example:"pending"`
	CreatedAt time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
