package dto

import "time"

type DepositCreateRequestDTO struct {
	Amount float64 `json:"amount" validate:"required,gte=10,lte=10000" example:"100"`
	Method string  `json:"method" validate:"required" example:"card"`
}

type DepositResponseDTO struct {
	ID        int64     `json:"id" example:"3"`
	Amount    float64   `json:"amount" example:"100"`
	Method    string    `json:"method" example:"card"`
	Status    string    `json:"status" example:"pending"`
	CreatedAt time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
