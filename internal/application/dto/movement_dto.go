package dto

import (
	"encoding/json"
	"time"
)

// RegisterMovementRequest corpo de POST /api/movement.
// Quantity é json.Number para aceitar tanto número JSON quanto string numérica.
type RegisterMovementRequest struct {
	Location string      `json:"location" validate:"required"`
	Product  string      `json:"product" validate:"required"`
	Quantity json.Number `json:"quantity" validate:"required"`
	Type     string      `json:"type" validate:"required"`
}

// MovementResponse saída de um movimento aplicado com sucesso.
type MovementResponse struct {
	Success  bool   `json:"success"`
	Location string `json:"location"`
}

// MovementLogItem item do histórico de movimentos (mais recentes primeiro).
type MovementLogItem struct {
	CreatedAt time.Time `json:"created_at"`
	Location  string    `json:"location"`
	Ref       string    `json:"ref"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
}
