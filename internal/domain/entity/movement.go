package entity

import "time"

// Tipos de movimento de estoque.
const (
	MovementTypeEntry = "entry" // entrada
	MovementTypeExit  = "exit"  // saída
)

// Movement é um registro imutável do histórico de movimentações.
// Representa um fato, não o estado atual.
type Movement struct {
	ID         string
	LocationID string
	ProductID  string
	Quantity   int64 // sempre positivo; o sinal vem do Type
	Type       string
	CreatedAt  time.Time
}

// MovementView é a projeção de leitura do histórico com campos de exibição.
type MovementView struct {
	CreatedAt time.Time
	Local     string
	Ref       string
	Name      string
	Type      string
	Quantity  int64
}
