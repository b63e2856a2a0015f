package entity

import "time"

// Stock é o saldo atual de um produto em uma localização (par único).
// Invariante: nenhuma linha persiste com Quantity <= 0 — ela é removida na
// mesma transação do movimento que a zeraria.
type Stock struct {
	ID         string
	LocationID string
	ProductID  string
	Quantity   int64
	UpdatedAt  time.Time
}

// StockView é a projeção de leitura do saldo com os campos de exibição.
type StockView struct {
	Local    string
	Cod      string
	Armazem  string
	Ref      string
	Name     string
	Quantity int64
}
