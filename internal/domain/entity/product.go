package entity

import "time"

// Product representa um produto do catálogo, identificado pela referência (Ref),
// chave de negócio única. Criado pelo cadastro de catálogo; nunca excluído.
type Product struct {
	ID        string
	Ref       string // referência única (ex.: P1001)
	Name      string
	CreatedAt time.Time
}
