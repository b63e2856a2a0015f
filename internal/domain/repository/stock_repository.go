package repository

import "github.com/liderbrinquedos/miniwms/internal/domain/entity"

// StockRepository define o porto de persistência para o saldo de estoque.
type StockRepository interface {
	// GetForUpdate obtém o saldo do par e bloqueia a linha (SELECT FOR UPDATE).
	// Se o par não existe, devolve um Stock com Quantity zero.
	GetForUpdate(locationID, productID string) (*entity.Stock, error)
	// Add incrementa a quantidade do par de forma atômica, criando a linha se
	// não existir (upsert incremental, seguro contra entradas concorrentes).
	Add(locationID, productID string, quantity int64) error
	Upsert(stock *entity.Stock) error
	// DeleteNonPositive remove toda linha com quantidade <= 0.
	DeleteNonPositive() error
	ListView() ([]*entity.StockView, error)
}
