package inventory

import (
	"context"

	"github.com/liderbrinquedos/miniwms/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante a atomicidade do processamento
// de movimentos: ou tudo é confirmado, ou nada é.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}
