package repository

import "github.com/liderbrinquedos/miniwms/internal/domain/entity"

// MovementRepository define o porto de persistência do histórico de movimentos.
// O histórico é append-only: não há update nem delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	ListRecent(limit int) ([]*entity.MovementView, error)
}
