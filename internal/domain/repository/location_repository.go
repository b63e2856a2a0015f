package repository

import "github.com/liderbrinquedos/miniwms/internal/domain/entity"

// LocationRepository define o porto de persistência para Location (DIP).
// Cod e Local são chaves únicas independentes; a busca de movimentos usa Local.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByCod(cod string) (*entity.Location, error)
	GetByLocal(local string) (*entity.Location, error)
	List() ([]*entity.Location, error)
}
