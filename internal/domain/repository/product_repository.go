package repository

import "github.com/liderbrinquedos/miniwms/internal/domain/entity"

// ProductRepository define o porto de persistência para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByRef(ref string) (*entity.Product, error)
	List() ([]*entity.Product, error)
}
