package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/liderbrinquedos/miniwms/internal/application/dto"
	"github.com/liderbrinquedos/miniwms/internal/domain"
	"github.com/liderbrinquedos/miniwms/internal/domain/entity"
	"github.com/liderbrinquedos/miniwms/internal/domain/repository"
)

// DefaultArmazem armazém padrão quando o cadastro não informa um.
const DefaultArmazem = "LOG"

// CatalogUseCase cadastro e listagem de produtos e localizações.
// Não há update nem delete de catálogo.
type CatalogUseCase struct {
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewCatalogUseCase constrói o caso de uso.
func NewCatalogUseCase(productRepo repository.ProductRepository, locationRepo repository.LocationRepository) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, locationRepo: locationRepo}
}

// AddProduct cadastra um produto novo. Ref já usado devolve ErrDuplicate.
func (uc *CatalogUseCase) AddProduct(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.productRepo.GetByRef(in.Ref)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		Ref:       in.Ref,
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	// O repositório mapeia violação de unicidade para ErrDuplicate,
	// cobrindo a corrida entre o check acima e o insert.
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// AddLocation cadastra uma localização nova. Cod OU Local já usados devolvem
// ErrDuplicate (duas chaves únicas independentes). Armazem vazio vira "LOG".
func (uc *CatalogUseCase) AddLocation(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Armazem == "" {
		in.Armazem = DefaultArmazem
	}
	byCod, err := uc.locationRepo.GetByCod(in.Cod)
	if err != nil {
		return nil, err
	}
	byLocal, err := uc.locationRepo.GetByLocal(in.Local)
	if err != nil {
		return nil, err
	}
	if byCod != nil || byLocal != nil {
		return nil, domain.ErrDuplicate
	}
	location := &entity.Location{
		ID:        uuid.New().String(),
		Cod:       in.Cod,
		Local:     in.Local,
		Armazem:   in.Armazem,
		CreatedAt: time.Now(),
	}
	if err := uc.locationRepo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// ListProducts lista o catálogo de produtos ordenado por referência.
func (uc *CatalogUseCase) ListProducts() ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// ListLocations lista as localizações ordenadas por Local.
func (uc *CatalogUseCase) ListLocations() ([]dto.LocationResponse, error) {
	list, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Ref:       p.Ref,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:        l.ID,
		Cod:       l.Cod,
		Local:     l.Local,
		Armazem:   l.Armazem,
		CreatedAt: l.CreatedAt,
	}
}
