package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/liderbrinquedos/miniwms/internal/domain"
	"github.com/liderbrinquedos/miniwms/internal/domain/entity"
	"github.com/liderbrinquedos/miniwms/internal/domain/repository"
)

// RegisterMovementUseCase aplica um movimento de estoque (entry/exit) como
// uma transação atômica: bloqueio de linha (SELECT FOR UPDATE) nas saídas,
// upsert incremental nas entradas, registro no histórico e varredura de
// linhas zeradas, com Commit ou Rollback.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewRegisterMovementUseCase constrói o caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// MovementInput entrada para aplicar um movimento de estoque.
// LocationLocal é o rótulo Local da localização (não o Cod); ProductRef é a
// referência do produto.
type MovementInput struct {
	LocationLocal string
	ProductRef    string
	Quantity      int64
	Type          string
}

// RegisterMovement valida a entrada, resolve localização e produto, e aplica
// o movimento dentro de uma transação. Devolve o rótulo Local resolvido.
// Tipo desconhecido é rejeitado como entrada inválida antes de qualquer lookup.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (string, error) {
	switch input.Type {
	case entity.MovementTypeEntry, entity.MovementTypeExit:
	default:
		return "", domain.ErrInvalidInput
	}
	if input.LocationLocal == "" || input.ProductRef == "" || input.Quantity <= 0 {
		return "", domain.ErrInvalidInput
	}

	location, err := uc.locationRepo.GetByLocal(input.LocationLocal)
	if err != nil {
		return "", err
	}
	if location == nil {
		return "", domain.ErrLocationNotFound
	}
	product, err := uc.productRepo.GetByRef(input.ProductRef)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", domain.ErrProductNotFound
	}

	now := time.Now()

	// Inicia a transação; Commit se tudo ok, Rollback se algo falha (TxRunner.Run).
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		switch input.Type {
		case entity.MovementTypeEntry:
			// Incremento atômico: duas entradas concorrentes no mesmo par
			// nunca perdem um incremento.
			if err := stockRepo.Add(location.ID, product.ID, input.Quantity); err != nil {
				return err
			}
		case entity.MovementTypeExit:
			// Bloqueia a linha do par; a verificação de saldo e a subtração
			// ficam na mesma transação para evitar saídas dupla-gastas.
			stock, err := stockRepo.GetForUpdate(location.ID, product.ID)
			if err != nil {
				return err
			}
			if stock.Quantity < input.Quantity {
				return domain.ErrInsufficientStock
			}
			stock.Quantity -= input.Quantity
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}
		}

		mov := &entity.Movement{
			ID:         uuid.New().String(),
			LocationID: location.ID,
			ProductID:  product.ID,
			Quantity:   input.Quantity,
			Type:       input.Type,
			CreatedAt:  now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		// Varredura ampla de linhas zeradas, na mesma transação.
		return stockRepo.DeleteNonPositive()
	})
	if err != nil {
		return "", err
	}
	return location.Local, nil
}
