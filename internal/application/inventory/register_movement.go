package inventory

import (
	"context"
	"strconv"

	"github.com/liderbrinquedos/miniwms/internal/application/dto"
	"github.com/liderbrinquedos/miniwms/internal/domain"
)

// RegisterMovementFromRequest adapta o request HTTP ao caso de uso
// RegisterMovement(ctx, MovementInput). A quantidade chega como json.Number
// (número ou string numérica); valor não inteiro ou não positivo é rejeitado
// antes de qualquer lookup.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, in dto.RegisterMovementRequest) (string, error) {
	quantity, err := strconv.ParseInt(in.Quantity.String(), 10, 64)
	if err != nil || quantity <= 0 {
		return "", domain.ErrInvalidInput
	}
	input := MovementInput{
		LocationLocal: in.Location,
		ProductRef:    in.Product,
		Quantity:      quantity,
		Type:          in.Type,
	}
	return uc.RegisterMovement(ctx, input)
}
