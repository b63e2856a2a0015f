package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/liderbrinquedos/miniwms/internal/domain/entity"
	"github.com/liderbrinquedos/miniwms/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação de MovementRepository sobre PostgreSQL
// (usável com pool ou tx). O histórico é append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste um movimento de estoque.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, location_id, product_id, quantity, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.LocationID, movement.ProductID,
		movement.Quantity, movement.Type, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListRecent lista os movimentos mais recentes com campos de exibição,
// do mais novo para o mais antigo.
func (r *MovementRepo) ListRecent(limit int) ([]*entity.MovementView, error) {
	query := `
		SELECT m.created_at, l.local, p.ref, p.name, m.type, m.quantity
		FROM movements m
		JOIN locations l ON m.location_id = l.id
		JOIN products p ON m.product_id = p.id
		ORDER BY m.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementView
	for rows.Next() {
		var v entity.MovementView
		if err := rows.Scan(&v.CreatedAt, &v.Local, &v.Ref, &v.Name, &v.Type, &v.Quantity); err != nil {
			return nil, fmt.Errorf("scan movement view: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
