package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/liderbrinquedos/miniwms/internal/domain/entity"
	"github.com/liderbrinquedos/miniwms/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementação de StockRepository sobre PostgreSQL (usável com
// pool ou tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository constrói o adaptador de estoque. Passar pool ou tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetForUpdate obtém o saldo do par e bloqueia a linha (SELECT FOR UPDATE).
// Par inexistente devolve um Stock com quantidade zero.
func (r *StockRepo) GetForUpdate(locationID, productID string) (*entity.Stock, error) {
	query := `
		SELECT id, location_id, product_id, quantity, updated_at
		FROM stock WHERE location_id = $1 AND product_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, locationID, productID).Scan(
		&s.ID, &s.LocationID, &s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{LocationID: locationID, ProductID: productID, Quantity: 0}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Add incrementa a quantidade do par de forma atômica, criando a linha se
// não existir. O incremento acontece no banco (quantity + EXCLUDED.quantity),
// então duas entradas concorrentes nunca perdem um incremento.
func (r *StockRepo) Add(locationID, productID string, quantity int64) error {
	query := `
		INSERT INTO stock (id, location_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (location_id, product_id)
		DO UPDATE SET quantity = stock.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, uuid.New().String(), locationID, productID, quantity)
	if err != nil {
		return fmt.Errorf("add stock: %w", err)
	}
	return nil
}

// Upsert insere ou grava a quantidade absoluta do par (usado pela saída,
// com a linha já bloqueada por GetForUpdate).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	if stock.ID == "" {
		stock.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock (id, location_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (location_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.LocationID, stock.ProductID, stock.Quantity,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// DeleteNonPositive remove toda linha de saldo com quantidade <= 0.
// Varredura ampla, não restrita ao par corrente: linhas assim são raras.
func (r *StockRepo) DeleteNonPositive() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock WHERE quantity <= 0`)
	if err != nil {
		return fmt.Errorf("delete non-positive stock: %w", err)
	}
	return nil
}

// ListView lista o saldo atual com os campos de exibição, ordenado por Local.
func (r *StockRepo) ListView() ([]*entity.StockView, error) {
	query := `
		SELECT l.local, l.cod, l.armazem, p.ref, p.name, s.quantity
		FROM stock s
		JOIN locations l ON s.location_id = l.id
		JOIN products p ON s.product_id = p.id
		ORDER BY l.local`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock view: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockView
	for rows.Next() {
		var v entity.StockView
		if err := rows.Scan(&v.Local, &v.Cod, &v.Armazem, &v.Ref, &v.Name, &v.Quantity); err != nil {
			return nil, fmt.Errorf("scan stock view: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
