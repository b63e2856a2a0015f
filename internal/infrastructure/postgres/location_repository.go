package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/liderbrinquedos/miniwms/internal/domain"
	"github.com/liderbrinquedos/miniwms/internal/domain/entity"
	"github.com/liderbrinquedos/miniwms/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementação do porto LocationRepository sobre PostgreSQL
// (usável com pool ou tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository constrói o adaptador de persistência de localizações.
// Passar pool ou tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste uma localização nova. Cod ou Local duplicados devolvem
// ErrDuplicate (as duas colunas têm constraint única).
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (id, cod, local, armazem, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Cod, location.Local, location.Armazem, location.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByCod obtém uma localização pelo código. Devolve nil se não existe.
func (r *LocationRepo) GetByCod(cod string) (*entity.Location, error) {
	return r.getBy("cod", cod)
}

// GetByLocal obtém uma localização pelo rótulo Local. Devolve nil se não
// existe. É a chave de busca exposta pelo processamento de movimentos.
func (r *LocationRepo) GetByLocal(local string) (*entity.Location, error) {
	return r.getBy("local", local)
}

func (r *LocationRepo) getBy(column, value string) (*entity.Location, error) {
	query := fmt.Sprintf(`
		SELECT id, cod, local, armazem, created_at
		FROM locations WHERE %s = $1`, column)
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&l.ID, &l.Cod, &l.Local, &l.Armazem, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location by %s: %w", column, err)
	}
	return &l, nil
}

// List lista as localizações ordenadas por Local.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	query := `
		SELECT id, cod, local, armazem, created_at
		FROM locations ORDER BY local`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Cod, &l.Local, &l.Armazem, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
