package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migrations esquema idempotente. Tanto cod quanto local carregam constraint
// única: o cadastro trata as duas como chaves de negócio independentes.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		ref TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS locations (
		id UUID PRIMARY KEY,
		cod TEXT UNIQUE NOT NULL,
		local TEXT UNIQUE NOT NULL,
		armazem TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS stock (
		id UUID PRIMARY KEY,
		location_id UUID NOT NULL REFERENCES locations (id),
		product_id UUID NOT NULL REFERENCES products (id),
		quantity BIGINT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (location_id, product_id)
	)`,
	`CREATE TABLE IF NOT EXISTS movements (
		id UUID PRIMARY KEY,
		location_id UUID NOT NULL REFERENCES locations (id),
		product_id UUID NOT NULL REFERENCES products (id),
		quantity BIGINT NOT NULL,
		type TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_created_at ON movements (created_at DESC)`,
}

// Migrate cria o esquema se ainda não existir.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar migração: %w", err)
		}
	}
	return nil
}
