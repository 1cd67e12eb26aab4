package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres expects the kv_entries table from internal/migrations.
type Postgres struct {
	pool      *pgxpool.Pool
	namespace string
}

func NewPostgres(pool *pgxpool.Pool, namespace string) (*Postgres, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	if namespace == "" {
		return nil, fmt.Errorf("namespace is empty")
	}

	return &Postgres{pool: pool, namespace: namespace}, nil
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	var value string

	err := p.pool.QueryRow(ctx,
		`SELECT entry_value FROM kv_entries WHERE namespace = $1 AND entry_key = $2`,
		p.namespace, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("pool.QueryRow: %w", err)
	}

	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO kv_entries (namespace, entry_key, entry_value) VALUES ($1, $2, $3)
		ON CONFLICT (namespace, entry_key) DO UPDATE
		SET entry_value = EXCLUDED.entry_value, updated_at = NOW()`,
		p.namespace, key, value,
	)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	_, err := p.pool.Exec(ctx,
		`DELETE FROM kv_entries WHERE namespace = $1 AND entry_key = $2`,
		p.namespace, key,
	)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}
