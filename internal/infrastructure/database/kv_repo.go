package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"petverse/internal/ports/output"
)

var _ output.KeyValueStore = (*KeyValueRepository)(nil)

// KeyValueRepository implements output.KeyValueStore on the local_storage
// table. One scope is one storage namespace (a browser profile, a Discord user).
type KeyValueRepository struct {
	pool  *pgxpool.Pool
	scope string
}

// NewKeyValueRepository creates a KeyValueRepository.
func NewKeyValueRepository(pool *pgxpool.Pool, scope string) *KeyValueRepository {
	return &KeyValueRepository{pool: pool, scope: scope}
}

const (
	getValueSQL    = `SELECT value FROM local_storage WHERE scope = $1 AND key = $2`
	upsertValueSQL = `INSERT INTO local_storage (scope, key, value, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (scope, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	deleteValueSQL = `DELETE FROM local_storage WHERE scope = $1 AND key = $2`
)

func (r *KeyValueRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.pool.QueryRow(ctx, getValueSQL, r.scope, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get value %q: %w", key, err)
	}
	return value, true, nil
}

func (r *KeyValueRepository) Set(ctx context.Context, key, value string) error {
	if _, err := r.pool.Exec(ctx, upsertValueSQL, r.scope, key, value); err != nil {
		return fmt.Errorf("set value %q: %w", key, err)
	}
	return nil
}

func (r *KeyValueRepository) Remove(ctx context.Context, key string) error {
	if _, err := r.pool.Exec(ctx, deleteValueSQL, r.scope, key); err != nil {
		return fmt.Errorf("remove value %q: %w", key, err)
	}
	return nil
}
