package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/swiftbill/invoicing_app/internal/apperrors"
)

// PgxEntityRepository stores one entity type as JSONB rows in the shared
// entities table, keyed by (entity_type, entity_id). An entity_index row is
// maintained inside the same transaction as every create/save/delete, so
// List reads the index rather than scanning by type.
type PgxEntityRepository[T any] struct {
	pool       *pgxpool.Pool
	entityName string
	indexName  string
}

// NewPgxEntityRepository creates a repository for the given entity type.
func NewPgxEntityRepository[T any](pool *pgxpool.Pool, entityName, indexName string) *PgxEntityRepository[T] {
	return &PgxEntityRepository[T]{pool: pool, entityName: entityName, indexName: indexName}
}

// Exists reports whether an entity with the given ID is stored.
func (r *PgxEntityRepository[T]) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM entities WHERE entity_type = $1 AND entity_id = $2);`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, r.entityName, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence of %s %s: %w", r.entityName, id, err)
	}
	return exists, nil
}

// Get retrieves a single entity by ID.
func (r *PgxEntityRepository[T]) Get(ctx context.Context, id string) (*T, error) {
	query := `SELECT data FROM entities WHERE entity_type = $1 AND entity_id = $2;`

	var raw []byte
	err := r.pool.QueryRow(ctx, query, r.entityName, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s %s: %w", r.entityName, id, err)
	}

	var entity T
	if err := json.Unmarshal(raw, &entity); err != nil {
		return nil, fmt.Errorf("failed to decode %s %s: %w", r.entityName, id, err)
	}
	return &entity, nil
}

// List retrieves all entities of the type, ordered by index insertion.
func (r *PgxEntityRepository[T]) List(ctx context.Context) ([]T, error) {
	query := `
		SELECT e.data
		FROM entity_index i
		JOIN entities e ON e.entity_type = $1 AND e.entity_id = i.entity_id
		WHERE i.index_name = $2
		ORDER BY i.created_at, i.entity_id;
	`
	rows, err := r.pool.Query(ctx, query, r.entityName, r.indexName)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s list: %w", r.entityName, err)
	}
	defer rows.Close()

	entities, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		var entity T
		var raw []byte
		if err := row.Scan(&raw); err != nil {
			return entity, err
		}
		err := json.Unmarshal(raw, &entity)
		return entity, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s list: %w", r.entityName, err)
	}

	if entities == nil {
		return []T{}, nil
	}
	return entities, nil
}

// Create inserts a new entity together with its index row.
func (r *PgxEntityRepository[T]) Create(ctx context.Context, id string, entity T) error {
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to encode %s %s: %w", r.entityName, id, err)
	}

	now := time.Now().UTC()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx for %s create: %w", r.entityName, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insertEntity := `
		INSERT INTO entities (entity_type, entity_id, data, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $4);
	`
	if _, err := tx.Exec(ctx, insertEntity, r.entityName, id, data, now); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert %s %s: %w", r.entityName, id, err)
	}

	if err := r.upsertIndexRow(ctx, tx, id, now); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Save replaces the stored entity wholesale, inserting it if absent.
func (r *PgxEntityRepository[T]) Save(ctx context.Context, id string, entity T) error {
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to encode %s %s: %w", r.entityName, id, err)
	}

	now := time.Now().UTC()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx for %s save: %w", r.entityName, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	upsertEntity := `
		INSERT INTO entities (entity_type, entity_id, data, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (entity_type, entity_id) DO UPDATE SET
			data = EXCLUDED.data,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	if _, err := tx.Exec(ctx, upsertEntity, r.entityName, id, data, now); err != nil {
		return fmt.Errorf("failed to save %s %s: %w", r.entityName, id, err)
	}

	if err := r.upsertIndexRow(ctx, tx, id, now); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Patch merges the given fields into the stored JSONB document.
func (r *PgxEntityRepository[T]) Patch(ctx context.Context, id string, fields map[string]any) error {
	partial, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode patch for %s %s: %w", r.entityName, id, err)
	}

	query := `
		UPDATE entities
		SET data = data || $3::jsonb, last_updated_at = $4
		WHERE entity_type = $1 AND entity_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query, r.entityName, id, partial, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to patch %s %s: %w", r.entityName, id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes the entity and its index row, reporting whether it existed.
func (r *PgxEntityRepository[T]) Delete(ctx context.Context, id string) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin tx for %s delete: %w", r.entityName, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM entities WHERE entity_type = $1 AND entity_id = $2;`, r.entityName, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete %s %s: %w", r.entityName, id, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM entity_index WHERE index_name = $1 AND entity_id = $2;`, r.indexName, id); err != nil {
		return false, fmt.Errorf("failed to delete index row for %s %s: %w", r.entityName, id, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit %s delete: %w", r.entityName, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgxEntityRepository[T]) upsertIndexRow(ctx context.Context, tx pgx.Tx, id string, now time.Time) error {
	query := `
		INSERT INTO entity_index (index_name, entity_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (index_name, entity_id) DO NOTHING;
	`
	if _, err := tx.Exec(ctx, query, r.indexName, id, now); err != nil {
		return fmt.Errorf("failed to update %s index: %w", r.indexName, err)
	}
	return nil
}
