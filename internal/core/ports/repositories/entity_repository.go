package repositories

import (
	"context"

	"github.com/swiftbill/invoicing_app/internal/core/domain"
)

// EntityRepository defines generic persistence for a single entity type.
// Each entity lives under its own ID within a per-type namespace, and
// implementations maintain a list index alongside every write so List does
// not scan the whole store.
type EntityRepository[T any] interface {
	// Exists reports whether an entity with the given ID is stored.
	Exists(ctx context.Context, id string) (bool, error)

	// Get retrieves a single entity, or apperrors.ErrNotFound.
	Get(ctx context.Context, id string) (*T, error)

	// List retrieves all entities of the type in index order.
	List(ctx context.Context) ([]T, error)

	// Create stores a new entity, or apperrors.ErrDuplicate if the ID is taken.
	Create(ctx context.Context, id string, entity T) error

	// Save replaces the stored entity wholesale, inserting it if absent.
	Save(ctx context.Context, id string, entity T) error

	// Patch merges the given fields into the stored entity, or
	// apperrors.ErrNotFound. Field names follow the entity's JSON encoding.
	Patch(ctx context.Context, id string, fields map[string]any) error

	// Delete removes the entity and reports whether it was present.
	Delete(ctx context.Context, id string) (bool, error)
}

type ClientRepository = EntityRepository[domain.Client]
type InvoiceRepository = EntityRepository[domain.Invoice]
type EstimateRepository = EntityRepository[domain.Estimate]
type BusinessProfileRepository = EntityRepository[domain.BusinessProfile]
