// internal/repository/dao.go
package repository

import (
	"context"

	"ledgerbase/internal/domain"
)

// DAO is the data access gateway for one entity kind. It is the only path by which the
// application reads or writes ledger rows.
type DAO interface {
	// Build decodes fields into a new entity and validates it without touching the database.
	Build(fields Fields) (domain.Entity, error)
	// Insert writes an entity returned by Build using q and returns the stored row.
	// Callers own the transaction q belongs to.
	Insert(ctx context.Context, q DBExecutor, entity domain.Entity) (domain.Entity, error)
	// Create is Build followed by Insert.
	Create(ctx context.Context, q DBExecutor, fields Fields) (domain.Entity, error)
	// Filter returns every entity of the kind, ordered by key.
	Filter(ctx context.Context, q DBExecutor) ([]domain.Entity, error)
	// Get returns the entity with the given primary key values, in KeyNames order.
	Get(ctx context.Context, q DBExecutor, keys ...int64) (domain.Entity, error)
	// KeyNames lists the primary key columns.
	KeyNames() []string
}
