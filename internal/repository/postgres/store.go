package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/pharmacy-api/internal/repository"
)

// store implements repository.Store over either a *sqlx.DB or an open
// transaction. Repositories issue their queries through the ExtContext so
// the same code serves both.
type store struct {
	ext sqlx.ExtContext
	db  *sqlx.DB // nil inside a transaction
}

// NewStore creates a repository.Store backed by a pooled connection.
func NewStore(db *sqlx.DB) repository.Store {
	return &store{ext: db, db: db}
}

func (s *store) Identities() repository.IdentityRepository {
	return &identityRepository{ext: s.ext}
}

func (s *store) Prescriptions() repository.PrescriptionRepository {
	return &prescriptionRepository{ext: s.ext}
}

func (s *store) Inventory() repository.InventoryRepository {
	return &inventoryRepository{ext: s.ext}
}

func (s *store) Orders() repository.OrderRepository {
	return &orderRepository{ext: s.ext}
}

func (s *store) Fulfillments() repository.FulfillmentRepository {
	return &fulfillmentRepository{ext: s.ext}
}

func (s *store) SupplierChanges() repository.SupplierChangeRepository {
	return &supplierChangeRepository{ext: s.ext}
}

// WithTx runs fn inside one transaction, rolling back on any error. A
// nested call reuses the already-open transaction.
func (s *store) WithTx(ctx context.Context, fn func(ctx context.Context, st repository.Store) error) error {
	if s.db == nil {
		return fn(ctx, s)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := &store{ext: tx}
	if err := fn(ctx, txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
