package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/pharmacy-api/internal/model"
)

type supplierChangeRepository struct {
	ext sqlx.ExtContext
}

func (r *supplierChangeRepository) Create(ctx context.Context, req *model.SupplierChangeRequest) error {
	query := `
		INSERT INTO supplier_change_requests (id, pharmacist_id, new_supplier_id, request_date, status)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.ext.ExecContext(ctx, query,
		req.ID,
		req.PharmacistID,
		req.NewSupplierID,
		req.RequestDate,
		req.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create supplier-change request: %w", err)
	}
	return nil
}

func (r *supplierChangeRepository) ListPending(ctx context.Context) ([]*model.SupplierChangeRequest, error) {
	query := `
		SELECT id, pharmacist_id, new_supplier_id, request_date, status
		FROM supplier_change_requests
		WHERE status = 'Pending'
	`
	var requests []*model.SupplierChangeRequest
	if err := sqlx.SelectContext(ctx, r.ext, &requests, query); err != nil {
		return nil, fmt.Errorf("failed to list supplier-change requests: %w", err)
	}
	return requests, nil
}

func (r *supplierChangeRepository) MarkFulfilled(ctx context.Context, pharmacistID, newSupplierID string) error {
	query := `
		UPDATE supplier_change_requests
		SET status = 'Fulfilled'
		WHERE pharmacist_id = $1 AND new_supplier_id = $2 AND status = 'Pending'
	`
	if _, err := r.ext.ExecContext(ctx, query, pharmacistID, newSupplierID); err != nil {
		return fmt.Errorf("failed to mark request fulfilled: %w", err)
	}
	return nil
}
