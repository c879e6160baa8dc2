package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository"
)

type orderRepository struct {
	ext sqlx.ExtContext
}

func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	query := `
		INSERT INTO orders (
			order_id, supplier_id, pharmacist_id, drug_name,
			ordered_quantity, order_date, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.ext.ExecContext(ctx, query,
		o.ID,
		o.SupplierID,
		o.PharmacistID,
		o.DrugName,
		o.OrderedQuantity,
		o.OrderDate,
		o.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *orderRepository) GetPending(ctx context.Context, orderID string) (*model.Order, error) {
	query := `
		SELECT order_id, supplier_id, pharmacist_id, drug_name,
		       ordered_quantity, order_date, status
		FROM orders
		WHERE order_id = $1 AND status = 'Pending'
	`
	var o model.Order
	if err := sqlx.GetContext(ctx, r.ext, &o, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pending order: %w", err)
	}
	return &o, nil
}

func (r *orderRepository) ListByPharmacist(ctx context.Context, pharmacistID string) ([]*model.Order, error) {
	query := `
		SELECT order_id, supplier_id, pharmacist_id, drug_name,
		       ordered_quantity, order_date, status
		FROM orders
		WHERE pharmacist_id = $1
	`
	var orders []*model.Order
	if err := sqlx.SelectContext(ctx, r.ext, &orders, query, pharmacistID); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) ListPendingBySupplier(ctx context.Context, supplierID string) ([]*model.SupplierOrderView, error) {
	query := `
		SELECT o.order_id, o.drug_name, o.ordered_quantity, o.order_date, o.status,
		       s.name AS supplier_name, s.contact_info AS supplier_contact,
		       p.username AS pharmacist_username
		FROM orders o
		JOIN suppliers s ON o.supplier_id = s.id
		LEFT JOIN pharmacists p ON o.pharmacist_id = p.id
		WHERE o.status = 'Pending' AND o.supplier_id = $1
	`
	var orders []*model.SupplierOrderView
	if err := sqlx.SelectContext(ctx, r.ext, &orders, query, supplierID); err != nil {
		return nil, fmt.Errorf("failed to list supplier orders: %w", err)
	}
	return orders, nil
}

// ConfirmPending scopes the flip by order, supplier and current status so a
// concurrent or duplicate confirmation matches zero rows.
func (r *orderRepository) ConfirmPending(ctx context.Context, orderID, supplierID string) (int64, error) {
	query := `
		UPDATE orders
		SET status = 'Confirmed'
		WHERE order_id = $1 AND supplier_id = $2 AND status = 'Pending'
	`
	result, err := r.ext.ExecContext(ctx, query, orderID, supplierID)
	if err != nil {
		return 0, fmt.Errorf("failed to confirm order: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

func (r *orderRepository) DeletePendingByPharmacist(ctx context.Context, pharmacistID string) error {
	query := "DELETE FROM orders WHERE pharmacist_id = $1 AND status = 'Pending'"
	if _, err := r.ext.ExecContext(ctx, query, pharmacistID); err != nil {
		return fmt.Errorf("failed to delete pending orders: %w", err)
	}
	return nil
}

func (r *orderRepository) DeleteBySupplier(ctx context.Context, supplierID string) error {
	if _, err := r.ext.ExecContext(ctx, "DELETE FROM orders WHERE supplier_id = $1", supplierID); err != nil {
		return fmt.Errorf("failed to delete supplier orders: %w", err)
	}
	return nil
}
