package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/pharmacy-api/internal/model"
)

type inventoryRepository struct {
	ext sqlx.ExtContext
}

func (r *inventoryRepository) ListByPharmacist(ctx context.Context, pharmacistID string) ([]*model.InventoryItem, error) {
	query := `
		SELECT pharmacist_id, drug_name, quantity, supplier_id, last_order_date
		FROM inventory
		WHERE pharmacist_id = $1
	`
	var items []*model.InventoryItem
	if err := sqlx.SelectContext(ctx, r.ext, &items, query, pharmacistID); err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

func (r *inventoryRepository) StockLevels(ctx context.Context, pharmacistID string) ([]*model.StockLevel, error) {
	query := `
		SELECT drug_name, quantity
		FROM inventory
		WHERE pharmacist_id = $1
	`
	var levels []*model.StockLevel
	if err := sqlx.SelectContext(ctx, r.ext, &levels, query, pharmacistID); err != nil {
		return nil, fmt.Errorf("failed to fetch stock levels: %w", err)
	}
	return levels, nil
}

func (r *inventoryRepository) Insert(ctx context.Context, item *model.InventoryItem) error {
	query := `
		INSERT INTO inventory (pharmacist_id, drug_name, quantity, supplier_id, last_order_date)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.ext.ExecContext(ctx, query,
		item.PharmacistID,
		item.DrugName,
		item.Quantity,
		item.SupplierID,
		item.LastOrderDate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert inventory row: %w", err)
	}
	return nil
}

func (r *inventoryRepository) AddStock(ctx context.Context, pharmacistID, drugName, supplierID string, qty int, date time.Time) (int64, error) {
	query := `
		UPDATE inventory
		SET quantity = quantity + $1, last_order_date = $2
		WHERE pharmacist_id = $3 AND drug_name = $4 AND supplier_id = $5
	`
	result, err := r.ext.ExecContext(ctx, query, qty, date, pharmacistID, drugName, supplierID)
	if err != nil {
		return 0, fmt.Errorf("failed to add stock: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

func (r *inventoryRepository) Decrement(ctx context.Context, pharmacistID, drugName string, qty int) error {
	query := `
		UPDATE inventory
		SET quantity = quantity - $1
		WHERE pharmacist_id = $2 AND drug_name = $3
	`
	if _, err := r.ext.ExecContext(ctx, query, qty, pharmacistID, drugName); err != nil {
		return fmt.Errorf("failed to decrement stock for %s: %w", drugName, err)
	}
	return nil
}

func (r *inventoryRepository) DeleteByPharmacist(ctx context.Context, pharmacistID string) error {
	if _, err := r.ext.ExecContext(ctx, "DELETE FROM inventory WHERE pharmacist_id = $1", pharmacistID); err != nil {
		return fmt.Errorf("failed to delete inventory for pharmacist: %w", err)
	}
	return nil
}

func (r *inventoryRepository) DetachSupplier(ctx context.Context, supplierID string) error {
	if _, err := r.ext.ExecContext(ctx, "UPDATE inventory SET supplier_id = NULL WHERE supplier_id = $1", supplierID); err != nil {
		return fmt.Errorf("failed to detach supplier from inventory: %w", err)
	}
	return nil
}

func (r *inventoryRepository) ReassignSupplier(ctx context.Context, pharmacistID, newSupplierID string) error {
	query := "UPDATE inventory SET supplier_id = $1 WHERE pharmacist_id = $2"
	if _, err := r.ext.ExecContext(ctx, query, newSupplierID, pharmacistID); err != nil {
		return fmt.Errorf("failed to reassign supplier: %w", err)
	}
	return nil
}

// LowStock keeps the nested-query shape: the filter on drug names spans
// every pharmacist's rows, not just the requested one.
func (r *inventoryRepository) LowStock(ctx context.Context, pharmacistID string, threshold int) ([]*model.StockLevel, error) {
	query := `
		SELECT drug_name, quantity
		FROM inventory
		WHERE pharmacist_id = $1
		AND drug_name IN (
			SELECT drug_name
			FROM inventory
			WHERE quantity < $2
		)
	`
	var levels []*model.StockLevel
	if err := sqlx.SelectContext(ctx, r.ext, &levels, query, pharmacistID, threshold); err != nil {
		return nil, fmt.Errorf("failed to run low-stock check: %w", err)
	}
	return levels, nil
}
