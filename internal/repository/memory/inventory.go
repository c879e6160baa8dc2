package memory

import (
	"context"
	"time"

	"github.com/jwalitptl/pharmacy-api/internal/model"
)

type inventoryRepo struct {
	store *Store
}

func (r *inventoryRepo) ListByPharmacist(ctx context.Context, pharmacistID string) ([]*model.InventoryItem, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)

	var out []*model.InventoryItem
	for i := range r.store.inventory {
		if r.store.inventory[i].PharmacistID == pharmacistID {
			cp := r.store.inventory[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *inventoryRepo) StockLevels(ctx context.Context, pharmacistID string) ([]*model.StockLevel, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)

	var out []*model.StockLevel
	for i := range r.store.inventory {
		item := r.store.inventory[i]
		if item.PharmacistID == pharmacistID {
			out = append(out, &model.StockLevel{DrugName: item.DrugName, Quantity: item.Quantity})
		}
	}
	return out, nil
}

func (r *inventoryRepo) Insert(ctx context.Context, item *model.InventoryItem) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	r.store.inventory = append(r.store.inventory, *item)
	return nil
}

func (r *inventoryRepo) AddStock(ctx context.Context, pharmacistID, drugName, supplierID string, qty int, date time.Time) (int64, error) {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	var rows int64
	for i := range r.store.inventory {
		item := &r.store.inventory[i]
		if item.PharmacistID == pharmacistID && item.DrugName == drugName &&
			item.SupplierID != nil && *item.SupplierID == supplierID {
			item.Quantity += qty
			d := date
			item.LastOrderDate = &d
			rows++
		}
	}
	return rows, nil
}

func (r *inventoryRepo) Decrement(ctx context.Context, pharmacistID, drugName string, qty int) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	for i := range r.store.inventory {
		item := &r.store.inventory[i]
		if item.PharmacistID == pharmacistID && item.DrugName == drugName {
			item.Quantity -= qty
		}
	}
	return nil
}

func (r *inventoryRepo) DeleteByPharmacist(ctx context.Context, pharmacistID string) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	kept := r.store.inventory[:0]
	for _, item := range r.store.inventory {
		if item.PharmacistID != pharmacistID {
			kept = append(kept, item)
		}
	}
	r.store.inventory = kept
	return nil
}

func (r *inventoryRepo) DetachSupplier(ctx context.Context, supplierID string) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	for i := range r.store.inventory {
		item := &r.store.inventory[i]
		if item.SupplierID != nil && *item.SupplierID == supplierID {
			item.SupplierID = nil
		}
	}
	return nil
}

func (r *inventoryRepo) ReassignSupplier(ctx context.Context, pharmacistID, newSupplierID string) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	for i := range r.store.inventory {
		item := &r.store.inventory[i]
		if item.PharmacistID == pharmacistID {
			id := newSupplierID
			item.SupplierID = &id
		}
	}
	return nil
}

func (r *inventoryRepo) LowStock(ctx context.Context, pharmacistID string, threshold int) ([]*model.StockLevel, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)

	// Low drugs are collected across every pharmacist's rows.
	low := make(map[string]bool)
	for i := range r.store.inventory {
		if r.store.inventory[i].Quantity < threshold {
			low[r.store.inventory[i].DrugName] = true
		}
	}

	var out []*model.StockLevel
	for i := range r.store.inventory {
		item := r.store.inventory[i]
		if item.PharmacistID == pharmacistID && low[item.DrugName] {
			out = append(out, &model.StockLevel{DrugName: item.DrugName, Quantity: item.Quantity})
		}
	}
	return out, nil
}
