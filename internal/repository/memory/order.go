package memory

import (
	"context"
	"sort"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository"
)

type orderRepo struct {
	store *Store
}

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	r.store.orders[o.ID] = *o
	return nil
}

func (r *orderRepo) GetPending(ctx context.Context, orderID string) (*model.Order, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)

	o, ok := r.store.orders[orderID]
	if !ok || o.Status != model.OrderStatusPending {
		return nil, repository.ErrNotFound
	}
	cp := o
	return &cp, nil
}

func (r *orderRepo) ListByPharmacist(ctx context.Context, pharmacistID string) ([]*model.Order, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)

	var out []*model.Order
	for _, o := range r.store.orders {
		if o.PharmacistID == pharmacistID {
			cp := o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *orderRepo) ListPendingBySupplier(ctx context.Context, supplierID string) ([]*model.SupplierOrderView, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)

	supplier, hasSupplier := r.store.identities[model.RoleSupplier][supplierID]

	var ids []string
	for id, o := range r.store.orders {
		if o.SupplierID == supplierID && o.Status == model.OrderStatusPending {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	out := make([]*model.SupplierOrderView, 0, len(ids))
	for _, id := range ids {
		// inner join: orders without a supplier row are dropped
		if !hasSupplier {
			continue
		}
		o := r.store.orders[id]
		view := &model.SupplierOrderView{
			OrderID:         o.ID,
			DrugName:        o.DrugName,
			OrderedQuantity: o.OrderedQuantity,
			OrderDate:       o.OrderDate,
			Status:          o.Status,
			SupplierName:    supplier.Name,
			SupplierContact: supplier.ContactInfo,
		}
		if pharmacist, ok := r.store.identities[model.RolePharmacist][o.PharmacistID]; ok {
			username := pharmacist.Username
			view.PharmacistUsername = &username
		}
		out = append(out, view)
	}
	return out, nil
}

func (r *orderRepo) ConfirmPending(ctx context.Context, orderID, supplierID string) (int64, error) {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	o, ok := r.store.orders[orderID]
	if !ok || o.SupplierID != supplierID || o.Status != model.OrderStatusPending {
		return 0, nil
	}
	o.Status = model.OrderStatusConfirmed
	r.store.orders[orderID] = o
	return 1, nil
}

func (r *orderRepo) DeletePendingByPharmacist(ctx context.Context, pharmacistID string) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	for id, o := range r.store.orders {
		if o.PharmacistID == pharmacistID && o.Status == model.OrderStatusPending {
			delete(r.store.orders, id)
		}
	}
	return nil
}

func (r *orderRepo) DeleteBySupplier(ctx context.Context, supplierID string) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	for id, o := range r.store.orders {
		if o.SupplierID == supplierID {
			delete(r.store.orders, id)
		}
	}
	return nil
}
