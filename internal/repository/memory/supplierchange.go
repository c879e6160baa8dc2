package memory

import (
	"context"

	"github.com/jwalitptl/pharmacy-api/internal/model"
)

type supplierChangeRepo struct {
	store *Store
}

func (r *supplierChangeRepo) Create(ctx context.Context, req *model.SupplierChangeRequest) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	r.store.changeRequests = append(r.store.changeRequests, *req)
	return nil
}

func (r *supplierChangeRepo) ListPending(ctx context.Context) ([]*model.SupplierChangeRequest, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)

	var out []*model.SupplierChangeRequest
	for i := range r.store.changeRequests {
		if r.store.changeRequests[i].Status == model.RequestStatusPending {
			cp := r.store.changeRequests[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *supplierChangeRepo) MarkFulfilled(ctx context.Context, pharmacistID, newSupplierID string) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	for i := range r.store.changeRequests {
		req := &r.store.changeRequests[i]
		if req.PharmacistID == pharmacistID && req.NewSupplierID == newSupplierID &&
			req.Status == model.RequestStatusPending {
			req.Status = model.RequestStatusFulfilled
		}
	}
	return nil
}
