package memory

import (
	"context"
	"sort"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository"
)

type fulfillmentRepo struct {
	store *Store
}

func (r *fulfillmentRepo) Create(ctx context.Context, f *model.Fulfillment) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	r.store.fulfillments = append(r.store.fulfillments, *f)
	return nil
}

func (r *fulfillmentRepo) TopPharmacist(ctx context.Context) (*model.PharmacistStats, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)

	if len(r.store.fulfillments) == 0 {
		return nil, repository.ErrNotFound
	}

	byPharmacist := make(map[string]*model.PharmacistStats)
	for _, f := range r.store.fulfillments {
		stats, ok := byPharmacist[f.PharmacistID]
		if !ok {
			stats = &model.PharmacistStats{PharmacistID: f.PharmacistID}
			byPharmacist[f.PharmacistID] = stats
		}
		stats.TotalFulfillments++
		stats.TotalRevenue += f.Price
	}

	ranked := make([]*model.PharmacistStats, 0, len(byPharmacist))
	for _, stats := range byPharmacist {
		ranked = append(ranked, stats)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalFulfillments != ranked[j].TotalFulfillments {
			return ranked[i].TotalFulfillments > ranked[j].TotalFulfillments
		}
		if ranked[i].TotalRevenue != ranked[j].TotalRevenue {
			return ranked[i].TotalRevenue > ranked[j].TotalRevenue
		}
		return ranked[i].PharmacistID < ranked[j].PharmacistID
	})

	top := *ranked[0]
	return &top, nil
}
