package report

import (
	"context"
	"errors"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository"
	"github.com/jwalitptl/pharmacy-api/pkg/apperror"
)

type Servicer interface {
	TopPharmacist(ctx context.Context) (*model.PharmacistStats, error)
	LowStock(ctx context.Context, pharmacistID string) ([]*model.StockLevel, error)
	StockLevels(ctx context.Context, pharmacistID string) ([]*model.StockLevel, error)
}

// Service answers the read-only reporting queries.
type Service struct {
	store repository.Store
}

func NewService(store repository.Store) *Service {
	return &Service{store: store}
}

func (s *Service) TopPharmacist(ctx context.Context) (*model.PharmacistStats, error) {
	stats, err := s.store.Fulfillments().TopPharmacist(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFoundMsg("no top pharmacist found")
		}
		return nil, apperror.Store(err)
	}
	return stats, nil
}

// LowStock returns the pharmacist's rows for drugs running low anywhere in
// the network, not just on the caller's own shelf.
func (s *Service) LowStock(ctx context.Context, pharmacistID string) ([]*model.StockLevel, error) {
	levels, err := s.store.Inventory().LowStock(ctx, pharmacistID, model.LowStockThreshold)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return levels, nil
}

func (s *Service) StockLevels(ctx context.Context, pharmacistID string) ([]*model.StockLevel, error) {
	levels, err := s.store.Inventory().StockLevels(ctx, pharmacistID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return levels, nil
}
