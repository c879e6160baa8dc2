package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository"
	"github.com/jwalitptl/pharmacy-api/pkg/apperror"
)

type Servicer interface {
	Place(ctx context.Context, req *model.PlaceOrderRequest) (*model.Order, error)
	Confirm(ctx context.Context, orderID string) error
	ListForPharmacist(ctx context.Context, pharmacistID string) ([]*model.Order, error)
	ListPendingForSupplier(ctx context.Context, supplierID string) ([]*model.SupplierOrderView, error)
}

// Service owns the restock order lifecycle between pharmacists and
// suppliers.
type Service struct {
	store repository.Store
	now   func() time.Time
}

func NewService(store repository.Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) Place(ctx context.Context, req *model.PlaceOrderRequest) (*model.Order, error) {
	if req.OrderedQuantity <= 0 {
		return nil, apperror.InvalidQuantity("ordered quantity must be a positive number")
	}

	o := &model.Order{
		ID:              uuid.NewString(),
		SupplierID:      req.SupplierID,
		PharmacistID:    req.PharmacistID,
		DrugName:        req.DrugName,
		OrderedQuantity: req.OrderedQuantity,
		OrderDate:       s.now(),
		Status:          model.OrderStatusPending,
	}
	if err := s.store.Orders().Create(ctx, o); err != nil {
		return nil, apperror.Store(err)
	}
	return o, nil
}

// Confirm receives a pending order into the pharmacist's inventory and
// flips it to Confirmed, all in one transaction. Confirming twice is
// rejected instead of double-counting stock.
func (s *Service) Confirm(ctx context.Context, orderID string) error {
	err := s.store.WithTx(ctx, func(ctx context.Context, st repository.Store) error {
		o, err := st.Orders().GetPending(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperror.NotFoundMsg("order not found or already confirmed")
			}
			return err
		}

		received := s.now()
		rows, err := st.Inventory().AddStock(ctx, o.PharmacistID, o.DrugName, o.SupplierID, o.OrderedQuantity, received)
		if err != nil {
			return err
		}
		if rows == 0 {
			supplierID := o.SupplierID
			if err := st.Inventory().Insert(ctx, &model.InventoryItem{
				PharmacistID:  o.PharmacistID,
				DrugName:      o.DrugName,
				Quantity:      o.OrderedQuantity,
				SupplierID:    &supplierID,
				LastOrderDate: &received,
			}); err != nil {
				return err
			}
		}

		rows, err = st.Orders().ConfirmPending(ctx, o.ID, o.SupplierID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperror.AlreadyConfirmed("order already confirmed")
		}
		return nil
	})
	if err != nil {
		if _, ok := apperror.As(err); ok {
			return err
		}
		return apperror.Store(err)
	}
	return nil
}

func (s *Service) ListForPharmacist(ctx context.Context, pharmacistID string) ([]*model.Order, error) {
	orders, err := s.store.Orders().ListByPharmacist(ctx, pharmacistID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return orders, nil
}

func (s *Service) ListPendingForSupplier(ctx context.Context, supplierID string) ([]*model.SupplierOrderView, error) {
	orders, err := s.store.Orders().ListPendingBySupplier(ctx, supplierID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return orders, nil
}
