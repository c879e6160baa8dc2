package supplierchange

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository"
	"github.com/jwalitptl/pharmacy-api/pkg/apperror"
)

type Servicer interface {
	Submit(ctx context.Context, req *model.ChangeSupplierRequest) (*model.SupplierChangeRequest, error)
	ListPending(ctx context.Context) ([]*model.SupplierChangeRequest, error)
	Fulfill(ctx context.Context, req *model.FulfillSupplierChangeRequest) error
}

// Service runs the two-step supplier reassignment workflow: a pharmacist
// submits a request, an admin fulfills it.
type Service struct {
	store repository.Store
	now   func() time.Time
}

func NewService(store repository.Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) Submit(ctx context.Context, req *model.ChangeSupplierRequest) (*model.SupplierChangeRequest, error) {
	if !strings.HasPrefix(req.NewSupplierID, model.SupplierIDPrefix) {
		return nil, apperror.Validation(`supplier ID must start with "supp"`)
	}

	r := &model.SupplierChangeRequest{
		ID:            uuid.NewString(),
		PharmacistID:  req.PharmacistID,
		NewSupplierID: req.NewSupplierID,
		RequestDate:   s.now(),
		Status:        model.RequestStatusPending,
	}
	if err := s.store.SupplierChanges().Create(ctx, r); err != nil {
		return nil, apperror.Store(err)
	}
	return r, nil
}

func (s *Service) ListPending(ctx context.Context) ([]*model.SupplierChangeRequest, error) {
	requests, err := s.store.SupplierChanges().ListPending(ctx)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return requests, nil
}

// Fulfill points every inventory row of the pharmacist at the new supplier
// and marks the matching pending request fulfilled, atomically.
func (s *Service) Fulfill(ctx context.Context, req *model.FulfillSupplierChangeRequest) error {
	err := s.store.WithTx(ctx, func(ctx context.Context, st repository.Store) error {
		if err := st.Inventory().ReassignSupplier(ctx, req.PharmacistID, req.NewSupplierID); err != nil {
			return err
		}
		return st.SupplierChanges().MarkFulfilled(ctx, req.PharmacistID, req.NewSupplierID)
	})
	if err != nil {
		return apperror.Store(err)
	}
	return nil
}
