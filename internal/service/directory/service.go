package directory

import (
	"context"
	"errors"
	"strings"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository"
	"github.com/jwalitptl/pharmacy-api/pkg/apperror"
)

type Servicer interface {
	List(ctx context.Context, role model.Role) ([]*model.Identity, error)
	Update(ctx context.Context, identity *model.Identity) error
	Delete(ctx context.Context, role model.Role, id string) error
}

// Service manages the admin-facing rosters of doctors, pharmacists,
// patients and suppliers.
type Service struct {
	store repository.Store
}

func NewService(store repository.Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, role model.Role) ([]*model.Identity, error) {
	identities, err := s.store.Identities().List(ctx, role)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return identities, nil
}

func (s *Service) Update(ctx context.Context, identity *model.Identity) error {
	if err := s.store.Identities().Update(ctx, identity); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound(roleNoun(identity.Role))
		}
		return apperror.Store(err)
	}
	return nil
}

// Delete removes an account together with every record that only makes
// sense while the account exists. Each cascade runs in one transaction so
// a failed step leaves nothing half-deleted.
func (s *Service) Delete(ctx context.Context, role model.Role, id string) error {
	err := s.store.WithTx(ctx, func(ctx context.Context, st repository.Store) error {
		switch role {
		case model.RoleDoctor:
			if err := st.Prescriptions().DeleteByDoctor(ctx, id); err != nil {
				return err
			}
		case model.RolePatient:
			if err := st.Prescriptions().DeleteByPatient(ctx, id); err != nil {
				return err
			}
		case model.RolePharmacist:
			if err := st.Inventory().DeleteByPharmacist(ctx, id); err != nil {
				return err
			}
			if err := st.Orders().DeletePendingByPharmacist(ctx, id); err != nil {
				return err
			}
		case model.RoleSupplier:
			if err := st.Orders().DeleteBySupplier(ctx, id); err != nil {
				return err
			}
			if err := st.Inventory().DetachSupplier(ctx, id); err != nil {
				return err
			}
		}
		return st.Identities().Delete(ctx, role, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound(roleNoun(role))
		}
		return apperror.Store(err)
	}
	return nil
}

func roleNoun(role model.Role) string {
	return strings.ToLower(string(role))
}
