package memory

import (
	"context"
	"sort"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository"
)

type identityRepo struct {
	store *Store
}

func (r *identityRepo) GetByUsername(ctx context.Context, username string) (*model.Identity, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)

	for _, role := range model.AllRoles() {
		for _, identity := range r.store.identities[role] {
			if identity.Username == username {
				cp := identity
				cp.Role = role
				return &cp, nil
			}
		}
	}
	return nil, repository.ErrNotFound
}

func (r *identityRepo) Get(ctx context.Context, role model.Role, id string) (*model.Identity, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)

	identity, ok := r.store.identities[role][id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := identity
	cp.Role = role
	return &cp, nil
}

func (r *identityRepo) Create(ctx context.Context, identity *model.Identity) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	partition := r.store.identities[identity.Role]
	if _, exists := partition[identity.ID]; exists {
		return repository.ErrDuplicate
	}
	for _, existing := range partition {
		if existing.Username == identity.Username {
			return repository.ErrDuplicate
		}
	}
	partition[identity.ID] = *identity
	return nil
}

func (r *identityRepo) List(ctx context.Context, role model.Role) ([]*model.Identity, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)

	partition := r.store.identities[role]
	out := make([]*model.Identity, 0, len(partition))
	for _, identity := range partition {
		cp := identity
		cp.Role = role
		cp.Password = ""
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *identityRepo) Update(ctx context.Context, identity *model.Identity) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	partition := r.store.identities[identity.Role]
	existing, ok := partition[identity.ID]
	if !ok {
		return repository.ErrNotFound
	}

	switch identity.Role {
	case model.RoleDoctor:
		existing.Specialty = identity.Specialty
	case model.RolePharmacist:
		existing.PharmacyLocation = identity.PharmacyLocation
	case model.RolePatient:
		existing.ContactInfo = identity.ContactInfo
		existing.DateOfBirth = identity.DateOfBirth
	case model.RoleSupplier:
		existing.ContactInfo = identity.ContactInfo
		existing.Address = identity.Address
	}
	partition[identity.ID] = existing
	return nil
}

func (r *identityRepo) Delete(ctx context.Context, role model.Role, id string) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	partition := r.store.identities[role]
	if _, ok := partition[id]; !ok {
		return repository.ErrNotFound
	}
	delete(partition, id)
	return nil
}
