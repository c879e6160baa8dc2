package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository"
)

type identityRepository struct {
	ext sqlx.ExtContext
}

func tableFor(role model.Role) string {
	switch role {
	case model.RoleAdmin:
		return "admins"
	case model.RoleDoctor:
		return "doctors"
	case model.RolePatient:
		return "patients"
	case model.RolePharmacist:
		return "pharmacists"
	default:
		return "suppliers"
	}
}

// listColumns are the per-role public projections; passwords never leave
// the credential lookup path.
func listColumns(role model.Role) string {
	switch role {
	case model.RoleDoctor:
		return "id, username, specialty"
	case model.RolePharmacist:
		return "id, username, pharmacy_location"
	case model.RolePatient:
		return "id, username, date_of_birth, contact_info"
	case model.RoleSupplier:
		return "id, name, contact_info, address, username"
	default:
		return "id, username"
	}
}

func (r *identityRepository) GetByUsername(ctx context.Context, username string) (*model.Identity, error) {
	for _, role := range model.AllRoles() {
		query := fmt.Sprintf("SELECT id, username, password_hash FROM %s WHERE username = $1", tableFor(role))
		var identity model.Identity
		err := sqlx.GetContext(ctx, r.ext, &identity, query, username)
		if err == nil {
			identity.Role = role
			return &identity, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to look up %s credentials: %w", role, err)
		}
	}
	return nil, repository.ErrNotFound
}

func (r *identityRepository) Get(ctx context.Context, role model.Role, id string) (*model.Identity, error) {
	query := fmt.Sprintf("SELECT id, username, password_hash FROM %s WHERE id = $1", tableFor(role))
	var identity model.Identity
	if err := sqlx.GetContext(ctx, r.ext, &identity, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", role, err)
	}
	identity.Role = role
	return &identity, nil
}

func (r *identityRepository) Create(ctx context.Context, identity *model.Identity) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (id, username, password_hash) VALUES ($1, $2, $3)",
		tableFor(identity.Role),
	)
	_, err := r.ext.ExecContext(ctx, query, identity.ID, identity.Username, identity.Password)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create %s: %w", identity.Role, err)
	}
	return nil
}

func (r *identityRepository) List(ctx context.Context, role model.Role) ([]*model.Identity, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", listColumns(role), tableFor(role))
	var identities []*model.Identity
	if err := sqlx.SelectContext(ctx, r.ext, &identities, query); err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", role, err)
	}
	for _, id := range identities {
		id.Role = role
	}
	return identities, nil
}

func (r *identityRepository) Update(ctx context.Context, identity *model.Identity) error {
	var (
		query string
		args  []interface{}
	)
	switch identity.Role {
	case model.RoleDoctor:
		query = "UPDATE doctors SET specialty = $1 WHERE id = $2"
		args = []interface{}{identity.Specialty, identity.ID}
	case model.RolePharmacist:
		query = "UPDATE pharmacists SET pharmacy_location = $1 WHERE id = $2"
		args = []interface{}{identity.PharmacyLocation, identity.ID}
	case model.RolePatient:
		query = "UPDATE patients SET contact_info = $1, date_of_birth = $2 WHERE id = $3"
		args = []interface{}{identity.ContactInfo, identity.DateOfBirth, identity.ID}
	case model.RoleSupplier:
		query = "UPDATE suppliers SET contact_info = $1, address = $2 WHERE id = $3"
		args = []interface{}{identity.ContactInfo, identity.Address, identity.ID}
	default:
		return fmt.Errorf("role %s has no mutable attributes", identity.Role)
	}

	result, err := r.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", identity.Role, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *identityRepository) Delete(ctx context.Context, role model.Role, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", tableFor(role))
	result, err := r.ext.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", role, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}
