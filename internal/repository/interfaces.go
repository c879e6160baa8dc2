package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jwalitptl/pharmacy-api/internal/model"
)

// Sentinel errors shared by all implementations. Services translate these
// into the domain taxonomy at the workflow boundary.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

type (
	// IdentityRepository handles the five role-partitioned credential tables.
	IdentityRepository interface {
		// GetByUsername searches the partitions in login order; the first
		// username match wins.
		GetByUsername(ctx context.Context, username string) (*model.Identity, error)
		Get(ctx context.Context, role model.Role, id string) (*model.Identity, error)
		Create(ctx context.Context, identity *model.Identity) error
		List(ctx context.Context, role model.Role) ([]*model.Identity, error)
		// Update writes only the mutable attributes of the identity's role.
		Update(ctx context.Context, identity *model.Identity) error
		Delete(ctx context.Context, role model.Role, id string) error
	}

	PrescriptionRepository interface {
		Create(ctx context.Context, p *model.Prescription) error
		Get(ctx context.Context, id string) (*model.Prescription, error)
		ListByDoctor(ctx context.Context, doctorID string) ([]*model.Prescription, error)
		ListByPatient(ctx context.Context, patientID string) ([]*model.PatientPrescriptionView, error)
		DeleteByDoctor(ctx context.Context, doctorID string) error
		DeleteByPatient(ctx context.Context, patientID string) error
	}

	InventoryRepository interface {
		ListByPharmacist(ctx context.Context, pharmacistID string) ([]*model.InventoryItem, error)
		StockLevels(ctx context.Context, pharmacistID string) ([]*model.StockLevel, error)
		Insert(ctx context.Context, item *model.InventoryItem) error
		// AddStock increments the row matched by (pharmacist, drug, supplier)
		// and bumps last_order_date, returning the number of rows matched.
		// Zero means the drug has never been stocked for this pharmacist.
		AddStock(ctx context.Context, pharmacistID, drugName, supplierID string, qty int, date time.Time) (int64, error)
		Decrement(ctx context.Context, pharmacistID, drugName string, qty int) error
		DeleteByPharmacist(ctx context.Context, pharmacistID string) error
		// DetachSupplier nulls the supplier association on every row that
		// references the supplier.
		DetachSupplier(ctx context.Context, supplierID string) error
		ReassignSupplier(ctx context.Context, pharmacistID, newSupplierID string) error
		// LowStock returns the pharmacist's rows whose drug appears below
		// the threshold anywhere, for any pharmacist.
		LowStock(ctx context.Context, pharmacistID string, threshold int) ([]*model.StockLevel, error)
	}

	OrderRepository interface {
		Create(ctx context.Context, o *model.Order) error
		GetPending(ctx context.Context, orderID string) (*model.Order, error)
		ListByPharmacist(ctx context.Context, pharmacistID string) ([]*model.Order, error)
		ListPendingBySupplier(ctx context.Context, supplierID string) ([]*model.SupplierOrderView, error)
		// ConfirmPending flips Pending → Confirmed scoped by order, supplier
		// and status, returning rows matched. Zero signals a concurrent or
		// duplicate confirmation.
		ConfirmPending(ctx context.Context, orderID, supplierID string) (int64, error)
		DeletePendingByPharmacist(ctx context.Context, pharmacistID string) error
		DeleteBySupplier(ctx context.Context, supplierID string) error
	}

	FulfillmentRepository interface {
		Create(ctx context.Context, f *model.Fulfillment) error
		// TopPharmacist aggregates the log by pharmacist: count desc, then
		// revenue desc, then id asc. ErrNotFound when the log is empty.
		TopPharmacist(ctx context.Context) (*model.PharmacistStats, error)
	}

	SupplierChangeRepository interface {
		Create(ctx context.Context, req *model.SupplierChangeRequest) error
		ListPending(ctx context.Context) ([]*model.SupplierChangeRequest, error)
		MarkFulfilled(ctx context.Context, pharmacistID, newSupplierID string) error
	}
)

// Store bundles the repositories over one backing store and provides the
// atomic unit of work every multi-step workflow runs in.
type Store interface {
	Identities() IdentityRepository
	Prescriptions() PrescriptionRepository
	Inventory() InventoryRepository
	Orders() OrderRepository
	Fulfillments() FulfillmentRepository
	SupplierChanges() SupplierChangeRepository

	// WithTx runs fn inside one all-or-nothing unit. Any error aborts and
	// rolls back every write issued through the store fn receives.
	WithTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}
