package model

import "time"

// RequestStatus is the supplier-change request lifecycle state.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "Pending"
	RequestStatusFulfilled RequestStatus = "Fulfilled"
)

// SupplierChangeRequest is a pending reassignment of a pharmacist's
// supplier, consumed by the admin fulfill action.
type SupplierChangeRequest struct {
	ID            string        `json:"id" db:"id"`
	PharmacistID  string        `json:"pharmacist_id" db:"pharmacist_id"`
	NewSupplierID string        `json:"new_supplier_id" db:"new_supplier_id"`
	RequestDate   time.Time     `json:"request_date" db:"request_date"`
	Status        RequestStatus `json:"status" db:"status"`
}

// ChangeSupplierRequest is the pharmacist's submission payload. The new
// supplier id must carry the supplier prefix.
type ChangeSupplierRequest struct {
	PharmacistID  string `json:"pharmacistId" binding:"required"`
	NewSupplierID string `json:"newSupplierId" binding:"required,supplierid"`
}

// FulfillSupplierChangeRequest is the admin's fulfill payload.
type FulfillSupplierChangeRequest struct {
	PharmacistID  string `json:"pharmacist_id" binding:"required"`
	NewSupplierID string `json:"new_supplier_id" binding:"required"`
}
