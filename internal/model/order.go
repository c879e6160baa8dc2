package model

import "time"

// OrderStatus is the order lifecycle state.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
)

// Order links a pharmacist, a supplier, a drug and a quantity. Transitions
// Pending → Confirmed only via supplier confirmation.
type Order struct {
	ID              string      `json:"order_id" db:"order_id"`
	SupplierID      string      `json:"supplier_id" db:"supplier_id"`
	PharmacistID    string      `json:"pharmacist_id" db:"pharmacist_id"`
	DrugName        string      `json:"drug_name" db:"drug_name"`
	OrderedQuantity int         `json:"ordered_quantity" db:"ordered_quantity"`
	OrderDate       time.Time   `json:"order_date" db:"order_date"`
	Status          OrderStatus `json:"status" db:"status"`
}

// SupplierOrderView is the supplier's pending-order listing, joined with
// supplier and pharmacist details.
type SupplierOrderView struct {
	OrderID            string      `json:"order_id" db:"order_id"`
	DrugName           string      `json:"drug_name" db:"drug_name"`
	OrderedQuantity    int         `json:"ordered_quantity" db:"ordered_quantity"`
	OrderDate          time.Time   `json:"order_date" db:"order_date"`
	Status             OrderStatus `json:"status" db:"status"`
	SupplierName       *string     `json:"supplier_name" db:"supplier_name"`
	SupplierContact    *string     `json:"supplier_contact" db:"supplier_contact"`
	PharmacistUsername *string     `json:"pharmacist_username" db:"pharmacist_username"`
}

// PlaceOrderRequest is the pharmacist's order payload. Quantity positivity
// is a domain rule, checked by the workflow rather than the binding layer.
type PlaceOrderRequest struct {
	DrugName        string `json:"drugName" binding:"required"`
	OrderedQuantity int    `json:"orderedQuantity"`
	SupplierID      string `json:"supplierId" binding:"required"`
	PharmacistID    string `json:"pharmacistId" binding:"required"`
}
