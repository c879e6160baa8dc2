package model

import "time"

// LowStockThreshold is the fixed cutoff below which a drug is flagged,
// regardless of which pharmacist holds it.
const LowStockThreshold = 10

// InventoryItem is a per-(pharmacist, drug) quantity counter. Quantity must
// never go negative; fulfillment refuses when stock is insufficient.
type InventoryItem struct {
	PharmacistID string `json:"pharmacist_id" db:"pharmacist_id"`
	DrugName     string `json:"drug_name" db:"drug_name"`
	Quantity     int    `json:"quantity" db:"quantity"`
	// SupplierID is set NULL when the supplier is deleted.
	SupplierID    *string    `json:"supplier_id" db:"supplier_id"`
	LastOrderDate *time.Time `json:"last_order_date" db:"last_order_date"`
}

// StockLevel is the pharmacist-facing inventory projection.
type StockLevel struct {
	DrugName string `json:"drug_name" db:"drug_name"`
	Quantity int    `json:"quantity" db:"quantity"`
}
