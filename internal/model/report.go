package model

// PharmacistStats is the top-pharmacist aggregate over the fulfillment log.
type PharmacistStats struct {
	PharmacistID      string  `json:"pharmacist_id" db:"pharmacist_id"`
	TotalFulfillments int     `json:"total_fulfillments" db:"total_fulfillments"`
	TotalRevenue      float64 `json:"total_revenue" db:"total_revenue"`
}
