package model

import "strings"

// Prescription links a doctor, a patient and a medication list. Never
// updated or deleted directly; removed only by doctor/patient cascades.
type Prescription struct {
	ID               string `json:"prescription_id" db:"prescription_id"`
	PatientID        string `json:"patient_id" db:"patient_id"`
	DoctorID         string `json:"doctor_id" db:"doctor_id"`
	PrescriptionDate string `json:"prescription_date" db:"prescription_date"`
	// Medications is a denormalized comma-separated drug name list.
	Medications  string `json:"medications" db:"medications"`
	Instructions string `json:"instructions" db:"instructions"`
}

// MedicationList splits the medications field into trimmed, case-normalized
// drug names, preserving list order. Empty entries are dropped.
func (p *Prescription) MedicationList() []string {
	parts := strings.Split(p.Medications, ",")
	meds := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		meds = append(meds, name)
	}
	return meds
}

// PrescriptionView is the pharmacist lookup projection.
type PrescriptionView struct {
	DoctorID         string `json:"doctor_id" db:"doctor_id"`
	PrescriptionDate string `json:"prescription_date" db:"prescription_date"`
	Medications      string `json:"medications" db:"medications"`
	Instructions     string `json:"instructions" db:"instructions"`
}

// PatientPrescriptionView is the patient-facing projection.
type PatientPrescriptionView struct {
	DoctorID         string `json:"doctor_id" db:"doctor_id"`
	Medications      string `json:"medications" db:"medications"`
	Instructions     string `json:"instructions" db:"instructions"`
	PrescriptionDate string `json:"prescription_date" db:"prescription_date"`
}

// CreatePrescriptionRequest is the doctor's create payload.
type CreatePrescriptionRequest struct {
	PatientID        string `json:"patient_id" binding:"required"`
	DoctorID         string `json:"doctor_id" binding:"required"`
	PrescriptionDate string `json:"prescription_date" binding:"required"`
	Medications      string `json:"medications" binding:"required"`
	Instructions     string `json:"instructions" binding:"required"`
}

// Fulfillment is one append-only dispensing event.
type Fulfillment struct {
	PrescriptionID string  `json:"prescription_id" db:"prescription_id"`
	PharmacistID   string  `json:"pharmacist_id" db:"pharmacist_id"`
	FulfillDate    string  `json:"fulfill_date" db:"fulfill_date"`
	Price          float64 `json:"price" db:"price"`
}

// FulfillPrescriptionRequest is the pharmacist's fulfillment payload.
type FulfillPrescriptionRequest struct {
	PrescriptionID  string  `json:"prescriptionId" binding:"required"`
	PharmacistID    string  `json:"pharmacistId" binding:"required"`
	FulfillmentDate string  `json:"fulfillmentDate" binding:"required"`
	Price           float64 `json:"priceInput"`
}
