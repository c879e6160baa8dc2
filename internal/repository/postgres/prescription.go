package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository"
)

type prescriptionRepository struct {
	ext sqlx.ExtContext
}

func (r *prescriptionRepository) Create(ctx context.Context, p *model.Prescription) error {
	query := `
		INSERT INTO prescriptions (
			prescription_id, patient_id, doctor_id,
			prescription_date, medications, instructions
		) VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.ext.ExecContext(ctx, query,
		p.ID,
		p.PatientID,
		p.DoctorID,
		p.PrescriptionDate,
		p.Medications,
		p.Instructions,
	)
	if err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

func (r *prescriptionRepository) Get(ctx context.Context, id string) (*model.Prescription, error) {
	query := `
		SELECT prescription_id, patient_id, doctor_id,
		       prescription_date, medications, instructions
		FROM prescriptions
		WHERE prescription_id = $1
	`
	var p model.Prescription
	if err := sqlx.GetContext(ctx, r.ext, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get prescription: %w", err)
	}
	return &p, nil
}

func (r *prescriptionRepository) ListByDoctor(ctx context.Context, doctorID string) ([]*model.Prescription, error) {
	query := `
		SELECT prescription_id, patient_id, doctor_id,
		       prescription_date, medications, instructions
		FROM prescriptions
		WHERE doctor_id = $1
	`
	var prescriptions []*model.Prescription
	if err := sqlx.SelectContext(ctx, r.ext, &prescriptions, query, doctorID); err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) ListByPatient(ctx context.Context, patientID string) ([]*model.PatientPrescriptionView, error) {
	query := `
		SELECT doctor_id, medications, instructions, prescription_date
		FROM prescriptions
		WHERE patient_id = $1
	`
	var prescriptions []*model.PatientPrescriptionView
	if err := sqlx.SelectContext(ctx, r.ext, &prescriptions, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list patient prescriptions: %w", err)
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) DeleteByDoctor(ctx context.Context, doctorID string) error {
	if _, err := r.ext.ExecContext(ctx, "DELETE FROM prescriptions WHERE doctor_id = $1", doctorID); err != nil {
		return fmt.Errorf("failed to delete prescriptions for doctor: %w", err)
	}
	return nil
}

func (r *prescriptionRepository) DeleteByPatient(ctx context.Context, patientID string) error {
	if _, err := r.ext.ExecContext(ctx, "DELETE FROM prescriptions WHERE patient_id = $1", patientID); err != nil {
		return fmt.Errorf("failed to delete prescriptions for patient: %w", err)
	}
	return nil
}
