package prescription

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository"
	"github.com/jwalitptl/pharmacy-api/pkg/apperror"
)

type Servicer interface {
	Create(ctx context.Context, req *model.CreatePrescriptionRequest) (*model.Prescription, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*model.Prescription, error)
	ListByPatient(ctx context.Context, patientID string) ([]*model.PatientPrescriptionView, error)
	GetView(ctx context.Context, id string) (*model.PrescriptionView, error)
	Fulfill(ctx context.Context, req *model.FulfillPrescriptionRequest) error
}

// Service owns prescription issuance, lookup and fulfillment.
type Service struct {
	store repository.Store
}

func NewService(store repository.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, req *model.CreatePrescriptionRequest) (*model.Prescription, error) {
	p := &model.Prescription{
		ID:               uuid.NewString(),
		PatientID:        req.PatientID,
		DoctorID:         req.DoctorID,
		PrescriptionDate: req.PrescriptionDate,
		Medications:      req.Medications,
		Instructions:     req.Instructions,
	}
	if err := s.store.Prescriptions().Create(ctx, p); err != nil {
		return nil, apperror.Store(err)
	}
	return p, nil
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID string) ([]*model.Prescription, error) {
	prescriptions, err := s.store.Prescriptions().ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if len(prescriptions) == 0 {
		return nil, apperror.NotFoundMsg("no prescriptions found for this doctor")
	}
	return prescriptions, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*model.PatientPrescriptionView, error) {
	prescriptions, err := s.store.Prescriptions().ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if len(prescriptions) == 0 {
		return nil, apperror.NotFoundMsg("no prescriptions found for this patient")
	}
	return prescriptions, nil
}

func (s *Service) GetView(ctx context.Context, id string) (*model.PrescriptionView, error) {
	p, err := s.store.Prescriptions().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("prescription")
		}
		return nil, apperror.Store(err)
	}
	return &model.PrescriptionView{
		DoctorID:         p.DoctorID,
		PrescriptionDate: p.PrescriptionDate,
		Medications:      p.Medications,
		Instructions:     p.Instructions,
	}, nil
}

// Fulfill dispenses one unit of every medication on the prescription from
// the pharmacist's inventory and appends a fulfillment record. The whole
// list is validated against a working copy of the stock before any row is
// touched, so a failure on the third drug leaves the first two undispensed.
func (s *Service) Fulfill(ctx context.Context, req *model.FulfillPrescriptionRequest) error {
	err := s.store.WithTx(ctx, func(ctx context.Context, st repository.Store) error {
		p, err := st.Prescriptions().Get(ctx, req.PrescriptionID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperror.NotFound("prescription")
			}
			return err
		}

		meds := p.MedicationList()
		if len(meds) == 0 {
			return apperror.Validation("prescription lists no medications")
		}

		items, err := st.Inventory().ListByPharmacist(ctx, req.PharmacistID)
		if err != nil {
			return err
		}

		stock := make(map[string]*model.InventoryItem, len(items))
		remaining := make(map[string]int, len(items))
		for _, item := range items {
			key := normalizeDrug(item.DrugName)
			stock[key] = item
			remaining[key] = item.Quantity
		}

		// validation pass over the working copy; duplicates on the list
		// each consume a unit
		for _, med := range meds {
			if _, ok := stock[med]; !ok {
				return apperror.DrugNotFound(med)
			}
			if remaining[med] < 1 {
				return apperror.InsufficientStock(med)
			}
			remaining[med]--
		}

		for _, med := range meds {
			item := stock[med]
			if err := st.Inventory().Decrement(ctx, item.PharmacistID, item.DrugName, 1); err != nil {
				return err
			}
		}

		return st.Fulfillments().Create(ctx, &model.Fulfillment{
			PrescriptionID: req.PrescriptionID,
			PharmacistID:   req.PharmacistID,
			FulfillDate:    req.FulfillmentDate,
			Price:          req.Price,
		})
	})
	if err != nil {
		if _, ok := apperror.As(err); ok {
			return err
		}
		return apperror.Store(err)
	}
	return nil
}

func normalizeDrug(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
