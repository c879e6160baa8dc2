package memory

import (
	"context"
	"sort"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository"
)

type prescriptionRepo struct {
	store *Store
}

func (r *prescriptionRepo) Create(ctx context.Context, p *model.Prescription) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	r.store.prescriptions[p.ID] = *p
	return nil
}

func (r *prescriptionRepo) Get(ctx context.Context, id string) (*model.Prescription, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)

	p, ok := r.store.prescriptions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (r *prescriptionRepo) ListByDoctor(ctx context.Context, doctorID string) ([]*model.Prescription, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)

	var out []*model.Prescription
	for _, p := range r.store.prescriptions {
		if p.DoctorID == doctorID {
			cp := p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *prescriptionRepo) ListByPatient(ctx context.Context, patientID string) ([]*model.PatientPrescriptionView, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)

	var ids []string
	for id, p := range r.store.prescriptions {
		if p.PatientID == patientID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	out := make([]*model.PatientPrescriptionView, 0, len(ids))
	for _, id := range ids {
		p := r.store.prescriptions[id]
		out = append(out, &model.PatientPrescriptionView{
			DoctorID:         p.DoctorID,
			Medications:      p.Medications,
			Instructions:     p.Instructions,
			PrescriptionDate: p.PrescriptionDate,
		})
	}
	return out, nil
}

func (r *prescriptionRepo) DeleteByDoctor(ctx context.Context, doctorID string) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	for id, p := range r.store.prescriptions {
		if p.DoctorID == doctorID {
			delete(r.store.prescriptions, id)
		}
	}
	return nil
}

func (r *prescriptionRepo) DeleteByPatient(ctx context.Context, patientID string) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)

	for id, p := range r.store.prescriptions {
		if p.PatientID == patientID {
			delete(r.store.prescriptions, id)
		}
	}
	return nil
}
