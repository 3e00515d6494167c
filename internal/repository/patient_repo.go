package repository

import (
	"context"
	"errors"
	"fmt"

	"patient_registry/internal/model"
	"patient_registry/internal/store"
)

// PatientRepository defines operations for patient data
type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	FindAll(ctx context.Context, page, limit int) (*model.PatientPage, error)
	FindByID(ctx context.Context, id int) (*model.Patient, error)
	Update(ctx context.Context, id int, req model.UpdatePatientRequest) (*model.Patient, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type patientRepository struct {
	patients *store.Collection[model.Patient]
}

// NewPatientRepository creates a new PatientRepository over the patients
// collection
func NewPatientRepository(patients *store.Collection[model.Patient]) PatientRepository {
	return &patientRepository{patients: patients}
}

// Create appends a new patient, assigning the next free ID inside the
// collection's critical section. IDs are unique among currently existing
// records only: a deleted max-id slot can be reused by a later create.
func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	err := r.patients.Update(ctx, func(patients []model.Patient) ([]model.Patient, error) {
		patient.ID = nextID(patients)
		return append(patients, *patient), nil
	})
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

// FindAll returns the page slice [skip, skip+limit) together with the
// total record count and total page count. Out-of-range pages yield an
// empty slice, not an error.
func (r *patientRepository) FindAll(ctx context.Context, page, limit int) (*model.PatientPage, error) {
	patients, err := r.patients.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load patients: %w", err)
	}

	total := len(patients)
	pages := (total + limit - 1) / limit

	skip := (page - 1) * limit
	data := make([]model.Patient, 0, limit)
	if skip < total {
		end := skip + limit
		if end > total {
			end = total
		}
		data = append(data, patients[skip:end]...)
	}

	return &model.PatientPage{Data: data, Total: total, Pages: pages}, nil
}

// FindByID retrieves a patient by ID, or nil if no record matches
func (r *patientRepository) FindByID(ctx context.Context, id int) (*model.Patient, error) {
	patients, err := r.patients.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load patients: %w", err)
	}
	for i := range patients {
		if patients[i].ID == id {
			return &patients[i], nil
		}
	}
	return nil, nil // Not found, service layer handles it
}

// Update merges the set fields of req over the stored record. The ID is
// never overwritten. Returns nil if no record matches.
func (r *patientRepository) Update(ctx context.Context, id int, req model.UpdatePatientRequest) (*model.Patient, error) {
	var updated *model.Patient
	err := r.patients.Update(ctx, func(patients []model.Patient) ([]model.Patient, error) {
		for i := range patients {
			if patients[i].ID != id {
				continue
			}
			if req.FirstName != nil {
				patients[i].FirstName = *req.FirstName
			}
			if req.LastName != nil {
				patients[i].LastName = *req.LastName
			}
			if req.Email != nil {
				patients[i].Email = *req.Email
			}
			if req.PhoneNumber != nil {
				patients[i].PhoneNumber = *req.PhoneNumber
			}
			if req.DOB != nil {
				patients[i].DOB = *req.DOB
			}
			record := patients[i]
			updated = &record
			return patients, nil
		}
		return nil, errNoMatch
	})
	if errors.Is(err, errNoMatch) {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return updated, nil
}

// Delete removes the patient with the given ID. The collection is only
// rewritten when a record actually matched; the boolean reports whether
// one did.
func (r *patientRepository) Delete(ctx context.Context, id int) (bool, error) {
	err := r.patients.Update(ctx, func(patients []model.Patient) ([]model.Patient, error) {
		filtered := patients[:0:0]
		for _, p := range patients {
			if p.ID != id {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) == len(patients) {
			return nil, errNoMatch
		}
		return filtered, nil
	})
	if errors.Is(err, errNoMatch) {
		return false, nil // Not found, nothing was saved
	}
	if err != nil {
		return false, fmt.Errorf("failed to delete patient: %w", err)
	}
	return true, nil
}

func nextID(patients []model.Patient) int {
	maxID := 0
	for _, p := range patients {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}
