package service

import (
	"context"
	"errors"
	"fmt"

	"patient_registry/internal/model"
	"patient_registry/internal/repository"
)

var ErrPatientNotFound = errors.New("patient not found")

// PatientService defines operations for patient records
type PatientService interface {
	CreatePatient(ctx context.Context, req model.CreatePatientRequest) (*model.Patient, error)
	GetPatients(ctx context.Context, page, limit int) (*model.PatientPage, error)
	GetPatientByID(ctx context.Context, id int) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id int, req model.UpdatePatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id int) error
}

type patientService struct {
	repo repository.PatientRepository
}

// NewPatientService creates a new PatientService
func NewPatientService(repo repository.PatientRepository) PatientService {
	return &patientService{repo: repo}
}

func (s *patientService) CreatePatient(ctx context.Context, req model.CreatePatientRequest) (*model.Patient, error) {
	patient := &model.Patient{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		DOB:         req.DOB,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient in repo: %w", err)
	}
	return patient, nil
}

func (s *patientService) GetPatients(ctx context.Context, page, limit int) (*model.PatientPage, error) {
	result, err := s.repo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get patients from repo: %w", err)
	}
	return result, nil
}

func (s *patientService) GetPatientByID(ctx context.Context, id int) (*model.Patient, error) {
	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find patient by ID: %w", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (s *patientService) UpdatePatient(ctx context.Context, id int, req model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (s *patientService) DeletePatient(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	if !deleted {
		return ErrPatientNotFound
	}
	return nil
}
