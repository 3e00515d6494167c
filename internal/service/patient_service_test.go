package service

import (
	"context"
	"path/filepath"
	"testing"

	"patient_registry/internal/model"
	"patient_registry/internal/repository"
	"patient_registry/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatientService(t *testing.T) PatientService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patients.json")
	repo := repository.NewPatientRepository(store.NewCollection[model.Patient]("patients", path, zerolog.Nop()))
	return NewPatientService(repo)
}

func createReq() model.CreatePatientRequest {
	return model.CreatePatientRequest{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john@example.com",
		PhoneNumber: "+31612345678",
		DOB:         "1990-05-01",
	}
}

func TestPatientService_CreateAndGet(t *testing.T) {
	svc := newPatientService(t)
	ctx := context.Background()

	created, err := svc.CreatePatient(ctx, createReq())
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "John", created.FirstName)

	found, err := svc.GetPatientByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *found)
}

func TestPatientService_GetPatientByID_NotFound(t *testing.T) {
	svc := newPatientService(t)

	_, err := svc.GetPatientByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientService_UpdatePatient_NotFound(t *testing.T) {
	svc := newPatientService(t)

	newLast := "Smith"
	_, err := svc.UpdatePatient(context.Background(), 42, model.UpdatePatientRequest{LastName: &newLast})

	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientService_DeletePatient(t *testing.T) {
	svc := newPatientService(t)
	ctx := context.Background()

	created, err := svc.CreatePatient(ctx, createReq())
	require.NoError(t, err)

	require.NoError(t, svc.DeletePatient(ctx, created.ID))

	_, err = svc.GetPatientByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	assert.ErrorIs(t, svc.DeletePatient(ctx, created.ID), ErrPatientNotFound)
}

func TestPatientService_GetPatients_PassesThroughPage(t *testing.T) {
	svc := newPatientService(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := svc.CreatePatient(ctx, createReq())
		require.NoError(t, err)
	}

	page, err := svc.GetPatients(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.Pages)
}
