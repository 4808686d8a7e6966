package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/pkg/apperror"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockResourceRepository is a testify mock for any ResourceRepository.
type MockResourceRepository[T any] struct {
	mock.Mock
}

func (m *MockResourceRepository[T]) FindAll(ctx context.Context, filter entity.ListFilter) ([]T, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]T)
	return rows, args.Error(1)
}

func (m *MockResourceRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*T)
	return row, args.Error(1)
}

func (m *MockResourceRepository[T]) Create(ctx context.Context, row *T) (*T, error) {
	args := m.Called(ctx, row)
	created, _ := args.Get(0).(*T)
	return created, args.Error(1)
}

func (m *MockResourceRepository[T]) Update(ctx context.Context, id string, fields map[string]interface{}) (*T, error) {
	args := m.Called(ctx, id, fields)
	row, _ := args.Get(0).(*T)
	return row, args.Error(1)
}

func (m *MockResourceRepository[T]) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func assertKind(t *testing.T, err error, kind apperror.Kind, message string) {
	t.Helper()
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected apperror, got %v", err)
	assert.Equal(t, kind, appErr.Kind)
	assert.Equal(t, message, appErr.Message)
}

func TestResourceUsecase_ListSwallowsStoreErrors(t *testing.T) {
	log, hook := test.NewNullLogger()

	hospitals := new(MockResourceRepository[entity.Hospital])
	hospitals.On("FindAll", mock.Anything, entity.ListFilter(nil)).Return(nil, errors.New("connection refused"))
	patients := new(MockResourceRepository[entity.Patient])
	patients.On("FindAll", mock.Anything, entity.ListFilter{"status": "Critical"}).Return(nil, errors.New("timeout"))

	h, err := NewHospitalUsecase(log, hospitals).List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []entity.Hospital{}, h)

	p, err := NewPatientUsecase(log, patients).List(context.Background(), entity.ListFilter{"status": "Critical"})
	require.NoError(t, err)
	assert.Equal(t, []entity.Patient{}, p)

	assert.Len(t, hook.AllEntries(), 2)
}

func TestResourceUsecase_Get(t *testing.T) {
	log, _ := test.NewNullLogger()
	repo := new(MockResourceRepository[entity.Doctor])
	repo.On("FindByID", mock.Anything, "D-1").Return(&entity.Doctor{ID: "D-1"}, nil)
	repo.On("FindByID", mock.Anything, "D-404").Return(nil, nil)
	repo.On("FindByID", mock.Anything, "D-500").Return(nil, errors.New("boom"))
	uc := NewDoctorUsecase(log, repo)
	ctx := context.Background()

	doctor, err := uc.Get(ctx, "D-1")
	require.NoError(t, err)
	assert.Equal(t, "D-1", doctor.ID)

	_, err = uc.Get(ctx, "D-404")
	assertKind(t, err, apperror.KindNotFound, "Doctor not found")

	_, err = uc.Get(ctx, "D-500")
	assertKind(t, err, apperror.KindNotFound, "Doctor not found")
}

func TestResourceUsecase_CreateAppliesDefaults(t *testing.T) {
	log, _ := test.NewNullLogger()
	repo := new(MockResourceRepository[entity.Patient])
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Patient) bool {
		return p.HospitalID == "H-1" && p.Status == entity.PatientStatusStable
	})).Return(&entity.Patient{ID: "P-1", HospitalID: "H-1", Status: entity.PatientStatusStable}, nil)

	age := 45
	patient, err := NewPatientUsecase(log, repo).Create(context.Background(), &dto.CreatePatientRequest{
		HospitalID: "H-1", Name: "John", Age: &age, Gender: entity.GenderMale,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PatientStatusStable, patient.Status)
	repo.AssertExpectations(t)
}

func TestResourceUsecase_CreateFailures(t *testing.T) {
	log, _ := test.NewNullLogger()
	ctx := context.Background()

	rejected := new(MockResourceRepository[entity.Hospital])
	rejected.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New(`new row violates check constraint "hospitals_occupancy_check"`))
	_, err := NewHospitalUsecase(log, rejected).Create(ctx, &dto.CreateHospitalRequest{})
	assertKind(t, err, apperror.KindBadRequest, `new row violates check constraint "hospitals_occupancy_check"`)

	empty := new(MockResourceRepository[entity.Hospital])
	empty.On("Create", mock.Anything, mock.Anything).Return(nil, nil)
	_, err = NewHospitalUsecase(log, empty).Create(ctx, &dto.CreateHospitalRequest{})
	assertKind(t, err, apperror.KindBadRequest, "Failed to create hospital")
}

func TestResourceUsecase_UpdateWithoutFieldsSkipsStore(t *testing.T) {
	log, _ := test.NewNullLogger()
	ctx := context.Background()

	for _, payload := range []string{`{}`, `{"name": null, "age": null, "room": null}`} {
		repo := new(MockResourceRepository[entity.Patient])
		var req dto.UpdatePatientRequest
		require.NoError(t, json.Unmarshal([]byte(payload), &req))

		_, err := NewPatientUsecase(log, repo).Update(ctx, "P-1", &req)

		assertKind(t, err, apperror.KindBadRequest, "No fields to update")
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestResourceUsecase_Update(t *testing.T) {
	log, _ := test.NewNullLogger()
	ctx := context.Background()
	repo := new(MockResourceRepository[entity.Appointment])
	repo.On("Update", mock.Anything, "A-1", map[string]interface{}{"status": "Completed"}).
		Return(&entity.Appointment{ID: "A-1", Status: "Completed"}, nil)
	repo.On("Update", mock.Anything, "A-404", mock.Anything).Return(nil, nil)
	repo.On("Update", mock.Anything, "A-500", mock.Anything).Return(nil, errors.New("invalid input syntax"))
	uc := NewAppointmentUsecase(log, repo)

	var req dto.UpdateAppointmentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status": "Completed"}`), &req))

	updated, err := uc.Update(ctx, "A-1", &req)
	require.NoError(t, err)
	assert.Equal(t, "Completed", updated.Status)

	_, err = uc.Update(ctx, "A-404", &req)
	assertKind(t, err, apperror.KindNotFound, "Appointment not found")

	_, err = uc.Update(ctx, "A-500", &req)
	assertKind(t, err, apperror.KindBadRequest, "invalid input syntax")
}

func TestResourceUsecase_DeleteMissingIsNotFound(t *testing.T) {
	log, _ := test.NewNullLogger()
	ctx := context.Background()

	hospitals := new(MockResourceRepository[entity.Hospital])
	hospitals.On("Delete", mock.Anything, "missing").Return(false, nil)
	patients := new(MockResourceRepository[entity.Patient])
	patients.On("Delete", mock.Anything, "missing").Return(false, nil)
	doctors := new(MockResourceRepository[entity.Doctor])
	doctors.On("Delete", mock.Anything, "missing").Return(false, nil)
	departments := new(MockResourceRepository[entity.Department])
	departments.On("Delete", mock.Anything, "missing").Return(false, errors.New("boom"))
	appointments := new(MockResourceRepository[entity.Appointment])
	appointments.On("Delete", mock.Anything, "missing").Return(false, nil)

	deleters := map[string]interface {
		Delete(context.Context, string) error
	}{
		"Hospital":    NewHospitalUsecase(log, hospitals),
		"Patient":     NewPatientUsecase(log, patients),
		"Doctor":      NewDoctorUsecase(log, doctors),
		"Department":  NewDepartmentUsecase(log, departments),
		"Appointment": NewAppointmentUsecase(log, appointments),
	}

	for name, uc := range deleters {
		err := uc.Delete(ctx, "missing")
		assertKind(t, err, apperror.KindNotFound, name+" not found")
	}
}

func TestResourceUsecase_Delete(t *testing.T) {
	log, _ := test.NewNullLogger()
	repo := new(MockResourceRepository[entity.Department])
	repo.On("Delete", mock.Anything, "DEP-1").Return(true, nil)

	uc := NewDepartmentUsecase(log, repo)
	assert.NoError(t, uc.Delete(context.Background(), "DEP-1"))
	assert.Equal(t, "Department", uc.Name())
}
