package usecase

import (
	"context"
	"fmt"
	"strings"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/pkg/apperror"

	"github.com/sirupsen/logrus"
)

// ResourceUsecase is the CRUD flow shared by every hospital resource.
//
// Error policy:
//   - List never fails; store errors are logged and yield an empty list.
//   - Get reports NotFound for a missing row and for any store error.
//   - Create reports BadRequest when the store rejects the row or returns none.
//   - Update reports BadRequest for an empty patch (without calling the
//     store) and for store errors, NotFound when no row matched.
//   - Delete reports NotFound when no row matched or the store failed.
type ResourceUsecase[T any, C any, U dto.Patch] interface {
	Name() string
	List(ctx context.Context, filter entity.ListFilter) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, req *C) (*T, error)
	Update(ctx context.Context, id string, req *U) (*T, error)
	Delete(ctx context.Context, id string) error
}

type (
	HospitalUsecase    = ResourceUsecase[entity.Hospital, dto.CreateHospitalRequest, dto.UpdateHospitalRequest]
	PatientUsecase     = ResourceUsecase[entity.Patient, dto.CreatePatientRequest, dto.UpdatePatientRequest]
	DoctorUsecase      = ResourceUsecase[entity.Doctor, dto.CreateDoctorRequest, dto.UpdateDoctorRequest]
	DepartmentUsecase  = ResourceUsecase[entity.Department, dto.CreateDepartmentRequest, dto.UpdateDepartmentRequest]
	AppointmentUsecase = ResourceUsecase[entity.Appointment, dto.CreateAppointmentRequest, dto.UpdateAppointmentRequest]
)

type resourceUsecase[T any, C any, U dto.Patch] struct {
	log      *logrus.Logger
	repo     repository.ResourceRepository[T]
	name     string
	toEntity func(*C) *T
}

func NewHospitalUsecase(log *logrus.Logger, repo repository.HospitalRepository) HospitalUsecase {
	return &resourceUsecase[entity.Hospital, dto.CreateHospitalRequest, dto.UpdateHospitalRequest]{
		log: log, repo: repo, name: "Hospital", toEntity: converter.HospitalFromCreate,
	}
}

func NewPatientUsecase(log *logrus.Logger, repo repository.PatientRepository) PatientUsecase {
	return &resourceUsecase[entity.Patient, dto.CreatePatientRequest, dto.UpdatePatientRequest]{
		log: log, repo: repo, name: "Patient", toEntity: converter.PatientFromCreate,
	}
}

func NewDoctorUsecase(log *logrus.Logger, repo repository.DoctorRepository) DoctorUsecase {
	return &resourceUsecase[entity.Doctor, dto.CreateDoctorRequest, dto.UpdateDoctorRequest]{
		log: log, repo: repo, name: "Doctor", toEntity: converter.DoctorFromCreate,
	}
}

func NewDepartmentUsecase(log *logrus.Logger, repo repository.DepartmentRepository) DepartmentUsecase {
	return &resourceUsecase[entity.Department, dto.CreateDepartmentRequest, dto.UpdateDepartmentRequest]{
		log: log, repo: repo, name: "Department", toEntity: converter.DepartmentFromCreate,
	}
}

func NewAppointmentUsecase(log *logrus.Logger, repo repository.AppointmentRepository) AppointmentUsecase {
	return &resourceUsecase[entity.Appointment, dto.CreateAppointmentRequest, dto.UpdateAppointmentRequest]{
		log: log, repo: repo, name: "Appointment", toEntity: converter.AppointmentFromCreate,
	}
}

func (u *resourceUsecase[T, C, U]) Name() string {
	return u.name
}

func (u *resourceUsecase[T, C, U]) List(ctx context.Context, filter entity.ListFilter) ([]T, error) {
	rows, err := u.repo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list %s records: %+v", strings.ToLower(u.name), err)
		return []T{}, nil
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func (u *resourceUsecase[T, C, U]) Get(ctx context.Context, id string) (*T, error) {
	row, err := u.repo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find %s %s: %+v", strings.ToLower(u.name), id, err)
		return nil, u.notFound()
	}
	if row == nil {
		return nil, u.notFound()
	}
	return row, nil
}

func (u *resourceUsecase[T, C, U]) Create(ctx context.Context, req *C) (*T, error) {
	row, err := u.repo.Create(ctx, u.toEntity(req))
	if err != nil {
		u.log.Warnf("Failed to create %s: %+v", strings.ToLower(u.name), err)
		return nil, apperror.BadRequest(err.Error(), err)
	}
	if row == nil {
		return nil, apperror.BadRequest(fmt.Sprintf("Failed to create %s", strings.ToLower(u.name)), nil)
	}
	return row, nil
}

func (u *resourceUsecase[T, C, U]) Update(ctx context.Context, id string, req *U) (*T, error) {
	fields := (*req).Fields()
	if len(fields) == 0 {
		return nil, apperror.BadRequest("No fields to update", nil)
	}

	row, err := u.repo.Update(ctx, id, fields)
	if err != nil {
		u.log.Warnf("Failed to update %s %s: %+v", strings.ToLower(u.name), id, err)
		return nil, apperror.BadRequest(err.Error(), err)
	}
	if row == nil {
		return nil, u.notFound()
	}
	return row, nil
}

func (u *resourceUsecase[T, C, U]) Delete(ctx context.Context, id string) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete %s %s: %+v", strings.ToLower(u.name), id, err)
		return u.notFound()
	}
	if !deleted {
		return u.notFound()
	}
	return nil
}

func (u *resourceUsecase[T, C, U]) notFound() error {
	return apperror.NotFound(u.name + " not found")
}
