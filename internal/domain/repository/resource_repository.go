package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"
)

// ResourceRepository is the table-level CRUD contract shared by hospitals,
// patients, doctors, departments and appointments.
type ResourceRepository[T any] interface {
	FindAll(ctx context.Context, filter entity.ListFilter) ([]T, error)
	// FindByID returns nil, nil when no row has the id.
	FindByID(ctx context.Context, id string) (*T, error)
	// Create returns nil, nil when the store accepted the insert but
	// returned no row.
	Create(ctx context.Context, row *T) (*T, error)
	// Update returns nil, nil when no row has the id.
	Update(ctx context.Context, id string, fields map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type HospitalRepository = ResourceRepository[entity.Hospital]
type PatientRepository = ResourceRepository[entity.Patient]
type DoctorRepository = ResourceRepository[entity.Doctor]
type DepartmentRepository = ResourceRepository[entity.Department]
type AppointmentRepository = ResourceRepository[entity.Appointment]
