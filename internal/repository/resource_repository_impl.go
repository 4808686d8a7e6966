package repository

import (
	"context"
	"sort"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/infrastructure/store"
)

// resourceRepository maps one entity type onto one store table. Reads go
// through the standard handle, writes through the privileged one.
type resourceRepository[T any] struct {
	stores *store.Provider
	table  string
	order  []store.Order
}

func newResourceRepository[T any](stores *store.Provider, table string, order ...store.Order) *resourceRepository[T] {
	return &resourceRepository[T]{stores: stores, table: table, order: order}
}

func NewHospitalRepository(stores *store.Provider) domainRepo.HospitalRepository {
	return newResourceRepository[entity.Hospital](stores, entity.Hospital{}.TableName())
}

func NewPatientRepository(stores *store.Provider) domainRepo.PatientRepository {
	return newResourceRepository[entity.Patient](stores, entity.Patient{}.TableName())
}

func NewDoctorRepository(stores *store.Provider) domainRepo.DoctorRepository {
	return newResourceRepository[entity.Doctor](stores, entity.Doctor{}.TableName())
}

func NewDepartmentRepository(stores *store.Provider) domainRepo.DepartmentRepository {
	return newResourceRepository[entity.Department](stores, entity.Department{}.TableName())
}

// NewAppointmentRepository lists appointments by date, then time.
func NewAppointmentRepository(stores *store.Provider) domainRepo.AppointmentRepository {
	return newResourceRepository[entity.Appointment](stores, entity.Appointment{}.TableName(),
		store.Order{Column: "date"},
		store.Order{Column: "time"},
	)
}

func (r *resourceRepository[T]) FindAll(ctx context.Context, filter entity.ListFilter) ([]T, error) {
	rows := []T{}
	err := r.stores.Standard().Select(ctx, r.table, store.Query{
		Filters: filterPredicates(filter),
		Order:   r.order,
	}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *resourceRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var rows []T
	if err := r.stores.Standard().Select(ctx, r.table, store.Where("id", id), &rows); err != nil {
		return nil, err
	}
	return first(rows), nil
}

func (r *resourceRepository[T]) Create(ctx context.Context, row *T) (*T, error) {
	var rows []T
	if err := r.stores.Privileged().Insert(ctx, r.table, row, &rows); err != nil {
		return nil, err
	}
	return first(rows), nil
}

func (r *resourceRepository[T]) Update(ctx context.Context, id string, fields map[string]interface{}) (*T, error) {
	var rows []T
	if err := r.stores.Privileged().Update(ctx, r.table, store.Where("id", id), fields, &rows); err != nil {
		return nil, err
	}
	return first(rows), nil
}

func (r *resourceRepository[T]) Delete(ctx context.Context, id string) (bool, error) {
	var rows []T
	if err := r.stores.Privileged().Delete(ctx, r.table, store.Where("id", id), &rows); err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

// filterPredicates turns a filter into predicates sorted by column so the
// generated query is stable.
func filterPredicates(filter entity.ListFilter) []store.Eq {
	if len(filter) == 0 {
		return nil
	}
	columns := make([]string, 0, len(filter))
	for column := range filter {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	predicates := make([]store.Eq, 0, len(columns))
	for _, column := range columns {
		predicates = append(predicates, store.Eq{Column: column, Value: filter[column]})
	}
	return predicates
}

func first[T any](rows []T) *T {
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}
