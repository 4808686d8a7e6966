package dto

import (
	"hospital-management-api/pkg/optional"

	"github.com/lib/pq"
)

// Request DTOs

type CreateDepartmentRequest struct {
	HospitalID  string   `json:"hospital_id" validate:"required,startswith=H-"`
	Name        string   `json:"name" validate:"required,max=100"`
	Head        string   `json:"head" validate:"required,max=100"`
	Doctors     *int     `json:"doctors" validate:"required,gte=0"`
	Nurses      *int     `json:"nurses" validate:"required,gte=0"`
	Beds        *int     `json:"beds" validate:"required,gte=0"`
	Patients    *int     `json:"patients" validate:"required,gte=0"`
	Equipment   []string `json:"equipment"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
}

type UpdateDepartmentRequest struct {
	HospitalID  optional.Value[string]   `json:"hospital_id" validate:"omitempty,startswith=H-"`
	Name        optional.Value[string]   `json:"name" validate:"omitempty,min=1,max=100"`
	Head        optional.Value[string]   `json:"head" validate:"omitempty,min=1,max=100"`
	Doctors     optional.Value[int]      `json:"doctors" validate:"omitempty,gte=0"`
	Nurses      optional.Value[int]      `json:"nurses" validate:"omitempty,gte=0"`
	Beds        optional.Value[int]      `json:"beds" validate:"omitempty,gte=0"`
	Patients    optional.Value[int]      `json:"patients" validate:"omitempty,gte=0"`
	Equipment   optional.Value[[]string] `json:"equipment"`
	Description optional.Value[string]   `json:"description" validate:"omitempty,max=500"`
}

// Fields sends equipment as a text array. Description is the only column
// that an explicit null clears.
func (r UpdateDepartmentRequest) Fields() map[string]interface{} {
	f := fieldSet{}
	set(f, "hospital_id", r.HospitalID)
	set(f, "name", r.Name)
	set(f, "head", r.Head)
	set(f, "doctors", r.Doctors)
	set(f, "nurses", r.Nurses)
	set(f, "beds", r.Beds)
	set(f, "patients", r.Patients)
	if equipment, ok := r.Equipment.Get(); ok {
		f["equipment"] = pq.StringArray(nonNil(equipment))
	}
	setNullable(f, "description", r.Description)
	return f
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
