package dto

import (
	"strings"

	"hospital-management-api/pkg/optional"
)

// Request DTOs

type CreateDoctorRequest struct {
	HospitalID   string `json:"hospital_id" validate:"required,startswith=H-"`
	Name         string `json:"name" validate:"required,max=100"`
	Specialty    string `json:"specialty" validate:"required,max=100"`
	Department   string `json:"department" validate:"required"`
	Experience   *int   `json:"experience" validate:"required,gte=0,lte=60"`
	Patients     *int   `json:"patients" validate:"required,gte=0"`
	Availability string `json:"availability" validate:"omitempty,oneof=Available 'In Surgery' 'Off Duty' 'On Leave'"`
	Email        string `json:"email" validate:"required,emailish"`
	// Phone keeps the caller's formatting; only its digit count is checked.
	Phone string `json:"phone" validate:"required,mindigits=10"`
}

func (r *CreateDoctorRequest) Normalize() {
	r.Email = strings.ToLower(r.Email)
}

type UpdateDoctorRequest struct {
	HospitalID   optional.Value[string] `json:"hospital_id" validate:"omitempty,startswith=H-"`
	Name         optional.Value[string] `json:"name" validate:"omitempty,min=1,max=100"`
	Specialty    optional.Value[string] `json:"specialty" validate:"omitempty,min=1,max=100"`
	Department   optional.Value[string] `json:"department" validate:"omitempty,min=1"`
	Experience   optional.Value[int]    `json:"experience" validate:"omitempty,gte=0,lte=60"`
	Patients     optional.Value[int]    `json:"patients" validate:"omitempty,gte=0"`
	Availability optional.Value[string] `json:"availability" validate:"omitempty,oneof=Available 'In Surgery' 'Off Duty' 'On Leave'"`
	Email        optional.Value[string] `json:"email" validate:"omitempty,emailish"`
	Phone        optional.Value[string] `json:"phone" validate:"omitempty,mindigits=10"`
}

func (r *UpdateDoctorRequest) Normalize() {
	r.Email.Apply(strings.ToLower)
}

func (r UpdateDoctorRequest) Fields() map[string]interface{} {
	f := fieldSet{}
	set(f, "hospital_id", r.HospitalID)
	set(f, "name", r.Name)
	set(f, "specialty", r.Specialty)
	set(f, "department", r.Department)
	set(f, "experience", r.Experience)
	set(f, "patients", r.Patients)
	set(f, "availability", r.Availability)
	set(f, "email", r.Email)
	set(f, "phone", r.Phone)
	return f
}
