package dto

import (
	"strings"

	"hospital-management-api/pkg/optional"
)

// Request DTOs

type CreatePatientRequest struct {
	HospitalID    string `json:"hospital_id" validate:"required,startswith=H-"`
	Name          string `json:"name" validate:"required,notblank,max=100"`
	Age           *int   `json:"age" validate:"required,gt=0,lt=150"`
	Gender        string `json:"gender" validate:"required,oneof=Male Female Other"`
	Condition     string `json:"condition" validate:"required,max=200"`
	Department    string `json:"department" validate:"required"`
	AdmissionDate string `json:"admission_date" validate:"required"`
	Status        string `json:"status" validate:"omitempty,oneof=Critical Stable Recovering Discharged"`
	Room          string `json:"room" validate:"required"`
}

func (r *CreatePatientRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type UpdatePatientRequest struct {
	HospitalID    optional.Value[string] `json:"hospital_id" validate:"omitempty,startswith=H-"`
	Name          optional.Value[string] `json:"name" validate:"omitempty,notblank,max=100"`
	Age           optional.Value[int]    `json:"age" validate:"omitempty,gt=0,lt=150"`
	Gender        optional.Value[string] `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Condition     optional.Value[string] `json:"condition" validate:"omitempty,min=1,max=200"`
	Department    optional.Value[string] `json:"department" validate:"omitempty,min=1"`
	AdmissionDate optional.Value[string] `json:"admission_date" validate:"omitempty,min=1"`
	Status        optional.Value[string] `json:"status" validate:"omitempty,oneof=Critical Stable Recovering Discharged"`
	Room          optional.Value[string] `json:"room" validate:"omitempty,min=1"`
}

func (r *UpdatePatientRequest) Normalize() {
	r.Name.Apply(strings.TrimSpace)
}

func (r UpdatePatientRequest) Fields() map[string]interface{} {
	f := fieldSet{}
	set(f, "hospital_id", r.HospitalID)
	set(f, "name", r.Name)
	set(f, "age", r.Age)
	set(f, "gender", r.Gender)
	set(f, "condition", r.Condition)
	set(f, "department", r.Department)
	set(f, "admission_date", r.AdmissionDate)
	set(f, "status", r.Status)
	set(f, "room", r.Room)
	return f
}
