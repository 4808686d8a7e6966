package dto

import (
	"hospital-management-api/pkg/optional"
)

// Request DTOs

type CreateAppointmentRequest struct {
	HospitalID  string `json:"hospital_id" validate:"required,startswith=H-"`
	PatientName string `json:"patient_name" validate:"required,max=100"`
	PatientID   string `json:"patient_id" validate:"required,startswith=P-"`
	DoctorName  string `json:"doctor_name" validate:"required,max=100"`
	Department  string `json:"department" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=Consultation Follow-up Check-up Surgery Prenatal Emergency"`
	Status      string `json:"status" validate:"omitempty,oneof=Scheduled 'In Progress' Completed Cancelled"`
	Room        string `json:"room" validate:"required"`
}

type UpdateAppointmentRequest struct {
	HospitalID  optional.Value[string] `json:"hospital_id" validate:"omitempty,startswith=H-"`
	PatientName optional.Value[string] `json:"patient_name" validate:"omitempty,min=1,max=100"`
	PatientID   optional.Value[string] `json:"patient_id" validate:"omitempty,startswith=P-"`
	DoctorName  optional.Value[string] `json:"doctor_name" validate:"omitempty,min=1,max=100"`
	Department  optional.Value[string] `json:"department" validate:"omitempty,min=1"`
	Date        optional.Value[string] `json:"date" validate:"omitempty,min=1"`
	Time        optional.Value[string] `json:"time" validate:"omitempty,min=1"`
	Type        optional.Value[string] `json:"type" validate:"omitempty,oneof=Consultation Follow-up Check-up Surgery Prenatal Emergency"`
	Status      optional.Value[string] `json:"status" validate:"omitempty,oneof=Scheduled 'In Progress' Completed Cancelled"`
	Room        optional.Value[string] `json:"room" validate:"omitempty,min=1"`
}

func (r UpdateAppointmentRequest) Fields() map[string]interface{} {
	f := fieldSet{}
	set(f, "hospital_id", r.HospitalID)
	set(f, "patient_name", r.PatientName)
	set(f, "patient_id", r.PatientID)
	set(f, "doctor_name", r.DoctorName)
	set(f, "department", r.Department)
	set(f, "date", r.Date)
	set(f, "time", r.Time)
	set(f, "type", r.Type)
	set(f, "status", r.Status)
	set(f, "room", r.Room)
	return f
}
