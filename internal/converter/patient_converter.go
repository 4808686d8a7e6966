package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// PatientFromCreate converts a CreatePatientRequest to a Patient entity,
// defaulting the status to Stable
func PatientFromCreate(req *dto.CreatePatientRequest) *entity.Patient {
	status := req.Status
	if status == "" {
		status = entity.PatientStatusStable
	}

	return &entity.Patient{
		HospitalID:    req.HospitalID,
		Name:          req.Name,
		Age:           deref(req.Age),
		Gender:        req.Gender,
		Condition:     req.Condition,
		Department:    req.Department,
		AdmissionDate: req.AdmissionDate,
		Status:        status,
		Room:          req.Room,
	}
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
