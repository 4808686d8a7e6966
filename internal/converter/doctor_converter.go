package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// DoctorFromCreate converts a CreateDoctorRequest to a Doctor entity,
// defaulting availability to Available
func DoctorFromCreate(req *dto.CreateDoctorRequest) *entity.Doctor {
	availability := req.Availability
	if availability == "" {
		availability = entity.AvailabilityAvailable
	}

	return &entity.Doctor{
		HospitalID:   req.HospitalID,
		Name:         req.Name,
		Specialty:    req.Specialty,
		Department:   req.Department,
		Experience:   deref(req.Experience),
		Patients:     deref(req.Patients),
		Availability: availability,
		Email:        req.Email,
		Phone:        req.Phone,
	}
}
