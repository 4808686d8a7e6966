package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"

	"github.com/lib/pq"
)

// DepartmentFromCreate converts a CreateDepartmentRequest to a Department
// entity. Missing equipment is stored as an empty list.
func DepartmentFromCreate(req *dto.CreateDepartmentRequest) *entity.Department {
	equipment := pq.StringArray{}
	if req.Equipment != nil {
		equipment = pq.StringArray(req.Equipment)
	}

	return &entity.Department{
		HospitalID:  req.HospitalID,
		Name:        req.Name,
		Head:        req.Head,
		Doctors:     deref(req.Doctors),
		Nurses:      deref(req.Nurses),
		Beds:        deref(req.Beds),
		Patients:    deref(req.Patients),
		Equipment:   equipment,
		Description: req.Description,
	}
}
