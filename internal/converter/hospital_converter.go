package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

func HospitalFromCreate(req *dto.CreateHospitalRequest) *entity.Hospital {
	return &entity.Hospital{
		Name:      req.Name,
		Location:  req.Location,
		Beds:      deref(req.Beds),
		Occupancy: deref(req.Occupancy),
	}
}
