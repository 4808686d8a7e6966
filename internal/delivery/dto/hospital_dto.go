package dto

import (
	"hospital-management-api/pkg/optional"
)

// Request DTOs

type CreateHospitalRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Location  string `json:"location" validate:"required,max=200"`
	Beds      *int   `json:"beds" validate:"required,gte=0"`
	Occupancy *int   `json:"occupancy" validate:"required,gte=0"`
}

type UpdateHospitalRequest struct {
	Name      optional.Value[string] `json:"name" validate:"omitempty,min=1,max=200"`
	Location  optional.Value[string] `json:"location" validate:"omitempty,min=1,max=200"`
	Beds      optional.Value[int]    `json:"beds" validate:"omitempty,gte=0"`
	Occupancy optional.Value[int]    `json:"occupancy" validate:"omitempty,gte=0"`
}

func (r UpdateHospitalRequest) Fields() map[string]interface{} {
	f := fieldSet{}
	set(f, "name", r.Name)
	set(f, "location", r.Location)
	set(f, "beds", r.Beds)
	set(f, "occupancy", r.Occupancy)
	return f
}
