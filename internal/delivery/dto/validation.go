package dto

import (
	"hospital-management-api/pkg/validator"

	govalidator "github.com/go-playground/validator/v10"
)

// RegisterValidations adds the cross-field bed checks. They run after the
// field tags and only when both fields are present.
func RegisterValidations(cv *validator.CustomValidator) {
	cv.RegisterStructValidation(createHospitalBeds, CreateHospitalRequest{})
	cv.RegisterStructValidation(updateHospitalBeds, UpdateHospitalRequest{})
	cv.RegisterStructValidation(createDepartmentBeds, CreateDepartmentRequest{})
	cv.RegisterStructValidation(updateDepartmentBeds, UpdateDepartmentRequest{})
}

func createHospitalBeds(sl govalidator.StructLevel) {
	r := sl.Current().Interface().(CreateHospitalRequest)
	if r.Beds != nil && r.Occupancy != nil {
		checkBeds(sl, *r.Occupancy, *r.Beds, "occupancy", "Occupancy")
	}
}

func updateHospitalBeds(sl govalidator.StructLevel) {
	r := sl.Current().Interface().(UpdateHospitalRequest)
	beds, hasBeds := r.Beds.Get()
	occupancy, hasOccupancy := r.Occupancy.Get()
	if hasBeds && hasOccupancy {
		checkBeds(sl, occupancy, beds, "occupancy", "Occupancy")
	}
}

func createDepartmentBeds(sl govalidator.StructLevel) {
	r := sl.Current().Interface().(CreateDepartmentRequest)
	if r.Beds != nil && r.Patients != nil {
		checkBeds(sl, *r.Patients, *r.Beds, "patients", "Patients")
	}
}

func updateDepartmentBeds(sl govalidator.StructLevel) {
	r := sl.Current().Interface().(UpdateDepartmentRequest)
	beds, hasBeds := r.Beds.Get()
	patients, hasPatients := r.Patients.Get()
	if hasBeds && hasPatients {
		checkBeds(sl, patients, beds, "patients", "Patients")
	}
}

func checkBeds(sl govalidator.StructLevel, count, beds int, field, structField string) {
	if count > beds {
		sl.ReportError(count, field, structField, "ltefield", "beds")
	}
}
