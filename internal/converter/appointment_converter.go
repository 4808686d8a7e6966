package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// AppointmentFromCreate converts a CreateAppointmentRequest to an Appointment
// entity, defaulting the status to Scheduled
func AppointmentFromCreate(req *dto.CreateAppointmentRequest) *entity.Appointment {
	status := req.Status
	if status == "" {
		status = entity.AppointmentStatusScheduled
	}

	return &entity.Appointment{
		HospitalID:  req.HospitalID,
		PatientName: req.PatientName,
		PatientID:   req.PatientID,
		DoctorName:  req.DoctorName,
		Department:  req.Department,
		Date:        req.Date,
		Time:        req.Time,
		Type:        req.Type,
		Status:      status,
		Room:        req.Room,
	}
}
