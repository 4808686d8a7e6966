package entity

// Appointment is a scheduled visit. Date and Time are kept as the strings the
// client sent so that ordering by date then time stays lexicographic.
type Appointment struct {
	ID          string `gorm:"primaryKey;default:(-)" json:"id,omitempty"`
	HospitalID  string `gorm:"index;not null" json:"hospital_id"`
	PatientName string `gorm:"type:varchar(100);not null" json:"patient_name"`
	PatientID   string `gorm:"index;not null" json:"patient_id"`
	DoctorName  string `gorm:"type:varchar(100);not null" json:"doctor_name"`
	Department  string `gorm:"not null" json:"department"`
	Date        string `gorm:"not null" json:"date"`
	Time        string `gorm:"not null" json:"time"`
	Type        string `gorm:"not null" json:"type"`
	Status      string `gorm:"not null" json:"status"`
	Room        string `gorm:"not null" json:"room"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Appointment status constants
const (
	AppointmentStatusScheduled  = "Scheduled"
	AppointmentStatusInProgress = "In Progress"
	AppointmentStatusCompleted  = "Completed"
	AppointmentStatusCancelled  = "Cancelled"
)
