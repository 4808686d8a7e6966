package entity

// Doctor represents a physician employed by a hospital
type Doctor struct {
	ID           string `gorm:"primaryKey;default:(-)" json:"id,omitempty"`
	HospitalID   string `gorm:"index;not null" json:"hospital_id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Specialty    string `gorm:"type:varchar(100);not null" json:"specialty"`
	Department   string `gorm:"not null" json:"department"`
	Experience   int    `gorm:"not null" json:"experience"`
	Patients     int    `gorm:"not null" json:"patients"`
	Availability string `gorm:"not null" json:"availability"`
	Email        string `gorm:"not null" json:"email"`
	Phone        string `gorm:"not null" json:"phone"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Availability constants
const (
	AvailabilityAvailable = "Available"
	AvailabilityInSurgery = "In Surgery"
	AvailabilityOffDuty   = "Off Duty"
	AvailabilityOnLeave   = "On Leave"
)
