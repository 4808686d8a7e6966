package entity

import "github.com/lib/pq"

type Department struct {
	ID          string         `gorm:"primaryKey;default:(-)" json:"id,omitempty"`
	HospitalID  string         `gorm:"index;not null" json:"hospital_id"`
	Name        string         `gorm:"type:varchar(100);not null" json:"name"`
	Head        string         `gorm:"type:varchar(100);not null" json:"head"`
	Doctors     int            `gorm:"not null" json:"doctors"`
	Nurses      int            `gorm:"not null" json:"nurses"`
	Beds        int            `gorm:"not null" json:"beds"`
	Patients    int            `gorm:"not null" json:"patients"`
	Equipment   pq.StringArray `gorm:"type:text[];not null" json:"equipment"`
	Description *string        `gorm:"type:varchar(500)" json:"description"`
}

func (Department) TableName() string {
	return "departments"
}
