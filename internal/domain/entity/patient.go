package entity

// Patient represents an admitted patient of a hospital
type Patient struct {
	ID            string `gorm:"primaryKey;default:(-)" json:"id,omitempty"`
	HospitalID    string `gorm:"index;not null" json:"hospital_id"`
	Name          string `gorm:"type:varchar(100);not null" json:"name"`
	Age           int    `gorm:"not null" json:"age"`
	Gender        string `gorm:"not null" json:"gender"`
	Condition     string `gorm:"type:varchar(200);not null" json:"condition"`
	Department    string `gorm:"not null" json:"department"`
	AdmissionDate string `gorm:"not null" json:"admission_date"`
	Status        string `gorm:"not null" json:"status"`
	Room          string `gorm:"not null" json:"room"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Patient status constants
const (
	PatientStatusCritical   = "Critical"
	PatientStatusStable     = "Stable"
	PatientStatusRecovering = "Recovering"
	PatientStatusDischarged = "Discharged"
)
