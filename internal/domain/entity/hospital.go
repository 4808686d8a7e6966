package entity

// Hospital is a facility in the network; every other resource references it
// through an "H-" prefixed hospital_id.
type Hospital struct {
	ID        string `gorm:"primaryKey;default:(-)" json:"id,omitempty"`
	Name      string `gorm:"type:varchar(200);not null" json:"name"`
	Location  string `gorm:"type:varchar(200);not null" json:"location"`
	Beds      int    `gorm:"not null" json:"beds"`
	Occupancy int    `gorm:"not null" json:"occupancy"`
}

func (Hospital) TableName() string {
	return "hospitals"
}
