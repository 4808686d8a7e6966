package entity

import "time"

// Transfer is a patient transfer request between two hospitals.
type Transfer struct {
	ID           string     `json:"id"`
	FromHospital string     `json:"fromHospital"`
	ToHospital   string     `json:"toHospital"`
	PatientName  string     `json:"patientName"`
	PatientID    string     `json:"patientId"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	Timestamp    time.Time  `json:"timestamp"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// Involves reports whether the hospital is either end of the transfer.
func (t Transfer) Involves(hospitalID string) bool {
	return t.FromHospital == hospitalID || t.ToHospital == hospitalID
}

// Message is a note sent from one hospital to another.
type Message struct {
	ID           string    `json:"id"`
	FromHospital string    `json:"fromHospital"`
	ToHospital   string    `json:"toHospital"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
	Read         bool      `json:"read"`
}

func (m Message) Involves(hospitalID string) bool {
	return m.FromHospital == hospitalID || m.ToHospital == hospitalID
}

// Transfer status constants
const (
	TransferStatusPending  = "pending"
	TransferStatusApproved = "approved"
	TransferStatusRejected = "rejected"
)
