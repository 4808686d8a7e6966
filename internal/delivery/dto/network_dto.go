package dto

// Request DTOs

type CreateTransferRequest struct {
	FromHospital string `json:"fromHospital" validate:"required"`
	ToHospital   string `json:"toHospital" validate:"required"`
	PatientName  string `json:"patientName" validate:"required"`
	PatientID    string `json:"patientId" validate:"required"`
	Reason       string `json:"reason" validate:"required"`
}

type UpdateTransferStatusRequest struct {
	Status string `json:"status"`
}

type SendMessageRequest struct {
	FromHospital string `json:"fromHospital" validate:"required"`
	ToHospital   string `json:"toHospital" validate:"required"`
	Subject      string `json:"subject" validate:"required"`
	Message      string `json:"message" validate:"required"`
}
