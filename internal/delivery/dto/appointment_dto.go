package dto

type CreateAppointmentRequest struct {
	PatientID     string `json:"patient_id"`
	PreferredDate string `json:"preferred_date"`
	Reason        string `json:"reason"`
}

type AppointmentResponse struct {
	ID          string `json:"id" validate:"required"`
	PatientID   string `json:"patient_id" validate:"required"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}
