package dto

type CreateBillRequest struct {
	PatientID   string `json:"patient_id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// BillResponse renders the amount as a fixed two-decimal string, matching
// what the billing table displays.
type BillResponse struct {
	ID          string `json:"id" validate:"required"`
	PatientID   string `json:"patient_id" validate:"required"`
	PatientName string `json:"patient_name"`
	Description string `json:"description"`
	Amount      string `json:"amount" validate:"required"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}
