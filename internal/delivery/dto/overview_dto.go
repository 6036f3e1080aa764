package dto

type OverviewResponse struct {
	Patients     int64 `json:"patients" validate:"gte=0"`
	Appointments int64 `json:"appointments" validate:"gte=0"`
	Bills        int64 `json:"bills" validate:"gte=0"`
	Unpaid       int64 `json:"unpaid" validate:"gte=0"`
}
