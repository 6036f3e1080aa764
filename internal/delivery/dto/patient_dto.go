package dto

// Request DTOs
//
// Create requests carry the raw submitted field values; the use case layer
// owns parsing and validation so that the error messages stay uniform
// between the JSON API and the HTML forms.

type CreatePatientRequest struct {
	Name    string `json:"name"`
	Age     string `json:"age"`
	Gender  string `json:"gender"`
	Contact string `json:"contact"`
}

// Response DTOs
//
// The validate tags are applied when these types are decoded back from the
// wire by the dashboard poller, to reject malformed server responses.

type PatientResponse struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Contact   string `json:"contact"`
	CreatedAt string `json:"created_at"`
}
