package handler

import (
	"net/http"

	"hospitaldesk/internal/delivery/dto"
	"hospitaldesk/internal/usecase"
	"hospitaldesk/pkg/response"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase) *PatientHandler {
	return &PatientHandler{patientUsecase: patientUsecase}
}

// GetAll returns every patient as a bare JSON array.
func (h *PatientHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, patients)
}

// Create registers a patient and echoes the created record.
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload := decodePayload(r)
	req := &dto.CreatePatientRequest{
		Name:    fieldString(payload, "name"),
		Age:     fieldString(payload, "age"),
		Gender:  fieldString(payload, "gender"),
		Contact: fieldString(payload, "contact"),
	}

	patient, err := h.patientUsecase.Create(r.Context(), req)
	if err != nil {
		switch err {
		case usecase.ErrNameAgeRequired, usecase.ErrAgeNotNumber:
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.JSON(w, http.StatusCreated, patient)
}
