package handler

import (
	"net/http"

	"hospitaldesk/internal/delivery/dto"
	"hospitaldesk/internal/usecase"
	"hospitaldesk/pkg/response"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{appointmentUsecase: appointmentUsecase}
}

func (h *AppointmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}

// Create books the next free slot on or after the preferred date.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload := decodePayload(r)
	req := &dto.CreateAppointmentRequest{
		PatientID:     fieldString(payload, "patient_id"),
		PreferredDate: fieldString(payload, "preferred_date"),
		Reason:        fieldString(payload, "reason"),
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), req)
	if err != nil {
		switch err {
		case usecase.ErrPatientDateRequired, usecase.ErrPatientNotFound, usecase.ErrPreferredDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.JSON(w, http.StatusCreated, appointment)
}
