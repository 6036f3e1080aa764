package converter

import (
	"hospitaldesk/internal/delivery/dto"
	"hospitaldesk/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		PatientName: appointment.PatientName,
		Date:        appointment.Date,
		Time:        appointment.Time,
		Reason:      appointment.Reason,
		Status:      appointment.Status,
		CreatedAt:   appointment.CreatedAt.Format(timestampLayout),
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
