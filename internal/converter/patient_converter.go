package converter

import (
	"hospitaldesk/internal/delivery/dto"
	"hospitaldesk/internal/domain/entity"
)

// timestampLayout matches the creation timestamps shown in the tables:
// ISO-8601 with seconds precision and no zone suffix.
const timestampLayout = "2006-01-02T15:04:05"

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Name,
		Age:       patient.Age,
		Gender:    patient.Gender,
		Contact:   patient.Contact,
		CreatedAt: patient.CreatedAt.Format(timestampLayout),
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
