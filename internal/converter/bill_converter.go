package converter

import (
	"hospitaldesk/internal/delivery/dto"
	"hospitaldesk/internal/domain/entity"
)

func BillToResponse(bill *entity.Bill) *dto.BillResponse {
	if bill == nil {
		return nil
	}

	return &dto.BillResponse{
		ID:          bill.ID,
		PatientID:   bill.PatientID,
		PatientName: bill.PatientName,
		Description: bill.Description,
		Amount:      bill.Amount.StringFixed(2),
		Status:      bill.Status,
		CreatedAt:   bill.CreatedAt.Format(timestampLayout),
	}
}

func BillsToResponses(bills []entity.Bill) []dto.BillResponse {
	responses := make([]dto.BillResponse, 0, len(bills))
	for i := range bills {
		responses = append(responses, *BillToResponse(&bills[i]))
	}
	return responses
}
