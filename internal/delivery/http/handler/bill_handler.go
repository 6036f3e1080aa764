package handler

import (
	"net/http"

	"hospitaldesk/internal/delivery/dto"
	"hospitaldesk/internal/usecase"
	"hospitaldesk/pkg/response"
)

type BillHandler struct {
	billingUsecase usecase.BillingUsecase
}

func NewBillHandler(billingUsecase usecase.BillingUsecase) *BillHandler {
	return &BillHandler{billingUsecase: billingUsecase}
}

func (h *BillHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	bills, err := h.billingUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, bills)
}

func (h *BillHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload := decodePayload(r)
	req := &dto.CreateBillRequest{
		PatientID:   fieldString(payload, "patient_id"),
		Description: fieldString(payload, "description"),
		Amount:      fieldString(payload, "amount"),
	}

	bill, err := h.billingUsecase.Create(r.Context(), req)
	if err != nil {
		switch err {
		case usecase.ErrPatientAmountRequired, usecase.ErrPatientNotFound, usecase.ErrAmountNotNumber:
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.JSON(w, http.StatusCreated, bill)
}
