package handler

import (
	"net/http"

	"hospitaldesk/internal/usecase"
	"hospitaldesk/pkg/response"
)

type OverviewHandler struct {
	overviewUsecase usecase.OverviewUsecase
}

func NewOverviewHandler(overviewUsecase usecase.OverviewUsecase) *OverviewHandler {
	return &OverviewHandler{overviewUsecase: overviewUsecase}
}

func (h *OverviewHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.overviewUsecase.GetSummary(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, summary)
}
