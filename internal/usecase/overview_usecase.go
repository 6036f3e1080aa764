package usecase

import (
	"context"

	"hospitaldesk/internal/delivery/dto"
	"hospitaldesk/internal/service"
)

type OverviewUsecase interface {
	GetSummary(ctx context.Context) (*dto.OverviewResponse, error)
}

type overviewUsecase struct {
	overview *service.OverviewService
}

func NewOverviewUsecase(overview *service.OverviewService) OverviewUsecase {
	return &overviewUsecase{overview: overview}
}

func (u *overviewUsecase) GetSummary(ctx context.Context) (*dto.OverviewResponse, error) {
	summary, err := u.overview.Summary(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.OverviewResponse{
		Patients:     summary.Patients,
		Appointments: summary.Appointments,
		Bills:        summary.Bills,
		Unpaid:       summary.Unpaid,
	}, nil
}
