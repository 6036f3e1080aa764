package usecase

import (
	"context"
	"errors"
	"strings"

	"hospitaldesk/internal/converter"
	"hospitaldesk/internal/delivery/dto"
	"hospitaldesk/internal/domain/entity"
	"hospitaldesk/internal/domain/repository"
	"hospitaldesk/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrPatientAmountRequired = errors.New("Patient ID and amount are required.")
	ErrAmountNotNumber       = errors.New("Amount must be a valid number.")
)

const defaultDescription = "services"

type BillingUsecase interface {
	Create(ctx context.Context, req *dto.CreateBillRequest) (*dto.BillResponse, error)
	GetAll(ctx context.Context) ([]dto.BillResponse, error)
}

type billingUsecase struct {
	log         *logrus.Logger
	billRepo    repository.BillRepository
	patientRepo repository.PatientRepository
	overview    *service.OverviewService
}

func NewBillingUsecase(
	log *logrus.Logger,
	billRepo repository.BillRepository,
	patientRepo repository.PatientRepository,
	overview *service.OverviewService,
) BillingUsecase {
	return &billingUsecase{
		log:         log,
		billRepo:    billRepo,
		patientRepo: patientRepo,
		overview:    overview,
	}
}

func (u *billingUsecase) Create(ctx context.Context, req *dto.CreateBillRequest) (*dto.BillResponse, error) {
	patientID := strings.TrimSpace(req.PatientID)
	description := strings.TrimSpace(req.Description)
	amountRaw := strings.TrimSpace(req.Amount)

	if patientID == "" || amountRaw == "" {
		return nil, ErrPatientAmountRequired
	}

	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	amount, err := decimal.NewFromString(amountRaw)
	if err != nil {
		return nil, ErrAmountNotNumber
	}

	if description == "" {
		description = defaultDescription
	}

	bill := &entity.Bill{
		ID:          newRecordID("B"),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		Description: description,
		Amount:      amount,
		Status:      entity.BillStatusUnpaid,
	}

	if err := u.billRepo.Create(ctx, bill); err != nil {
		u.log.Warnf("Failed to create bill: %+v", err)
		return nil, err
	}

	u.overview.RecordBillCreated(ctx)

	return converter.BillToResponse(bill), nil
}

func (u *billingUsecase) GetAll(ctx context.Context) ([]dto.BillResponse, error) {
	bills, err := u.billRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return converter.BillsToResponses(bills), nil
}
