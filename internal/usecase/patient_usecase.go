package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hospitaldesk/internal/converter"
	"hospitaldesk/internal/delivery/dto"
	"hospitaldesk/internal/domain/entity"
	"hospitaldesk/internal/domain/repository"
	"hospitaldesk/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Validation errors carry the exact text served to clients.
var (
	ErrNameAgeRequired = errors.New("Name and age are required.")
	ErrAgeNotNumber    = errors.New("Age must be a number.")
	ErrPatientNotFound = errors.New("Patient not found.")
)

const defaultGender = "unspecified"

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetAll(ctx context.Context) ([]dto.PatientResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	overview    *service.OverviewService
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository, overview *service.OverviewService) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
		overview:    overview,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	name := strings.TrimSpace(req.Name)
	ageRaw := strings.TrimSpace(req.Age)
	gender := strings.TrimSpace(req.Gender)
	contact := strings.TrimSpace(req.Contact)

	if name == "" || ageRaw == "" {
		return nil, ErrNameAgeRequired
	}

	age, err := strconv.Atoi(ageRaw)
	if err != nil {
		return nil, ErrAgeNotNumber
	}

	if gender == "" {
		gender = defaultGender
	}

	patient := &entity.Patient{
		ID:      newRecordID("P"),
		Name:    name,
		Age:     age,
		Gender:  gender,
		Contact: contact,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.overview.RecordPatientCreated(ctx)

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAll(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return converter.PatientsToResponses(patients), nil
}

// newRecordID builds the short display identifiers used across the desk:
// a one-letter prefix plus the first eight hex digits of a random UUID.
func newRecordID(prefix string) string {
	id := uuid.New()
	return fmt.Sprintf("%s-%x", prefix, id[:4])
}
