package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hospitaldesk/internal/converter"
	"hospitaldesk/internal/delivery/dto"
	"hospitaldesk/internal/domain/entity"
	"hospitaldesk/internal/domain/repository"
	"hospitaldesk/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientDateRequired = errors.New("Patient ID and preferred date are required.")
	ErrPreferredDateFormat = errors.New("Preferred date must be in YYYY-MM-DD format.")
)

const (
	defaultReason  = "general"
	slotDateLayout = "2006-01-02"
)

// The desk books sixteen half-hour slots per day, 09:00 through 16:30.
var appointmentSlots = []string{
	"09:00",
	"09:30",
	"10:00",
	"10:30",
	"11:00",
	"11:30",
	"12:00",
	"12:30",
	"13:00",
	"13:30",
	"14:00",
	"14:30",
	"15:00",
	"15:30",
	"16:00",
	"16:30",
}

// AppointmentSlots returns the daily slot times in booking order.
func AppointmentSlots() []string {
	return append([]string(nil), appointmentSlots...)
}

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context) ([]dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	overview        *service.OverviewService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	overview *service.OverviewService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		overview:        overview,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID := strings.TrimSpace(req.PatientID)
	preferredDate := strings.TrimSpace(req.PreferredDate)
	reason := strings.TrimSpace(req.Reason)

	if patientID == "" || preferredDate == "" {
		return nil, ErrPatientDateRequired
	}

	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	date, slot, err := u.nextAvailableSlot(ctx, preferredDate)
	if err != nil {
		return nil, err
	}

	if reason == "" {
		reason = defaultReason
	}

	appointment := &entity.Appointment{
		ID:          newRecordID("A"),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		Date:        date,
		Time:        slot,
		Reason:      reason,
		Status:      entity.AppointmentStatusScheduled,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.overview.RecordAppointmentCreated(ctx)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAll(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

// nextAvailableSlot walks forward from the preferred date one day at a time
// and returns the first slot not already booked. Every day has sixteen
// slots, so with finitely many appointments the walk always terminates.
func (u *appointmentUsecase) nextAvailableSlot(ctx context.Context, preferredDate string) (string, string, error) {
	day, err := time.Parse(slotDateLayout, preferredDate)
	if err != nil {
		return "", "", ErrPreferredDateFormat
	}

	for {
		date := day.Format(slotDateLayout)

		taken, err := u.appointmentRepo.FindTimesByDate(ctx, date)
		if err != nil {
			return "", "", err
		}

		booked := make(map[string]struct{}, len(taken))
		for _, t := range taken {
			booked[t] = struct{}{}
		}

		for _, slot := range appointmentSlots {
			if _, ok := booked[slot]; !ok {
				return date, slot, nil
			}
		}

		day = day.AddDate(0, 0, 1)
	}
}
