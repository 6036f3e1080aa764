package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospitaldesk/internal/delivery/dto"
	"hospitaldesk/internal/domain/entity"
	"hospitaldesk/internal/service"
)

func newAppointmentFixture() (*fakePatientRepo, *fakeAppointmentRepo, AppointmentUsecase) {
	patientRepo := &fakePatientRepo{}
	appointmentRepo := &fakeAppointmentRepo{}
	overview := service.NewOverviewService(nil, testLogger(), patientRepo, appointmentRepo, &fakeBillRepo{})
	usecase := NewAppointmentUsecase(testLogger(), appointmentRepo, patientRepo, overview)
	return patientRepo, appointmentRepo, usecase
}

func seedPatient(repo *fakePatientRepo, id, name string) {
	repo.patients = append(repo.patients, entity.Patient{ID: id, Name: name, CreatedAt: time.Now()})
}

func TestCreateAppointmentBooksFirstFreeSlot(t *testing.T) {
	patientRepo, _, usecase := newAppointmentFixture()
	seedPatient(patientRepo, "P-11111111", "Alice Tan")

	created, err := usecase.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:     "P-11111111",
		PreferredDate: "2026-09-01",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^A-[0-9a-f]{8}$`, created.ID)
	assert.Equal(t, "2026-09-01", created.Date)
	assert.Equal(t, "09:00", created.Time)
	assert.Equal(t, "general", created.Reason)
	assert.Equal(t, "scheduled", created.Status)
	assert.Equal(t, "Alice Tan", created.PatientName)
}

func TestCreateAppointmentSkipsBookedSlots(t *testing.T) {
	patientRepo, appointmentRepo, usecase := newAppointmentFixture()
	seedPatient(patientRepo, "P-11111111", "Alice Tan")

	appointmentRepo.appointments = append(appointmentRepo.appointments,
		entity.Appointment{ID: "A-1", Date: "2026-09-01", Time: "09:00"},
		entity.Appointment{ID: "A-2", Date: "2026-09-01", Time: "09:30"},
	)

	created, err := usecase.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:     "P-11111111",
		PreferredDate: "2026-09-01",
		Reason:        "follow-up",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-09-01", created.Date)
	assert.Equal(t, "10:00", created.Time)
	assert.Equal(t, "follow-up", created.Reason)
}

func TestCreateAppointmentRollsOverToNextDay(t *testing.T) {
	patientRepo, appointmentRepo, usecase := newAppointmentFixture()
	seedPatient(patientRepo, "P-11111111", "Alice Tan")

	for _, slot := range AppointmentSlots() {
		appointmentRepo.appointments = append(appointmentRepo.appointments,
			entity.Appointment{Date: "2026-09-01", Time: slot})
	}

	created, err := usecase.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:     "P-11111111",
		PreferredDate: "2026-09-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-09-02", created.Date)
	assert.Equal(t, "09:00", created.Time)
}

func TestCreateAppointmentValidation(t *testing.T) {
	patientRepo, _, usecase := newAppointmentFixture()
	seedPatient(patientRepo, "P-11111111", "Alice Tan")

	cases := []struct {
		name string
		req  dto.CreateAppointmentRequest
		want error
	}{
		{"missing patient", dto.CreateAppointmentRequest{PreferredDate: "2026-09-01"}, ErrPatientDateRequired},
		{"missing date", dto.CreateAppointmentRequest{PatientID: "P-11111111"}, ErrPatientDateRequired},
		{"unknown patient", dto.CreateAppointmentRequest{PatientID: "P-00000000", PreferredDate: "2026-09-01"}, ErrPatientNotFound},
		{"bad date format", dto.CreateAppointmentRequest{PatientID: "P-11111111", PreferredDate: "09/01/2026"}, ErrPreferredDateFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := usecase.Create(context.Background(), &tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// The patient lookup happens before the date is parsed, so an unknown
// patient wins even when the date is also malformed.
func TestCreateAppointmentChecksPatientBeforeDate(t *testing.T) {
	_, _, usecase := newAppointmentFixture()

	_, err := usecase.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:     "P-00000000",
		PreferredDate: "not-a-date",
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestAppointmentSlotsReturnsCopy(t *testing.T) {
	slots := AppointmentSlots()
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "16:30", slots[15])

	slots[0] = "tampered"
	assert.Equal(t, "09:00", AppointmentSlots()[0])
}
