package usecase

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"hospitaldesk/internal/domain/entity"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// The fakes mirror the real repositories: Create stamps the creation time
// the way the database layer does, FindByID misses with (nil, nil).

type fakePatientRepo struct {
	mu        sync.Mutex
	patients  []entity.Patient
	createErr error
	findErr   error
}

func (f *fakePatientRepo) Create(ctx context.Context, patient *entity.Patient) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	if patient.CreatedAt.IsZero() {
		patient.CreatedAt = time.Now()
	}
	f.patients = append(f.patients, *patient)
	return nil
}

func (f *fakePatientRepo) FindAll(ctx context.Context) ([]entity.Patient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return nil, f.findErr
	}
	return append([]entity.Patient(nil), f.patients...), nil
}

func (f *fakePatientRepo) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.patients {
		if f.patients[i].ID == id {
			patient := f.patients[i]
			return &patient, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.patients)), nil
}

type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments []entity.Appointment
	createErr    error
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now()
	}
	f.appointments = append(f.appointments, *appointment)
	return nil
}

func (f *fakeAppointmentRepo) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.Appointment(nil), f.appointments...), nil
}

func (f *fakeAppointmentRepo) FindTimesByDate(ctx context.Context, date string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var times []string
	for _, appointment := range f.appointments {
		if appointment.Date == date {
			times = append(times, appointment.Time)
		}
	}
	return times, nil
}

func (f *fakeAppointmentRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.appointments)), nil
}

type fakeBillRepo struct {
	mu        sync.Mutex
	bills     []entity.Bill
	createErr error
}

func (f *fakeBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = time.Now()
	}
	f.bills = append(f.bills, *bill)
	return nil
}

func (f *fakeBillRepo) FindAll(ctx context.Context) ([]entity.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.Bill(nil), f.bills...), nil
}

func (f *fakeBillRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.bills)), nil
}

func (f *fakeBillRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, bill := range f.bills {
		if bill.Status == status {
			count++
		}
	}
	return count, nil
}
