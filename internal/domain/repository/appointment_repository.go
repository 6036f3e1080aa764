package repository

import (
	"context"

	"hospitaldesk/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	// FindTimesByDate returns the booked slot times for one calendar day.
	FindTimesByDate(ctx context.Context, date string) ([]string, error)
	Count(ctx context.Context) (int64, error)
}
