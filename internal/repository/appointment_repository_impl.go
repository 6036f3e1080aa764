package repository

import (
	"context"

	"hospitaldesk/internal/domain/entity"
	domainRepo "hospitaldesk/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	if err := r.db.WithContext(ctx).Order("created_at").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindTimesByDate(ctx context.Context, date string) ([]string, error) {
	var times []string
	err := r.db.WithContext(ctx).
		Model(&entity.Appointment{}).
		Where("date = ?", date).
		Pluck("time", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

func (r *appointmentRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Appointment{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
