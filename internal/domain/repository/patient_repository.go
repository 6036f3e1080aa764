package repository

import (
	"context"

	"hospitaldesk/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindAll(ctx context.Context) ([]entity.Patient, error)
	FindByID(ctx context.Context, id string) (*entity.Patient, error)
	Count(ctx context.Context) (int64, error)
}
