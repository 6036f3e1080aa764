package repository

import (
	"context"
	"errors"

	"hospitaldesk/internal/domain/entity"
	domainRepo "hospitaldesk/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	var patients []entity.Patient
	if err := r.db.WithContext(ctx).Order("created_at").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Patient{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
