package repository

import (
	"context"

	"hospitaldesk/internal/domain/entity"
	domainRepo "hospitaldesk/internal/domain/repository"

	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) FindAll(ctx context.Context) ([]entity.Bill, error) {
	var bills []entity.Bill
	if err := r.db.WithContext(ctx).Order("created_at").Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Bill{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *billRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entity.Bill{}).
		Where("status = ?", status).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
