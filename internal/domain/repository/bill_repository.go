package repository

import (
	"context"

	"hospitaldesk/internal/domain/entity"
)

type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	FindAll(ctx context.Context) ([]entity.Bill, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}
