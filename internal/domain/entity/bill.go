package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const BillStatusUnpaid = "unpaid"

type Bill struct {
	ID          string          `gorm:"type:varchar(16);primaryKey"`
	PatientID   string          `gorm:"type:varchar(16);not null;index"`
	PatientName string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status      string          `gorm:"type:varchar(32);not null;index"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}

func (Bill) TableName() string {
	return "bills"
}
