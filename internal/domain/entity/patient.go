package entity

import "time"

type Patient struct {
	ID        string    `gorm:"type:varchar(16);primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Age       int       `gorm:"not null"`
	Gender    string    `gorm:"type:varchar(32);not null"`
	Contact   string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Patient) TableName() string {
	return "patients"
}
