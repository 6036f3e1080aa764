package entity

import "time"

const AppointmentStatusScheduled = "scheduled"

type Appointment struct {
	ID          string    `gorm:"type:varchar(16);primaryKey"`
	PatientID   string    `gorm:"type:varchar(16);not null;index"`
	PatientName string    `gorm:"type:varchar(255);not null"`
	Date        string    `gorm:"type:varchar(10);not null;index:idx_appointments_date_time"`
	Time        string    `gorm:"type:varchar(5);not null;index:idx_appointments_date_time"`
	Reason      string    `gorm:"type:varchar(255);not null"`
	Status      string    `gorm:"type:varchar(32);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Appointment) TableName() string {
	return "appointments"
}
