package model

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email      string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName   string     `gorm:"type:varchar(255);not null"`
	Program    *string    `gorm:"type:varchar(255)"`
	CoachId    *uuid.UUID `gorm:"type:uuid;index"`
	Status     string     `gorm:"type:varchar(100);not null;default:'Active'"`
	BookingURL string     `gorm:"type:text"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
