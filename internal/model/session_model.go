package model

import (
	"time"

	"github.com/google/uuid"
)

type CoachingSession struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeId  uuid.UUID `gorm:"type:uuid;not null;index"`
	CoachName   string    `gorm:"type:varchar(255);not null"`
	Status      string    `gorm:"type:varchar(50);not null"`
	SessionDate time.Time `gorm:"not null;index"`
	Goals       *string   `gorm:"type:text"`
	Plan        *string   `gorm:"type:text"`
	Summary     *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (CoachingSession) TableName() string {
	return "coaching_sessions"
}
