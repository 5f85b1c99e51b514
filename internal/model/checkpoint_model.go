package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Checkpoint struct {
	Id                       uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeId               uuid.UUID      `gorm:"type:uuid;not null;index:idx_checkpoints_employee_number,unique"`
	CheckpointNumber         int            `gorm:"not null;index:idx_checkpoints_employee_number,unique"`
	SessionCountAtCheckpoint int            `gorm:"not null"`
	Scores                   datatypes.JSON `gorm:"type:jsonb"`
	ReflectionText           *string        `gorm:"type:text"`
	FocusArea                *string        `gorm:"type:varchar(255)"`
	Energy                   *int
	Stress                   *int
	Confidence               *int
	Satisfaction             *int
	NpsScore                 *int
	TestimonialConsent       bool      `gorm:"default:false"`
	CreatedAt                time.Time `gorm:"autoCreateTime"`
}

func (Checkpoint) TableName() string {
	return "checkpoints"
}
