package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BaselineSurvey struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeId       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	CompetencyScores datatypes.JSON `gorm:"type:jsonb"`
	Energy           int            `gorm:"not null"`
	Stress           int            `gorm:"not null"`
	Confidence       int            `gorm:"not null"`
	Satisfaction     int            `gorm:"not null"`
	CapturedAt       time.Time      `gorm:"not null"`
}

func (BaselineSurvey) TableName() string {
	return "baseline_surveys"
}

type CompetencyScore struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeId uuid.UUID      `gorm:"type:uuid;not null;index"`
	ScoreType  string         `gorm:"type:varchar(50);not null;index"`
	Scores     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (CompetencyScore) TableName() string {
	return "competency_scores"
}
