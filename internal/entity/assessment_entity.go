// FILE: internal/entity/assessment_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaselineSurvey is the one-time pre-program snapshot: 12 named competency
// pre-scores (1-5) plus four wellbeing metrics. Captured at or before the
// first session.
type BaselineSurvey struct {
	Id               uuid.UUID
	EmployeeId       uuid.UUID
	CompetencyScores map[string]int
	Energy           int
	Stress           int
	Confidence       int
	Satisfaction     int
	CapturedAt       time.Time
}

// CompetencyScore is a scored entry tagged with its score type. An
// "end_of_program" entry is a completion signal regardless of session counts.
type CompetencyScore struct {
	Id         uuid.UUID
	EmployeeId uuid.UUID
	ScoreType  string
	Scores     map[string]int
	CreatedAt  time.Time
}
