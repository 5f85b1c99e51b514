package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByEmployee filters rows belonging to one employee.
type ByEmployee struct {
	EmployeeId uuid.UUID
}

func (s ByEmployee) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("employee_id = ?", s.EmployeeId)
}

// ByScoreType filters competency scores by their score_type tag.
type ByScoreType struct {
	ScoreType string
}

func (s ByScoreType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("score_type = ?", s.ScoreType)
}

// BySessionStatus filters coaching sessions by status.
type BySessionStatus struct {
	Status string
}

func (s BySessionStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
