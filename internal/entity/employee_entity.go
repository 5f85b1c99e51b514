// FILE: internal/entity/employee_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Employee is an enrollment snapshot. Program and Status are free text as
// entered by the program operations team; normalization happens in the
// coaching engine, never here.
type Employee struct {
	Id         uuid.UUID
	Email      string
	FullName   string
	Program    *string // e.g. "GROW - Cohort 1", nil before signup
	CoachId    *uuid.UUID
	Status     string // e.g. "Active", "Program Graduated"
	BookingURL string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
