// FILE: internal/entity/session_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusCompleted SessionStatus = "Completed"
	SessionStatusUpcoming  SessionStatus = "Upcoming"
	SessionStatusScheduled SessionStatus = "Scheduled"
	SessionStatusCancelled SessionStatus = "Cancelled"
	SessionStatusNoShow    SessionStatus = "No Show"
)

// CoachingSession is a single scheduling record. Only Completed sessions count
// toward program progress; Upcoming/Scheduled matter for "what's next" only.
type CoachingSession struct {
	Id          uuid.UUID
	EmployeeId  uuid.UUID
	CoachName   string
	Status      SessionStatus
	SessionDate time.Time
	Goals       *string
	Plan        *string
	Summary     *string
	CreatedAt   time.Time
}
