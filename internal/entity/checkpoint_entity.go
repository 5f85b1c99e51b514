// FILE: internal/entity/checkpoint_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Checkpoint is a periodic longitudinal snapshot on the every-6-sessions
// track. SessionCountAtCheckpoint should equal CheckpointNumber x 6 under
// normal operation; the scheduler reads records literally and anomalies are
// surfaced at the read boundary instead.
type Checkpoint struct {
	Id                       uuid.UUID
	EmployeeId               uuid.UUID
	CheckpointNumber         int
	SessionCountAtCheckpoint int
	Scores                   map[string]int
	ReflectionText           *string
	FocusArea                *string
	// Wellbeing sub-scores are only populated from checkpoint 1 onward.
	Energy             *int
	Stress             *int
	Confidence         *int
	Satisfaction       *int
	NpsScore           *int
	TestimonialConsent bool
	CreatedAt          time.Time
}
