// FILE: internal/dto/checkin_dto.go
// DTOs for the periodic check-in flow that writes checkpoint records.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// RecordCheckpointRequest is the body of POST /api/employees/:id/checkpoints.
// The checkpoint number and session count are derived server-side, never
// accepted from the client.
type RecordCheckpointRequest struct {
	Scores             map[string]int `json:"scores" validate:"required,min=1,dive,min=1,max=5"`
	ReflectionText     *string        `json:"reflection_text,omitempty"`
	FocusArea          *string        `json:"focus_area,omitempty"`
	Energy             *int           `json:"energy,omitempty" validate:"omitempty,min=1,max=5"`
	Stress             *int           `json:"stress,omitempty" validate:"omitempty,min=1,max=5"`
	Confidence         *int           `json:"confidence,omitempty" validate:"omitempty,min=1,max=5"`
	Satisfaction       *int           `json:"satisfaction,omitempty" validate:"omitempty,min=1,max=5"`
	NpsScore           *int           `json:"nps_score,omitempty" validate:"omitempty,min=0,max=10"`
	TestimonialConsent bool           `json:"testimonial_consent"`
}

type CheckpointResponse struct {
	Id                       uuid.UUID      `json:"id"`
	CheckpointNumber         int            `json:"checkpoint_number"`
	SessionCountAtCheckpoint int            `json:"session_count_at_checkpoint"`
	Scores                   map[string]int `json:"scores,omitempty"`
	ReflectionText           *string        `json:"reflection_text,omitempty"`
	FocusArea                *string        `json:"focus_area,omitempty"`
	Energy                   *int           `json:"energy,omitempty"`
	Stress                   *int           `json:"stress,omitempty"`
	Confidence               *int           `json:"confidence,omitempty"`
	Satisfaction             *int           `json:"satisfaction,omitempty"`
	NpsScore                 *int           `json:"nps_score,omitempty"`
	TestimonialConsent       bool           `json:"testimonial_consent"`
	CreatedAt                time.Time      `json:"created_at"`
}

// PublishCheckpointRecordedMessage is the in-process event payload emitted
// after a checkpoint is persisted, consumed by the notification consumer.
type PublishCheckpointRecordedMessage struct {
	CheckpointId     uuid.UUID `json:"checkpoint_id"`
	EmployeeId       uuid.UUID `json:"employee_id"`
	CheckpointNumber int       `json:"checkpoint_number"`
}
