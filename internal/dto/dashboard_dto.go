// FILE: internal/dto/dashboard_dto.go
// DTOs for the coaching dashboard read endpoints.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// SessionSummaryDTO is the slim session view embedded in the coaching state
// (upcoming/last session). The full history endpoint uses SessionResponse.
type SessionSummaryDTO struct {
	CoachName   string    `json:"coach_name"`
	Status      string    `json:"status"`
	SessionDate time.Time `json:"session_date"`
}

// ProgramInfoDTO exposes the normalized program track. Recognized=false means
// the label did not match a known track and the session totals are a fallback;
// views should prefer a neutral progress indicator in that case.
type ProgramInfoDTO struct {
	Type                  string `json:"type"`
	TotalExpectedSessions int    `json:"total_expected_sessions"`
	Recognized            bool   `json:"recognized"`
}

// CoachingStateResponse is returned by GET /api/employees/:id/coaching-state.
// It carries the classified lifecycle state plus every derived fact views need,
// so no consumer ever recomputes them.
type CoachingStateResponse struct {
	EmployeeId uuid.UUID `json:"employee_id"`

	State           string `json:"state"`
	StateLabel      string `json:"state_label"`
	CanBookSessions bool   `json:"can_book_sessions"`
	IsAlumni        bool   `json:"is_alumni"`

	Program ProgramInfoDTO `json:"program"`

	HasProgram           bool `json:"has_program"`
	HasCoach             bool `json:"has_coach"`
	HasBaseline          bool `json:"has_baseline"`
	HasCompletedSessions bool `json:"has_completed_sessions"`
	HasUpcomingSession   bool `json:"has_upcoming_session"`

	CompletedSessionCount int `json:"completed_session_count"`
	TotalExpectedSessions int `json:"total_expected_sessions"`
	ProgramProgress       int `json:"program_progress"`

	UpcomingSession *SessionSummaryDTO `json:"upcoming_session,omitempty"`
	LastSession     *SessionSummaryDTO `json:"last_session,omitempty"`

	IsGrowOrExec          bool `json:"is_grow_or_exec"`
	HasEndOfProgramScores bool `json:"has_end_of_program_scores"`

	BookingURL string `json:"booking_url,omitempty"`
}

// CheckpointStatusResponse is returned by GET /api/employees/:id/checkpoint-status.
type CheckpointStatusResponse struct {
	EmployeeId uuid.UUID `json:"employee_id"`

	IsScaleUser                 bool `json:"is_scale_user"`
	CurrentCheckpointNumber     int  `json:"current_checkpoint_number"`
	SessionsSinceLastCheckpoint int  `json:"sessions_since_last_checkpoint"`
	NextCheckpointDueAtSession  int  `json:"next_checkpoint_due_at_session"`
	IsCheckpointDue             bool `json:"is_checkpoint_due"`

	Checkpoints      []CheckpointResponse `json:"checkpoints"`
	LatestCheckpoint *CheckpointResponse  `json:"latest_checkpoint,omitempty"`
}

// SessionResponse is one row of GET /api/employees/:id/sessions.
type SessionResponse struct {
	Id          uuid.UUID `json:"id"`
	CoachName   string    `json:"coach_name"`
	Status      string    `json:"status"`
	SessionDate time.Time `json:"session_date"`
	Goals       *string   `json:"goals,omitempty"`
	Plan        *string   `json:"plan,omitempty"`
	Summary     *string   `json:"summary,omitempty"`
}
