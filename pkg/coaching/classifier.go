// FILE: pkg/coaching/classifier.go
// Pure lifecycle classification. No I/O, no mutation, total over every input
// shape including nil employee and empty slices.
package coaching

import (
	"math"
	"strings"
	"time"
)

// SessionStatus values as stored by the scheduling system.
type SessionStatus string

const (
	SessionStatusCompleted SessionStatus = "Completed"
	SessionStatusUpcoming  SessionStatus = "Upcoming"
	SessionStatusScheduled SessionStatus = "Scheduled"
	SessionStatusCancelled SessionStatus = "Cancelled"
	SessionStatusNoShow    SessionStatus = "No Show"
)

// ScoreTypeEndOfProgram marks a competency score captured at program completion.
// Its mere existence is an authoritative completion signal.
const ScoreTypeEndOfProgram = "end_of_program"

// EmployeeSnapshot is the enrollment view the classifier needs. The persistence
// layer maps its richer entity into this.
type EmployeeSnapshot struct {
	Program *string
	CoachId *string
	Status  string
}

// SessionRecord is a single scheduling record.
type SessionRecord struct {
	Status      SessionStatus
	SessionDate time.Time
	CoachName   string
}

// BaselineRecord is the one-time pre-program survey. Only its presence matters
// to the classifier.
type BaselineRecord struct {
	CapturedAt time.Time
}

// ScoreRecord is a scored competency entry tagged with its score type.
type ScoreRecord struct {
	ScoreType string
}

// StateData is the classifier's full output: the lifecycle state plus every
// derived fact downstream views need, so they never recompute any of it.
type StateData struct {
	State State

	Program ProgramInfo

	HasProgram           bool
	HasCoach             bool
	HasBaseline          bool
	HasCompletedSessions bool
	HasUpcomingSession   bool

	CompletedSessionCount int
	TotalExpectedSessions int
	ProgramProgress       int // 0-100, capped

	UpcomingSession *SessionRecord
	LastSession     *SessionRecord

	IsGrowOrExec          bool
	HasEndOfProgramScores bool
}

// Substrings of the employee status text that signal completion, matched
// case-insensitively.
var completedStatusMarkers = []string{"completed", "graduated", "finished"}

// Classify derives the lifecycle state and all supporting facts from one
// consistent snapshot. Completion is an OR of three independent signals:
// completion wording in the employee status, an end-of-program score, or the
// session count reaching the expected total with no upcoming session pending.
// State assignment is strict precedence: no program, completed, no coach,
// no completed sessions, active — first match wins.
func Classify(employee *EmployeeSnapshot, sessions []SessionRecord, baseline *BaselineRecord, scores []ScoreRecord) StateData {
	var program *string
	if employee != nil {
		program = employee.Program
	}
	info := NormalizeProgramType(program)

	completedCount := 0
	hasPendingUpcoming := false
	var upcoming *SessionRecord
	var last *SessionRecord
	for i := range sessions {
		s := &sessions[i]
		switch s.Status {
		case SessionStatusCompleted:
			completedCount++
			if last == nil || s.SessionDate.After(last.SessionDate) {
				last = s
			}
		case SessionStatusUpcoming, SessionStatusScheduled:
			if s.Status == SessionStatusUpcoming {
				hasPendingUpcoming = true
			}
			// Earliest date wins; ties keep the first seen (stable).
			if upcoming == nil || s.SessionDate.Before(upcoming.SessionDate) {
				upcoming = s
			}
		}
	}

	// A session on the books implies an assignment even if coach_id lags.
	hasCoach := (employee != nil && employee.CoachId != nil) || len(sessions) > 0

	progress := int(math.Round(float64(completedCount) / float64(info.TotalExpectedSessions) * 100))
	if progress > 100 {
		progress = 100
	}

	hasEndOfProgram := false
	for _, sc := range scores {
		if sc.ScoreType == ScoreTypeEndOfProgram {
			hasEndOfProgram = true
			break
		}
	}

	isCompleted := statusSignalsCompletion(employee) ||
		hasEndOfProgram ||
		(completedCount >= info.TotalExpectedSessions && !hasPendingUpcoming)

	var state State
	switch {
	case employee == nil || employee.Program == nil:
		state = StateNotSignedUp
	case isCompleted:
		// Completion overrides every other signal, including "no coach".
		state = StateCompletedProgram
	case !hasCoach:
		state = StateSignedUpNotMatched
	case completedCount == 0:
		state = StateMatchedPreFirstSession
	default:
		state = StateActiveProgram
	}

	return StateData{
		State:                 state,
		Program:               info,
		HasProgram:            employee != nil && employee.Program != nil,
		HasCoach:              hasCoach,
		HasBaseline:           baseline != nil,
		HasCompletedSessions:  completedCount > 0,
		HasUpcomingSession:    upcoming != nil,
		CompletedSessionCount: completedCount,
		TotalExpectedSessions: info.TotalExpectedSessions,
		ProgramProgress:       progress,
		UpcomingSession:       copySession(upcoming),
		LastSession:           copySession(last),
		IsGrowOrExec:          info.Type == ProgramTypeGrow || info.Type == ProgramTypeExec,
		HasEndOfProgramScores: hasEndOfProgram,
	}
}

func statusSignalsCompletion(employee *EmployeeSnapshot) bool {
	if employee == nil {
		return false
	}
	status := strings.ToLower(employee.Status)
	for _, marker := range completedStatusMarkers {
		if strings.Contains(status, marker) {
			return true
		}
	}
	return false
}

// copySession detaches the result from the caller's slice so StateData never
// aliases the input snapshot.
func copySession(s *SessionRecord) *SessionRecord {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
