// FILE: pkg/coaching/checkpoint.go
// Checkpoint scheduling for the periodic (every-6-sessions) track.
package coaching

import (
	"fmt"
	"time"
)

// CheckpointInterval is the number of completed sessions between checkpoints.
const CheckpointInterval = 6

// CheckpointRecord is a prior longitudinal check-in as read from storage.
type CheckpointRecord struct {
	CheckpointNumber         int
	SessionCountAtCheckpoint int
	CreatedAt                time.Time
}

// CheckpointStatus is the scheduler's full output snapshot.
type CheckpointStatus struct {
	IsScaleUser                 bool
	CurrentCheckpointNumber     int // the next checkpoint to be earned
	SessionsSinceLastCheckpoint int
	NextCheckpointDueAtSession  int
	IsCheckpointDue             bool
	Checkpoints                 []CheckpointRecord
	LatestCheckpoint            *CheckpointRecord
}

// ScheduleCheckpoints determines the current checkpoint number and whether a
// new checkpoint is due, from the completed-session count and the prior
// checkpoint records. Records are read literally; use CheckpointAnomalies at
// the read boundary to surface inconsistent data. Pure and total.
func ScheduleCheckpoints(programType ProgramType, completedSessionCount int, checkpoints []CheckpointRecord) CheckpointStatus {
	var latest *CheckpointRecord
	for i := range checkpoints {
		if latest == nil || checkpoints[i].CheckpointNumber > latest.CheckpointNumber {
			latest = &checkpoints[i]
		}
	}

	current := 1
	lastSessionCount := 0
	if latest != nil {
		current = latest.CheckpointNumber + 1
		lastSessionCount = latest.SessionCountAtCheckpoint
	}

	nextDueAt := current * CheckpointInterval

	status := CheckpointStatus{
		IsScaleUser:                 programType == ProgramTypeScale,
		CurrentCheckpointNumber:     current,
		SessionsSinceLastCheckpoint: completedSessionCount - lastSessionCount,
		NextCheckpointDueAtSession:  nextDueAt,
		IsCheckpointDue:             completedSessionCount >= nextDueAt,
		Checkpoints:                 append([]CheckpointRecord(nil), checkpoints...),
	}
	if latest != nil {
		c := *latest
		status.LatestCheckpoint = &c
	}
	return status
}

// CheckpointAnomalies scans checkpoint records for violations of the invariants
// the scheduler assumes but does not enforce: contiguous checkpoint numbers
// starting at 1, and a session count equal to number x interval. Returns one
// message per finding; empty means clean.
func CheckpointAnomalies(checkpoints []CheckpointRecord) []string {
	if len(checkpoints) == 0 {
		return nil
	}

	byNumber := make(map[int]bool, len(checkpoints))
	maxNumber := 0
	var anomalies []string
	for _, cp := range checkpoints {
		if cp.CheckpointNumber < 1 {
			anomalies = append(anomalies, fmt.Sprintf("checkpoint number %d is below 1", cp.CheckpointNumber))
			continue
		}
		if byNumber[cp.CheckpointNumber] {
			anomalies = append(anomalies, fmt.Sprintf("duplicate checkpoint number %d", cp.CheckpointNumber))
		}
		byNumber[cp.CheckpointNumber] = true
		if cp.CheckpointNumber > maxNumber {
			maxNumber = cp.CheckpointNumber
		}
		if want := cp.CheckpointNumber * CheckpointInterval; cp.SessionCountAtCheckpoint != want {
			anomalies = append(anomalies, fmt.Sprintf(
				"checkpoint %d recorded at session %d, expected %d",
				cp.CheckpointNumber, cp.SessionCountAtCheckpoint, want))
		}
	}

	for n := 1; n <= maxNumber; n++ {
		if !byNumber[n] {
			anomalies = append(anomalies, fmt.Sprintf("checkpoint number %d is missing", n))
		}
	}

	return anomalies
}
