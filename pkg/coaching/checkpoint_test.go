package coaching

import (
	"testing"
	"time"
)

func cp(number, sessionCount int) CheckpointRecord {
	return CheckpointRecord{
		CheckpointNumber:         number,
		SessionCountAtCheckpoint: sessionCount,
		CreatedAt:                time.Date(2025, 1, number, 0, 0, 0, 0, time.UTC),
	}
}

func TestScheduleCheckpoints(t *testing.T) {
	tests := []struct {
		name            string
		completed       int
		checkpoints     []CheckpointRecord
		wantCurrent     int
		wantNextDueAt   int
		wantDue         bool
		wantSessionsSince int
	}{
		{
			name:        "fresh client below threshold",
			completed:   5,
			wantCurrent: 1, wantNextDueAt: 6, wantDue: false, wantSessionsSince: 5,
		},
		{
			name:        "first checkpoint due",
			completed:   6,
			wantCurrent: 1, wantNextDueAt: 6, wantDue: true, wantSessionsSince: 6,
		},
		{
			name:        "one checkpoint recorded, not yet due again",
			completed:   7,
			checkpoints: []CheckpointRecord{cp(1, 6)},
			wantCurrent: 2, wantNextDueAt: 12, wantDue: false, wantSessionsSince: 1,
		},
		{
			name:        "second checkpoint due",
			completed:   12,
			checkpoints: []CheckpointRecord{cp(1, 6)},
			wantCurrent: 2, wantNextDueAt: 12, wantDue: true, wantSessionsSince: 6,
		},
		{
			name:        "latest picked by number, not list order",
			completed:   13,
			checkpoints: []CheckpointRecord{cp(2, 12), cp(1, 6)},
			wantCurrent: 3, wantNextDueAt: 18, wantDue: false, wantSessionsSince: 1,
		},
		{
			name:        "zero sessions",
			completed:   0,
			wantCurrent: 1, wantNextDueAt: 6, wantDue: false, wantSessionsSince: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScheduleCheckpoints(ProgramTypeScale, tt.completed, tt.checkpoints)

			if got.CurrentCheckpointNumber != tt.wantCurrent {
				t.Errorf("CurrentCheckpointNumber = %d, want %d", got.CurrentCheckpointNumber, tt.wantCurrent)
			}
			if got.NextCheckpointDueAtSession != tt.wantNextDueAt {
				t.Errorf("NextCheckpointDueAtSession = %d, want %d", got.NextCheckpointDueAtSession, tt.wantNextDueAt)
			}
			if got.IsCheckpointDue != tt.wantDue {
				t.Errorf("IsCheckpointDue = %v, want %v", got.IsCheckpointDue, tt.wantDue)
			}
			if got.SessionsSinceLastCheckpoint != tt.wantSessionsSince {
				t.Errorf("SessionsSinceLastCheckpoint = %d, want %d", got.SessionsSinceLastCheckpoint, tt.wantSessionsSince)
			}
			if !got.IsScaleUser {
				t.Error("IsScaleUser = false, want true")
			}
		})
	}
}

func TestScheduleCheckpointsLatest(t *testing.T) {
	got := ScheduleCheckpoints(ProgramTypeScale, 14, []CheckpointRecord{cp(1, 6), cp(2, 12)})
	if got.LatestCheckpoint == nil || got.LatestCheckpoint.CheckpointNumber != 2 {
		t.Errorf("LatestCheckpoint = %+v, want number 2", got.LatestCheckpoint)
	}
	if len(got.Checkpoints) != 2 {
		t.Errorf("len(Checkpoints) = %d, want 2", len(got.Checkpoints))
	}

	got = ScheduleCheckpoints(ProgramTypeGrow, 3, nil)
	if got.LatestCheckpoint != nil {
		t.Errorf("LatestCheckpoint = %+v, want nil", got.LatestCheckpoint)
	}
	if got.IsScaleUser {
		t.Error("IsScaleUser = true for GROW, want false")
	}
}

func TestCheckpointAnomalies(t *testing.T) {
	tests := []struct {
		name        string
		checkpoints []CheckpointRecord
		wantCount   int
	}{
		{"empty list", nil, 0},
		{"clean sequence", []CheckpointRecord{cp(1, 6), cp(2, 12)}, 0},
		{"off-interval session count", []CheckpointRecord{cp(1, 7)}, 1},
		{"gap in numbering", []CheckpointRecord{cp(1, 6), cp(3, 18)}, 1},
		{"duplicate number", []CheckpointRecord{cp(1, 6), cp(1, 6)}, 1},
		{"number below one", []CheckpointRecord{cp(0, 0)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckpointAnomalies(tt.checkpoints)
			if len(got) != tt.wantCount {
				t.Errorf("anomalies = %v, want %d finding(s)", got, tt.wantCount)
			}
		})
	}
}
