// FILE: internal/mapper/coaching_mapper.go
// Projects persistence entities into the lightweight snapshot types the pure
// coaching engine consumes, so pkg/coaching stays free of storage concerns.
package mapper

import (
	"coaching-dashboard-be/internal/entity"
	"coaching-dashboard-be/pkg/coaching"
)

type CoachingMapper struct{}

func NewCoachingMapper() *CoachingMapper {
	return &CoachingMapper{}
}

func (m *CoachingMapper) ToEmployeeSnapshot(e *entity.Employee) *coaching.EmployeeSnapshot {
	if e == nil {
		return nil
	}
	var coachId *string
	if e.CoachId != nil {
		id := e.CoachId.String()
		coachId = &id
	}
	return &coaching.EmployeeSnapshot{
		Program: e.Program,
		CoachId: coachId,
		Status:  e.Status,
	}
}

func (m *CoachingMapper) ToSessionRecords(sessions []*entity.CoachingSession) []coaching.SessionRecord {
	records := make([]coaching.SessionRecord, 0, len(sessions))
	for _, s := range sessions {
		if s == nil {
			continue
		}
		records = append(records, coaching.SessionRecord{
			Status:      coaching.SessionStatus(s.Status),
			SessionDate: s.SessionDate,
			CoachName:   s.CoachName,
		})
	}
	return records
}

func (m *CoachingMapper) ToBaselineRecord(b *entity.BaselineSurvey) *coaching.BaselineRecord {
	if b == nil {
		return nil
	}
	return &coaching.BaselineRecord{CapturedAt: b.CapturedAt}
}

func (m *CoachingMapper) ToScoreRecords(scores []*entity.CompetencyScore) []coaching.ScoreRecord {
	records := make([]coaching.ScoreRecord, 0, len(scores))
	for _, s := range scores {
		if s == nil {
			continue
		}
		records = append(records, coaching.ScoreRecord{ScoreType: s.ScoreType})
	}
	return records
}

func (m *CoachingMapper) ToCheckpointRecords(checkpoints []*entity.Checkpoint) []coaching.CheckpointRecord {
	records := make([]coaching.CheckpointRecord, 0, len(checkpoints))
	for _, c := range checkpoints {
		if c == nil {
			continue
		}
		records = append(records, coaching.CheckpointRecord{
			CheckpointNumber:         c.CheckpointNumber,
			SessionCountAtCheckpoint: c.SessionCountAtCheckpoint,
			CreatedAt:                c.CreatedAt,
		})
	}
	return records
}
