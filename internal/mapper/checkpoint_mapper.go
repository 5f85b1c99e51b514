package mapper

import (
	"coaching-dashboard-be/internal/entity"
	"coaching-dashboard-be/internal/model"
)

type CheckpointMapper struct{}

func NewCheckpointMapper() *CheckpointMapper {
	return &CheckpointMapper{}
}

func (m *CheckpointMapper) ToEntity(c *model.Checkpoint) *entity.Checkpoint {
	if c == nil {
		return nil
	}
	return &entity.Checkpoint{
		Id:                       c.Id,
		EmployeeId:               c.EmployeeId,
		CheckpointNumber:         c.CheckpointNumber,
		SessionCountAtCheckpoint: c.SessionCountAtCheckpoint,
		Scores:                   scoresFromJSON(c.Scores),
		ReflectionText:           c.ReflectionText,
		FocusArea:                c.FocusArea,
		Energy:                   c.Energy,
		Stress:                   c.Stress,
		Confidence:               c.Confidence,
		Satisfaction:             c.Satisfaction,
		NpsScore:                 c.NpsScore,
		TestimonialConsent:       c.TestimonialConsent,
		CreatedAt:                c.CreatedAt,
	}
}

func (m *CheckpointMapper) ToModel(c *entity.Checkpoint) *model.Checkpoint {
	if c == nil {
		return nil
	}
	return &model.Checkpoint{
		Id:                       c.Id,
		EmployeeId:               c.EmployeeId,
		CheckpointNumber:         c.CheckpointNumber,
		SessionCountAtCheckpoint: c.SessionCountAtCheckpoint,
		Scores:                   scoresToJSON(c.Scores),
		ReflectionText:           c.ReflectionText,
		FocusArea:                c.FocusArea,
		Energy:                   c.Energy,
		Stress:                   c.Stress,
		Confidence:               c.Confidence,
		Satisfaction:             c.Satisfaction,
		NpsScore:                 c.NpsScore,
		TestimonialConsent:       c.TestimonialConsent,
		CreatedAt:                c.CreatedAt,
	}
}

func (m *CheckpointMapper) ToEntities(checkpoints []*model.Checkpoint) []*entity.Checkpoint {
	entities := make([]*entity.Checkpoint, len(checkpoints))
	for i, c := range checkpoints {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
