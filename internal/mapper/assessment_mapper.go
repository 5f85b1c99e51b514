package mapper

import (
	"encoding/json"

	"coaching-dashboard-be/internal/entity"
	"coaching-dashboard-be/internal/model"

	"gorm.io/datatypes"
)

type AssessmentMapper struct{}

func NewAssessmentMapper() *AssessmentMapper {
	return &AssessmentMapper{}
}

func (m *AssessmentMapper) BaselineToEntity(b *model.BaselineSurvey) *entity.BaselineSurvey {
	if b == nil {
		return nil
	}
	return &entity.BaselineSurvey{
		Id:               b.Id,
		EmployeeId:       b.EmployeeId,
		CompetencyScores: scoresFromJSON(b.CompetencyScores),
		Energy:           b.Energy,
		Stress:           b.Stress,
		Confidence:       b.Confidence,
		Satisfaction:     b.Satisfaction,
		CapturedAt:       b.CapturedAt,
	}
}

func (m *AssessmentMapper) BaselineToModel(b *entity.BaselineSurvey) *model.BaselineSurvey {
	if b == nil {
		return nil
	}
	return &model.BaselineSurvey{
		Id:               b.Id,
		EmployeeId:       b.EmployeeId,
		CompetencyScores: scoresToJSON(b.CompetencyScores),
		Energy:           b.Energy,
		Stress:           b.Stress,
		Confidence:       b.Confidence,
		Satisfaction:     b.Satisfaction,
		CapturedAt:       b.CapturedAt,
	}
}

func (m *AssessmentMapper) ScoreToEntity(s *model.CompetencyScore) *entity.CompetencyScore {
	if s == nil {
		return nil
	}
	return &entity.CompetencyScore{
		Id:         s.Id,
		EmployeeId: s.EmployeeId,
		ScoreType:  s.ScoreType,
		Scores:     scoresFromJSON(s.Scores),
		CreatedAt:  s.CreatedAt,
	}
}

func (m *AssessmentMapper) ScoreToModel(s *entity.CompetencyScore) *model.CompetencyScore {
	if s == nil {
		return nil
	}
	return &model.CompetencyScore{
		Id:         s.Id,
		EmployeeId: s.EmployeeId,
		ScoreType:  s.ScoreType,
		Scores:     scoresToJSON(s.Scores),
		CreatedAt:  s.CreatedAt,
	}
}

func (m *AssessmentMapper) ScoresToEntities(scores []*model.CompetencyScore) []*entity.CompetencyScore {
	entities := make([]*entity.CompetencyScore, len(scores))
	for i, s := range scores {
		entities[i] = m.ScoreToEntity(s)
	}
	return entities
}

// scoresToJSON / scoresFromJSON convert between the JSONB column and the typed
// score map. A map that fails to marshal is stored as null rather than failing
// the whole mapping (the engine only needs score_type anyway).
func scoresToJSON(scores map[string]int) datatypes.JSON {
	if scores == nil {
		return nil
	}
	data, err := json.Marshal(scores)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}

func scoresFromJSON(data datatypes.JSON) map[string]int {
	if len(data) == 0 {
		return nil
	}
	var scores map[string]int
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil
	}
	return scores
}
