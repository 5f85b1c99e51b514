package mapper

import (
	"coaching-dashboard-be/internal/entity"
	"coaching-dashboard-be/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.CoachingSession) *entity.CoachingSession {
	if s == nil {
		return nil
	}
	return &entity.CoachingSession{
		Id:          s.Id,
		EmployeeId:  s.EmployeeId,
		CoachName:   s.CoachName,
		Status:      entity.SessionStatus(s.Status),
		SessionDate: s.SessionDate,
		Goals:       s.Goals,
		Plan:        s.Plan,
		Summary:     s.Summary,
		CreatedAt:   s.CreatedAt,
	}
}

func (m *SessionMapper) ToModel(s *entity.CoachingSession) *model.CoachingSession {
	if s == nil {
		return nil
	}
	return &model.CoachingSession{
		Id:          s.Id,
		EmployeeId:  s.EmployeeId,
		CoachName:   s.CoachName,
		Status:      string(s.Status),
		SessionDate: s.SessionDate,
		Goals:       s.Goals,
		Plan:        s.Plan,
		Summary:     s.Summary,
		CreatedAt:   s.CreatedAt,
	}
}

func (m *SessionMapper) ToEntities(sessions []*model.CoachingSession) []*entity.CoachingSession {
	entities := make([]*entity.CoachingSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
