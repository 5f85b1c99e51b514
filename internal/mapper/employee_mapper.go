package mapper

import (
	"coaching-dashboard-be/internal/entity"
	"coaching-dashboard-be/internal/model"
)

type EmployeeMapper struct{}

func NewEmployeeMapper() *EmployeeMapper {
	return &EmployeeMapper{}
}

func (m *EmployeeMapper) ToEntity(e *model.Employee) *entity.Employee {
	if e == nil {
		return nil
	}
	return &entity.Employee{
		Id:         e.Id,
		Email:      e.Email,
		FullName:   e.FullName,
		Program:    e.Program,
		CoachId:    e.CoachId,
		Status:     e.Status,
		BookingURL: e.BookingURL,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (m *EmployeeMapper) ToModel(e *entity.Employee) *model.Employee {
	if e == nil {
		return nil
	}
	return &model.Employee{
		Id:         e.Id,
		Email:      e.Email,
		FullName:   e.FullName,
		Program:    e.Program,
		CoachId:    e.CoachId,
		Status:     e.Status,
		BookingURL: e.BookingURL,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (m *EmployeeMapper) ToEntities(employees []*model.Employee) []*entity.Employee {
	entities := make([]*entity.Employee, len(employees))
	for i, e := range employees {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
