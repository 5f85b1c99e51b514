package unitofwork

import (
	"context"

	"coaching-dashboard-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	EmployeeRepository() contract.EmployeeRepository
	SessionRepository() contract.SessionRepository
	AssessmentRepository() contract.AssessmentRepository
	CheckpointRepository() contract.CheckpointRepository
}
