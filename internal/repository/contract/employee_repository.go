package contract

import (
	"context"

	"coaching-dashboard-be/internal/entity"
	"coaching-dashboard-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	Update(ctx context.Context, employee *entity.Employee) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Employee, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
