package contract

import (
	"context"

	"coaching-dashboard-be/internal/entity"
	"coaching-dashboard-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CheckpointRepository interface {
	Create(ctx context.Context, checkpoint *entity.Checkpoint) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Checkpoint, error)
	FindLatest(ctx context.Context, employeeId uuid.UUID) (*entity.Checkpoint, error)
}
