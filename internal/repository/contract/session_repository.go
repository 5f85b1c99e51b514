package contract

import (
	"context"

	"coaching-dashboard-be/internal/entity"
	"coaching-dashboard-be/internal/repository/specification"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.CoachingSession) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CoachingSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
