package contract

import (
	"context"

	"coaching-dashboard-be/internal/entity"
	"coaching-dashboard-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AssessmentRepository interface {
	CreateBaseline(ctx context.Context, baseline *entity.BaselineSurvey) error
	FindBaseline(ctx context.Context, employeeId uuid.UUID) (*entity.BaselineSurvey, error)

	CreateScore(ctx context.Context, score *entity.CompetencyScore) error
	FindScores(ctx context.Context, specs ...specification.Specification) ([]*entity.CompetencyScore, error)
}
