package implementation

import (
	"context"
	"errors"

	"coaching-dashboard-be/internal/entity"
	"coaching-dashboard-be/internal/mapper"
	"coaching-dashboard-be/internal/model"
	"coaching-dashboard-be/internal/repository/contract"
	"coaching-dashboard-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssessmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AssessmentMapper
}

func NewAssessmentRepository(db *gorm.DB) contract.AssessmentRepository {
	return &AssessmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAssessmentMapper(),
	}
}

func (r *AssessmentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AssessmentRepositoryImpl) CreateBaseline(ctx context.Context, baseline *entity.BaselineSurvey) error {
	m := r.mapper.BaselineToModel(baseline)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*baseline = *r.mapper.BaselineToEntity(m)
	return nil
}

func (r *AssessmentRepositoryImpl) FindBaseline(ctx context.Context, employeeId uuid.UUID) (*entity.BaselineSurvey, error) {
	var m model.BaselineSurvey
	err := r.db.WithContext(ctx).Where("employee_id = ?", employeeId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BaselineToEntity(&m), nil
}

func (r *AssessmentRepositoryImpl) CreateScore(ctx context.Context, score *entity.CompetencyScore) error {
	m := r.mapper.ScoreToModel(score)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*score = *r.mapper.ScoreToEntity(m)
	return nil
}

func (r *AssessmentRepositoryImpl) FindScores(ctx context.Context, specs ...specification.Specification) ([]*entity.CompetencyScore, error) {
	var models []*model.CompetencyScore
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ScoresToEntities(models), nil
}
