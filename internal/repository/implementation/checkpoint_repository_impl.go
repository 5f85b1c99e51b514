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

type CheckpointRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CheckpointMapper
}

func NewCheckpointRepository(db *gorm.DB) contract.CheckpointRepository {
	return &CheckpointRepositoryImpl{
		db:     db,
		mapper: mapper.NewCheckpointMapper(),
	}
}

func (r *CheckpointRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CheckpointRepositoryImpl) Create(ctx context.Context, checkpoint *entity.Checkpoint) error {
	m := r.mapper.ToModel(checkpoint)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*checkpoint = *r.mapper.ToEntity(m)
	return nil
}

func (r *CheckpointRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Checkpoint, error) {
	var models []*model.Checkpoint
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CheckpointRepositoryImpl) FindLatest(ctx context.Context, employeeId uuid.UUID) (*entity.Checkpoint, error) {
	var m model.Checkpoint
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeId).
		Order("checkpoint_number DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
