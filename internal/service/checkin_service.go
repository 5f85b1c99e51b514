// FILE: internal/service/checkin_service.go
// The periodic check-in flow: derives the next checkpoint number and the
// current completed-session count server-side, persists the record, and emits
// events for downstream notification.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"coaching-dashboard-be/internal/dto"
	"coaching-dashboard-be/internal/entity"
	"coaching-dashboard-be/internal/pkg/logger"
	"coaching-dashboard-be/internal/repository/specification"
	"coaching-dashboard-be/internal/repository/unitofwork"
	"coaching-dashboard-be/pkg/coaching"
	"coaching-dashboard-be/pkg/events"
	pktNats "coaching-dashboard-be/pkg/nats"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type ICheckinService interface {
	RecordCheckpoint(ctx context.Context, employeeId uuid.UUID, req *dto.RecordCheckpointRequest) (*dto.CheckpointResponse, error)
	ListCheckpoints(ctx context.Context, employeeId uuid.UUID) ([]*dto.CheckpointResponse, error)
}

type checkinService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	dashboardService IDashboardService
	eventPublisher   *pktNats.Publisher
	sysLogger        logger.ILogger
	validate         *validator.Validate
}

func NewCheckinService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	dashboardService IDashboardService,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) ICheckinService {
	return &checkinService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		dashboardService: dashboardService,
		eventPublisher:   eventPublisher,
		sysLogger:        sysLogger,
		validate:         validator.New(),
	}
}

func (s *checkinService) RecordCheckpoint(ctx context.Context, employeeId uuid.UUID, req *dto.RecordCheckpointRequest) (*dto.CheckpointResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	employee, err := uow.EmployeeRepository().FindOne(ctx, specification.ByID{ID: employeeId})
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	latest, err := uow.CheckpointRepository().FindLatest(ctx, employeeId)
	if err != nil {
		return nil, err
	}
	checkpointNumber := 1
	if latest != nil {
		checkpointNumber = latest.CheckpointNumber + 1
	}

	completedCount, err := uow.SessionRepository().Count(ctx,
		specification.ByEmployee{EmployeeId: employeeId},
		specification.BySessionStatus{Status: string(entity.SessionStatusCompleted)},
	)
	if err != nil {
		return nil, err
	}

	checkpoint := entity.Checkpoint{
		Id:                       uuid.New(),
		EmployeeId:               employeeId,
		CheckpointNumber:         checkpointNumber,
		SessionCountAtCheckpoint: int(completedCount),
		Scores:                   req.Scores,
		ReflectionText:           req.ReflectionText,
		FocusArea:                req.FocusArea,
		Energy:                   req.Energy,
		Stress:                   req.Stress,
		Confidence:               req.Confidence,
		Satisfaction:             req.Satisfaction,
		NpsScore:                 req.NpsScore,
		TestimonialConsent:       req.TestimonialConsent,
		CreatedAt:                time.Now(),
	}

	if err := uow.CheckpointRepository().Create(ctx, &checkpoint); err != nil {
		return nil, err
	}

	s.dashboardService.InvalidateEmployee(employeeId)

	s.publishRecorded(ctx, &checkpoint)
	s.publishGraduationIfCompleted(ctx, employee)

	return toCheckpointResponse(&checkpoint), nil
}

func (s *checkinService) ListCheckpoints(ctx context.Context, employeeId uuid.UUID) ([]*dto.CheckpointResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	checkpoints, err := uow.CheckpointRepository().FindAll(ctx,
		specification.ByEmployee{EmployeeId: employeeId},
		specification.OrderBy{Field: "checkpoint_number"},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CheckpointResponse, 0, len(checkpoints))
	for _, cp := range checkpoints {
		if cp == nil {
			continue
		}
		responses = append(responses, toCheckpointResponse(cp))
	}
	return responses, nil
}

// publishRecorded hands the persisted checkpoint to the in-process bus. A bus
// failure must not fail the check-in; it is logged and the record stands.
func (s *checkinService) publishRecorded(ctx context.Context, checkpoint *entity.Checkpoint) {
	payload, err := json.Marshal(dto.PublishCheckpointRecordedMessage{
		CheckpointId:     checkpoint.Id,
		EmployeeId:       checkpoint.EmployeeId,
		CheckpointNumber: checkpoint.CheckpointNumber,
	})
	if err != nil {
		s.sysLogger.Error("checkin", "Failed to marshal checkpoint event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.sysLogger.Error("checkin", "Failed to publish checkpoint event", map[string]interface{}{"error": err.Error()})
	}
}

// publishGraduationIfCompleted re-classifies after the write and notifies the
// wider platform the first time a client shows up as a graduate.
func (s *checkinService) publishGraduationIfCompleted(ctx context.Context, employee *entity.Employee) {
	state, err := s.dashboardService.GetCoachingState(ctx, employee.Id)
	if err != nil {
		s.sysLogger.Warn("checkin", "Could not re-classify after check-in", map[string]interface{}{"error": err.Error()})
		return
	}
	if state.State != string(coaching.StateCompletedProgram) || s.eventPublisher == nil {
		return
	}

	program := ""
	if employee.Program != nil {
		program = *employee.Program
	}
	if err := s.eventPublisher.Publish(ctx, events.NewProgramGraduatedEvent(employee.Id.String(), program)); err != nil {
		s.sysLogger.Warn("checkin", "Failed to publish graduation event", map[string]interface{}{"error": err.Error()})
	}
}
