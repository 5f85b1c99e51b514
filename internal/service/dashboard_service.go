// FILE: internal/service/dashboard_service.go
// Assembles the per-employee coaching snapshot and runs the pure derivation
// engine over it. All five reads are independent, so they fan out in parallel
// and the engine is invoked once on the consistent result.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"coaching-dashboard-be/internal/dto"
	"coaching-dashboard-be/internal/entity"
	"coaching-dashboard-be/internal/mapper"
	"coaching-dashboard-be/internal/pkg/logger"
	"coaching-dashboard-be/internal/repository/specification"
	"coaching-dashboard-be/internal/repository/unitofwork"
	"coaching-dashboard-be/pkg/coaching"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type IDashboardService interface {
	GetCoachingState(ctx context.Context, employeeId uuid.UUID) (*dto.CoachingStateResponse, error)
	GetCheckpointStatus(ctx context.Context, employeeId uuid.UUID) (*dto.CheckpointStatusResponse, error)
	GetSessions(ctx context.Context, employeeId uuid.UUID) ([]*dto.SessionResponse, error)

	// InvalidateEmployee drops the memoized snapshot after a write
	// (e.g. a recorded check-in) so the next read reflects it immediately.
	InvalidateEmployee(employeeId uuid.UUID)
}

// employeeSnapshot is the full set of engine inputs fetched at one point in
// time. The engine's sole unit of input.
type employeeSnapshot struct {
	employee    *entity.Employee
	sessions    []*entity.CoachingSession
	baseline    *entity.BaselineSurvey
	scores      []*entity.CompetencyScore
	checkpoints []*entity.Checkpoint
}

type dashboardService struct {
	uowFactory     unitofwork.RepositoryFactory
	coachingMapper *mapper.CoachingMapper
	sysLogger      logger.ILogger
	snapshots      *gocache.Cache
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger, stateTTL time.Duration) IDashboardService {
	return &dashboardService{
		uowFactory:     uowFactory,
		coachingMapper: mapper.NewCoachingMapper(),
		sysLogger:      sysLogger,
		snapshots:      gocache.New(stateTTL, 2*stateTTL),
	}
}

func snapshotCacheKey(employeeId uuid.UUID) string {
	return "snapshot:" + employeeId.String()
}

// fetchSnapshot loads the five independent reads concurrently, each on its own
// unit of work. The assembled snapshot is memoized for a short TTL; the engine
// itself never caches, so recomputation stays idempotent.
func (s *dashboardService) fetchSnapshot(ctx context.Context, employeeId uuid.UUID) (*employeeSnapshot, error) {
	if cached, found := s.snapshots.Get(snapshotCacheKey(employeeId)); found {
		return cached.(*employeeSnapshot), nil
	}

	snapshot := &employeeSnapshot{}
	errs := make([]error, 5)

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		uow := s.uowFactory.NewUnitOfWork(ctx)
		snapshot.employee, errs[0] = uow.EmployeeRepository().FindOne(ctx, specification.ByID{ID: employeeId})
	}()
	go func() {
		defer wg.Done()
		uow := s.uowFactory.NewUnitOfWork(ctx)
		snapshot.sessions, errs[1] = uow.SessionRepository().FindAll(ctx,
			specification.ByEmployee{EmployeeId: employeeId},
			specification.OrderBy{Field: "session_date"},
		)
	}()
	go func() {
		defer wg.Done()
		uow := s.uowFactory.NewUnitOfWork(ctx)
		snapshot.baseline, errs[2] = uow.AssessmentRepository().FindBaseline(ctx, employeeId)
	}()
	go func() {
		defer wg.Done()
		uow := s.uowFactory.NewUnitOfWork(ctx)
		snapshot.scores, errs[3] = uow.AssessmentRepository().FindScores(ctx,
			specification.ByEmployee{EmployeeId: employeeId},
		)
	}()
	go func() {
		defer wg.Done()
		uow := s.uowFactory.NewUnitOfWork(ctx)
		snapshot.checkpoints, errs[4] = uow.CheckpointRepository().FindAll(ctx,
			specification.ByEmployee{EmployeeId: employeeId},
			specification.OrderBy{Field: "checkpoint_number"},
		)
	}()

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to load coaching snapshot: %w", err)
		}
	}

	s.snapshots.SetDefault(snapshotCacheKey(employeeId), snapshot)
	return snapshot, nil
}

func (s *dashboardService) GetCoachingState(ctx context.Context, employeeId uuid.UUID) (*dto.CoachingStateResponse, error) {
	snapshot, err := s.fetchSnapshot(ctx, employeeId)
	if err != nil {
		return nil, err
	}

	state := coaching.Classify(
		s.coachingMapper.ToEmployeeSnapshot(snapshot.employee),
		s.coachingMapper.ToSessionRecords(snapshot.sessions),
		s.coachingMapper.ToBaselineRecord(snapshot.baseline),
		s.coachingMapper.ToScoreRecords(snapshot.scores),
	)

	response := &dto.CoachingStateResponse{
		EmployeeId:      employeeId,
		State:           string(state.State),
		StateLabel:      state.State.Label(),
		CanBookSessions: coaching.CanBookSessions(state.State),
		IsAlumni:        coaching.IsAlumni(state.State),
		Program: dto.ProgramInfoDTO{
			Type:                  string(state.Program.Type),
			TotalExpectedSessions: state.Program.TotalExpectedSessions,
			Recognized:            state.Program.Recognized,
		},
		HasProgram:            state.HasProgram,
		HasCoach:              state.HasCoach,
		HasBaseline:           state.HasBaseline,
		HasCompletedSessions:  state.HasCompletedSessions,
		HasUpcomingSession:    state.HasUpcomingSession,
		CompletedSessionCount: state.CompletedSessionCount,
		TotalExpectedSessions: state.TotalExpectedSessions,
		ProgramProgress:       state.ProgramProgress,
		UpcomingSession:       toSessionSummary(state.UpcomingSession),
		LastSession:           toSessionSummary(state.LastSession),
		IsGrowOrExec:          state.IsGrowOrExec,
		HasEndOfProgramScores: state.HasEndOfProgramScores,
	}
	if snapshot.employee != nil {
		response.BookingURL = snapshot.employee.BookingURL
	}

	return response, nil
}

func (s *dashboardService) GetCheckpointStatus(ctx context.Context, employeeId uuid.UUID) (*dto.CheckpointStatusResponse, error) {
	snapshot, err := s.fetchSnapshot(ctx, employeeId)
	if err != nil {
		return nil, err
	}

	records := s.coachingMapper.ToCheckpointRecords(snapshot.checkpoints)
	if anomalies := coaching.CheckpointAnomalies(records); len(anomalies) > 0 {
		s.sysLogger.Warn("dashboard", "Inconsistent checkpoint records", map[string]interface{}{
			"employee_id": employeeId.String(),
			"anomalies":   anomalies,
		})
	}

	var program *string
	if snapshot.employee != nil {
		program = snapshot.employee.Program
	}
	info := coaching.NormalizeProgramType(program)

	completedCount := 0
	for _, sess := range snapshot.sessions {
		if sess != nil && sess.Status == entity.SessionStatusCompleted {
			completedCount++
		}
	}

	status := coaching.ScheduleCheckpoints(info.Type, completedCount, records)

	response := &dto.CheckpointStatusResponse{
		EmployeeId:                  employeeId,
		IsScaleUser:                 status.IsScaleUser,
		CurrentCheckpointNumber:     status.CurrentCheckpointNumber,
		SessionsSinceLastCheckpoint: status.SessionsSinceLastCheckpoint,
		NextCheckpointDueAtSession:  status.NextCheckpointDueAtSession,
		IsCheckpointDue:             status.IsCheckpointDue,
		Checkpoints:                 make([]dto.CheckpointResponse, 0, len(snapshot.checkpoints)),
	}

	for _, cp := range snapshot.checkpoints {
		if cp == nil {
			continue
		}
		response.Checkpoints = append(response.Checkpoints, *toCheckpointResponse(cp))
		if status.LatestCheckpoint != nil && cp.CheckpointNumber == status.LatestCheckpoint.CheckpointNumber {
			response.LatestCheckpoint = toCheckpointResponse(cp)
		}
	}

	return response, nil
}

func (s *dashboardService) GetSessions(ctx context.Context, employeeId uuid.UUID) ([]*dto.SessionResponse, error) {
	snapshot, err := s.fetchSnapshot(ctx, employeeId)
	if err != nil {
		return nil, err
	}

	sessions := make([]*dto.SessionResponse, 0, len(snapshot.sessions))
	for _, sess := range snapshot.sessions {
		if sess == nil {
			continue
		}
		sessions = append(sessions, &dto.SessionResponse{
			Id:          sess.Id,
			CoachName:   sess.CoachName,
			Status:      string(sess.Status),
			SessionDate: sess.SessionDate,
			Goals:       sess.Goals,
			Plan:        sess.Plan,
			Summary:     sess.Summary,
		})
	}
	return sessions, nil
}

func (s *dashboardService) InvalidateEmployee(employeeId uuid.UUID) {
	s.snapshots.Delete(snapshotCacheKey(employeeId))
}

func toSessionSummary(record *coaching.SessionRecord) *dto.SessionSummaryDTO {
	if record == nil {
		return nil
	}
	return &dto.SessionSummaryDTO{
		CoachName:   record.CoachName,
		Status:      string(record.Status),
		SessionDate: record.SessionDate,
	}
}

func toCheckpointResponse(cp *entity.Checkpoint) *dto.CheckpointResponse {
	return &dto.CheckpointResponse{
		Id:                       cp.Id,
		CheckpointNumber:         cp.CheckpointNumber,
		SessionCountAtCheckpoint: cp.SessionCountAtCheckpoint,
		Scores:                   cp.Scores,
		ReflectionText:           cp.ReflectionText,
		FocusArea:                cp.FocusArea,
		Energy:                   cp.Energy,
		Stress:                   cp.Stress,
		Confidence:               cp.Confidence,
		Satisfaction:             cp.Satisfaction,
		NpsScore:                 cp.NpsScore,
		TestimonialConsent:       cp.TestimonialConsent,
		CreatedAt:                cp.CreatedAt,
	}
}
