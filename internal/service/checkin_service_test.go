package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"coaching-dashboard-be/internal/dto"
	"coaching-dashboard-be/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardService struct {
	state       *dto.CoachingStateResponse
	stateErr    error
	invalidated []uuid.UUID
}

func (f *fakeDashboardService) GetCoachingState(ctx context.Context, employeeId uuid.UUID) (*dto.CoachingStateResponse, error) {
	return f.state, f.stateErr
}

func (f *fakeDashboardService) GetCheckpointStatus(ctx context.Context, employeeId uuid.UUID) (*dto.CheckpointStatusResponse, error) {
	return nil, nil
}

func (f *fakeDashboardService) GetSessions(ctx context.Context, employeeId uuid.UUID) ([]*dto.SessionResponse, error) {
	return nil, nil
}

func (f *fakeDashboardService) InvalidateEmployee(employeeId uuid.UUID) {
	f.invalidated = append(f.invalidated, employeeId)
}

func validCheckpointRequest() *dto.RecordCheckpointRequest {
	return &dto.RecordCheckpointRequest{
		Scores: map[string]int{
			"communication": 4,
			"delegation":    3,
		},
	}
}

func newCheckinFixture(store *fakeStore) (ICheckinService, *fakeDashboardService, *capturePublisher, *captureLogger) {
	dashboard := &fakeDashboardService{
		state: &dto.CoachingStateResponse{State: "ACTIVE_PROGRAM"},
	}
	publisher := &capturePublisher{}
	logger := &captureLogger{}
	svc := NewCheckinService(&fakeUowFactory{store: store}, publisher, dashboard, nil, logger)
	return svc, dashboard, publisher, logger
}

func TestRecordCheckpoint_FirstCheckpoint(t *testing.T) {
	store := &fakeStore{}
	employeeId := seedActiveEmployee(store, 6)

	svc, dashboard, publisher, _ := newCheckinFixture(store)

	checkpoint, err := svc.RecordCheckpoint(context.Background(), employeeId, validCheckpointRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, checkpoint.CheckpointNumber)
	assert.Equal(t, 6, checkpoint.SessionCountAtCheckpoint)
	assert.Equal(t, 4, checkpoint.Scores["communication"])

	// The memoized snapshot must be dropped so the next read sees the write.
	require.Len(t, dashboard.invalidated, 1)
	assert.Equal(t, employeeId, dashboard.invalidated[0])

	// The bus payload carries the identifiers the consumer needs.
	require.Len(t, publisher.payloads, 1)
	var msg dto.PublishCheckpointRecordedMessage
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &msg))
	assert.Equal(t, checkpoint.Id, msg.CheckpointId)
	assert.Equal(t, employeeId, msg.EmployeeId)
	assert.Equal(t, 1, msg.CheckpointNumber)
}

func TestRecordCheckpoint_DerivesNextNumber(t *testing.T) {
	store := &fakeStore{}
	employeeId := seedActiveEmployee(store, 13)
	store.checkpoints = append(store.checkpoints,
		&entity.Checkpoint{Id: uuid.New(), EmployeeId: employeeId, CheckpointNumber: 1, SessionCountAtCheckpoint: 6},
		&entity.Checkpoint{Id: uuid.New(), EmployeeId: employeeId, CheckpointNumber: 2, SessionCountAtCheckpoint: 12},
	)

	svc, _, _, _ := newCheckinFixture(store)

	checkpoint, err := svc.RecordCheckpoint(context.Background(), employeeId, validCheckpointRequest())
	require.NoError(t, err)

	assert.Equal(t, 3, checkpoint.CheckpointNumber)
	assert.Equal(t, 13, checkpoint.SessionCountAtCheckpoint)
}

func TestRecordCheckpoint_RejectsInvalidScores(t *testing.T) {
	store := &fakeStore{}
	employeeId := seedActiveEmployee(store, 6)

	svc, _, publisher, _ := newCheckinFixture(store)

	tests := []struct {
		name string
		req  *dto.RecordCheckpointRequest
	}{
		{"no scores", &dto.RecordCheckpointRequest{}},
		{"score out of range", &dto.RecordCheckpointRequest{Scores: map[string]int{"communication": 6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordCheckpoint(context.Background(), employeeId, tt.req)
			require.Error(t, err)
			var validationErrs validator.ValidationErrors
			assert.ErrorAs(t, err, &validationErrs)
		})
	}
	assert.Empty(t, publisher.payloads)
	assert.Empty(t, store.checkpoints)
}

func TestRecordCheckpoint_UnknownEmployee(t *testing.T) {
	store := &fakeStore{}
	svc, _, _, _ := newCheckinFixture(store)

	_, err := svc.RecordCheckpoint(context.Background(), uuid.New(), validCheckpointRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestRecordCheckpoint_BusFailureDoesNotFailWrite(t *testing.T) {
	store := &fakeStore{}
	employeeId := seedActiveEmployee(store, 6)

	dashboard := &fakeDashboardService{state: &dto.CoachingStateResponse{State: "ACTIVE_PROGRAM"}}
	publisher := &capturePublisher{err: assert.AnError}
	logger := &captureLogger{}
	svc := NewCheckinService(&fakeUowFactory{store: store}, publisher, dashboard, nil, logger)

	checkpoint, err := svc.RecordCheckpoint(context.Background(), employeeId, validCheckpointRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, checkpoint.CheckpointNumber)
	require.Len(t, store.checkpoints, 1)
	require.Len(t, logger.errors, 1)
	assert.Equal(t, "Failed to publish checkpoint event", logger.errors[0])
}

func TestListCheckpoints_OrderedByNumber(t *testing.T) {
	store := &fakeStore{}
	employeeId := seedActiveEmployee(store, 13)
	store.checkpoints = append(store.checkpoints,
		&entity.Checkpoint{Id: uuid.New(), EmployeeId: employeeId, CheckpointNumber: 2, SessionCountAtCheckpoint: 12, CreatedAt: time.Now()},
		&entity.Checkpoint{Id: uuid.New(), EmployeeId: employeeId, CheckpointNumber: 1, SessionCountAtCheckpoint: 6, CreatedAt: time.Now().Add(-time.Hour)},
	)

	svc, _, _, _ := newCheckinFixture(store)

	checkpoints, err := svc.ListCheckpoints(context.Background(), employeeId)
	require.NoError(t, err)
	require.Len(t, checkpoints, 2)
	assert.Equal(t, 1, checkpoints[0].CheckpointNumber)
	assert.Equal(t, 2, checkpoints[1].CheckpointNumber)
}
