package service

import (
	"context"
	"sort"

	"coaching-dashboard-be/internal/entity"
	"coaching-dashboard-be/internal/repository/contract"
	"coaching-dashboard-be/internal/repository/specification"
	"coaching-dashboard-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory fakes backing the service tests. They honor only the
// specifications the services actually use: ByID, ByEmployee,
// BySessionStatus and OrderBy are interpreted; the rest are ignored.

type fakeStore struct {
	employees   []*entity.Employee
	sessions    []*entity.CoachingSession
	baselines   []*entity.BaselineSurvey
	scores      []*entity.CompetencyScore
	checkpoints []*entity.Checkpoint

	findErr error
}

type fakeUowFactory struct {
	store *fakeStore
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) EmployeeRepository() contract.EmployeeRepository {
	return &fakeEmployeeRepo{store: u.store}
}
func (u *fakeUow) SessionRepository() contract.SessionRepository {
	return &fakeSessionRepo{store: u.store}
}
func (u *fakeUow) AssessmentRepository() contract.AssessmentRepository {
	return &fakeAssessmentRepo{store: u.store}
}
func (u *fakeUow) CheckpointRepository() contract.CheckpointRepository {
	return &fakeCheckpointRepo{store: u.store}
}

func matchEmployee(specs []specification.Specification) (uuid.UUID, bool) {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			return s.ID, true
		case specification.ByEmployee:
			return s.EmployeeId, true
		}
	}
	return uuid.Nil, false
}

type fakeEmployeeRepo struct {
	store *fakeStore
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	r.store.employees = append(r.store.employees, employee)
	return nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, employee *entity.Employee) error {
	for i, e := range r.store.employees {
		if e.Id == employee.Id {
			r.store.employees[i] = employee
		}
	}
	return nil
}

func (r *fakeEmployeeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error) {
	if r.store.findErr != nil {
		return nil, r.store.findErr
	}
	id, ok := matchEmployee(specs)
	if !ok {
		return nil, nil
	}
	for _, e := range r.store.employees {
		if e.Id == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Employee, error) {
	return r.store.employees, r.store.findErr
}

func (r *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	for _, e := range r.store.employees {
		if e.Id == id {
			e.Status = status
		}
	}
	return nil
}

type fakeSessionRepo struct {
	store *fakeStore
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.CoachingSession) error {
	r.store.sessions = append(r.store.sessions, session)
	return nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CoachingSession, error) {
	if r.store.findErr != nil {
		return nil, r.store.findErr
	}
	result := r.filter(specs)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SessionDate.Before(result[j].SessionDate)
	})
	return result, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if r.store.findErr != nil {
		return 0, r.store.findErr
	}
	return int64(len(r.filter(specs))), nil
}

func (r *fakeSessionRepo) filter(specs []specification.Specification) []*entity.CoachingSession {
	id, byEmployee := matchEmployee(specs)
	status := ""
	for _, spec := range specs {
		if s, ok := spec.(specification.BySessionStatus); ok {
			status = s.Status
		}
	}

	var result []*entity.CoachingSession
	for _, sess := range r.store.sessions {
		if byEmployee && sess.EmployeeId != id {
			continue
		}
		if status != "" && string(sess.Status) != status {
			continue
		}
		result = append(result, sess)
	}
	return result
}

type fakeAssessmentRepo struct {
	store *fakeStore
}

func (r *fakeAssessmentRepo) CreateBaseline(ctx context.Context, baseline *entity.BaselineSurvey) error {
	r.store.baselines = append(r.store.baselines, baseline)
	return nil
}

func (r *fakeAssessmentRepo) FindBaseline(ctx context.Context, employeeId uuid.UUID) (*entity.BaselineSurvey, error) {
	if r.store.findErr != nil {
		return nil, r.store.findErr
	}
	for _, b := range r.store.baselines {
		if b.EmployeeId == employeeId {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeAssessmentRepo) CreateScore(ctx context.Context, score *entity.CompetencyScore) error {
	r.store.scores = append(r.store.scores, score)
	return nil
}

func (r *fakeAssessmentRepo) FindScores(ctx context.Context, specs ...specification.Specification) ([]*entity.CompetencyScore, error) {
	if r.store.findErr != nil {
		return nil, r.store.findErr
	}
	id, byEmployee := matchEmployee(specs)
	var result []*entity.CompetencyScore
	for _, score := range r.store.scores {
		if byEmployee && score.EmployeeId != id {
			continue
		}
		result = append(result, score)
	}
	return result, nil
}

type fakeCheckpointRepo struct {
	store *fakeStore
}

func (r *fakeCheckpointRepo) Create(ctx context.Context, checkpoint *entity.Checkpoint) error {
	r.store.checkpoints = append(r.store.checkpoints, checkpoint)
	return nil
}

func (r *fakeCheckpointRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Checkpoint, error) {
	if r.store.findErr != nil {
		return nil, r.store.findErr
	}
	id, byEmployee := matchEmployee(specs)
	var result []*entity.Checkpoint
	for _, cp := range r.store.checkpoints {
		if byEmployee && cp.EmployeeId != id {
			continue
		}
		result = append(result, cp)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CheckpointNumber < result[j].CheckpointNumber
	})
	return result, nil
}

func (r *fakeCheckpointRepo) FindLatest(ctx context.Context, employeeId uuid.UUID) (*entity.Checkpoint, error) {
	if r.store.findErr != nil {
		return nil, r.store.findErr
	}
	var latest *entity.Checkpoint
	for _, cp := range r.store.checkpoints {
		if cp.EmployeeId != employeeId {
			continue
		}
		if latest == nil || cp.CheckpointNumber > latest.CheckpointNumber {
			latest = cp
		}
	}
	return latest, nil
}

// captureLogger records calls so tests can assert on warnings.
type captureLogger struct {
	warnings []string
	errors   []string
}

func (l *captureLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *captureLogger) Info(module, message string, details map[string]interface{})  {}
func (l *captureLogger) Warn(module, message string, details map[string]interface{}) {
	l.warnings = append(l.warnings, message)
}
func (l *captureLogger) Error(module, message string, details map[string]interface{}) {
	l.errors = append(l.errors, message)
}
func (l *captureLogger) Sync() error { return nil }

// capturePublisher records payloads handed to the in-process bus.
type capturePublisher struct {
	payloads [][]byte
	err      error
}

func (p *capturePublisher) Publish(ctx context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}
