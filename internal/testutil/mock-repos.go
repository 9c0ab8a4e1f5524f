package testutil

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
)

// MockOutcomeRepo is a mock of OutcomeRepository.
type MockOutcomeRepo struct {
	mock.Mock
}

func (m *MockOutcomeRepo) Create(ctx context.Context, outcome *domain.Outcome) error {
	args := m.Called(ctx, outcome)
	return args.Error(0)
}

func (m *MockOutcomeRepo) GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Outcome, error) {
	args := m.Called(ctx, teacherID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Outcome), args.Error(1)
}

func (m *MockOutcomeRepo) GetByCode(ctx context.Context, teacherID uuid.UUID, code string) (*domain.Outcome, error) {
	args := m.Called(ctx, teacherID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Outcome), args.Error(1)
}

func (m *MockOutcomeRepo) Update(ctx context.Context, teacherID uuid.UUID, outcome *domain.Outcome) error {
	args := m.Called(ctx, teacherID, outcome)
	return args.Error(0)
}

func (m *MockOutcomeRepo) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, teacherID, id)
	return args.Error(0)
}

func (m *MockOutcomeRepo) List(ctx context.Context, filter ports.OutcomeListFilter) ([]*domain.Outcome, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Outcome), args.Int(1), args.Error(2)
}

// MockSubjectRepo is a mock of SubjectRepository.
type MockSubjectRepo struct {
	mock.Mock
}

func (m *MockSubjectRepo) Create(ctx context.Context, subject *domain.Subject) error {
	args := m.Called(ctx, subject)
	return args.Error(0)
}

func (m *MockSubjectRepo) GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Subject, error) {
	args := m.Called(ctx, teacherID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subject), args.Error(1)
}

func (m *MockSubjectRepo) Update(ctx context.Context, teacherID uuid.UUID, subject *domain.Subject) error {
	args := m.Called(ctx, teacherID, subject)
	return args.Error(0)
}

func (m *MockSubjectRepo) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, teacherID, id)
	return args.Error(0)
}

func (m *MockSubjectRepo) List(ctx context.Context, filter ports.SubjectListFilter) ([]*domain.Subject, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Subject), args.Int(1), args.Error(2)
}

func (m *MockSubjectRepo) CreateMilestone(ctx context.Context, milestone *domain.Milestone) error {
	args := m.Called(ctx, milestone)
	return args.Error(0)
}

func (m *MockSubjectRepo) ListMilestones(ctx context.Context, teacherID uuid.UUID, subjectID uuid.UUID) ([]*domain.Milestone, error) {
	args := m.Called(ctx, teacherID, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Milestone), args.Error(1)
}

// MockCoverageRepo is a mock of CoverageRepository.
type MockCoverageRepo struct {
	mock.Mock
}

func (m *MockCoverageRepo) ListCoverage(ctx context.Context, teacherID uuid.UUID, filters domain.AuditFilters) ([]domain.OutcomeCoverageRecord, error) {
	args := m.Called(ctx, teacherID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OutcomeCoverageRecord), args.Error(1)
}

func (m *MockCoverageRepo) ListMilestoneAttachments(ctx context.Context, teacherID uuid.UUID, subjectIDs []uuid.UUID) ([]domain.MilestoneOutcome, error) {
	args := m.Called(ctx, teacherID, subjectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MilestoneOutcome), args.Error(1)
}

func (m *MockCoverageRepo) ListCoveredOutcomeIDs(ctx context.Context, teacherID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// MockSummaryCache is a mock of SummaryCache.
type MockSummaryCache struct {
	mock.Mock
}

func (m *MockSummaryCache) Get(ctx context.Context, key string) (*domain.CoverageSummary, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoverageSummary), args.Error(1)
}

func (m *MockSummaryCache) Set(ctx context.Context, key string, summary *domain.CoverageSummary, ttl time.Duration) error {
	args := m.Called(ctx, key, summary, ttl)
	return args.Error(0)
}

// MockActivityRepo is a mock of ActivityRepository.
type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) Create(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepo) GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Activity, error) {
	args := m.Called(ctx, teacherID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

func (m *MockActivityRepo) Update(ctx context.Context, teacherID uuid.UUID, activity *domain.Activity) error {
	args := m.Called(ctx, teacherID, activity)
	return args.Error(0)
}

func (m *MockActivityRepo) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, teacherID, id)
	return args.Error(0)
}

func (m *MockActivityRepo) List(ctx context.Context, filter ports.ActivityListFilter) ([]*domain.Activity, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Activity), args.Int(1), args.Error(2)
}

// MockAssessmentRepo is a mock of AssessmentRepository.
type MockAssessmentRepo struct {
	mock.Mock
}

func (m *MockAssessmentRepo) Create(ctx context.Context, result *domain.AssessmentResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockAssessmentRepo) GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.AssessmentResult, error) {
	args := m.Called(ctx, teacherID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssessmentResult), args.Error(1)
}

func (m *MockAssessmentRepo) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, teacherID, id)
	return args.Error(0)
}

func (m *MockAssessmentRepo) List(ctx context.Context, filter ports.AssessmentListFilter) ([]*domain.AssessmentResult, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.AssessmentResult), args.Int(1), args.Error(2)
}

// MockStudentRepo is a mock of StudentRepository.
type MockStudentRepo struct {
	mock.Mock
}

func (m *MockStudentRepo) Create(ctx context.Context, student *domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepo) GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Student, error) {
	args := m.Called(ctx, teacherID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentRepo) Update(ctx context.Context, teacherID uuid.UUID, student *domain.Student) error {
	args := m.Called(ctx, teacherID, student)
	return args.Error(0)
}

func (m *MockStudentRepo) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, teacherID, id)
	return args.Error(0)
}

func (m *MockStudentRepo) List(ctx context.Context, filter ports.StudentListFilter) ([]*domain.Student, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Student), args.Int(1), args.Error(2)
}

// MockReflectionRepo is a mock of ReflectionRepository.
type MockReflectionRepo struct {
	mock.Mock
}

func (m *MockReflectionRepo) Create(ctx context.Context, entry *domain.ReflectionEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockReflectionRepo) GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.ReflectionEntry, error) {
	args := m.Called(ctx, teacherID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReflectionEntry), args.Error(1)
}

func (m *MockReflectionRepo) Update(ctx context.Context, teacherID uuid.UUID, entry *domain.ReflectionEntry) error {
	args := m.Called(ctx, teacherID, entry)
	return args.Error(0)
}

func (m *MockReflectionRepo) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, teacherID, id)
	return args.Error(0)
}

func (m *MockReflectionRepo) List(ctx context.Context, filter ports.ReflectionListFilter) ([]*domain.ReflectionEntry, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.ReflectionEntry), args.Int(1), args.Error(2)
}

// MockNewsletterRepo is a mock of NewsletterRepository.
type MockNewsletterRepo struct {
	mock.Mock
}

func (m *MockNewsletterRepo) Create(ctx context.Context, newsletter *domain.Newsletter) error {
	args := m.Called(ctx, newsletter)
	return args.Error(0)
}

func (m *MockNewsletterRepo) GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Newsletter, error) {
	args := m.Called(ctx, teacherID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Newsletter), args.Error(1)
}

func (m *MockNewsletterRepo) Update(ctx context.Context, teacherID uuid.UUID, newsletter *domain.Newsletter) error {
	args := m.Called(ctx, teacherID, newsletter)
	return args.Error(0)
}

func (m *MockNewsletterRepo) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, teacherID, id)
	return args.Error(0)
}

func (m *MockNewsletterRepo) List(ctx context.Context, filter ports.NewsletterListFilter) ([]*domain.Newsletter, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Newsletter), args.Int(1), args.Error(2)
}

// MockAIGateway is a mock of AIGatewayClient.
type MockAIGateway struct {
	mock.Mock
}

func (m *MockAIGateway) IsAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockAIGateway) GenerateNewsletter(ctx context.Context, req ports.GenerationRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
