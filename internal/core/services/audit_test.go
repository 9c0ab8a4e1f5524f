package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"classroom-planner-service/internal/core/domain"
	"classroom-planner-service/internal/testutil"
)

func coverageRow(code string, covered int, assessed bool) domain.OutcomeCoverageRecord {
	return domain.OutcomeCoverageRecord{
		OutcomeID:    uuid.New(),
		OutcomeCode:  code,
		CoveredCount: covered,
		Assessed:     assessed,
	}
}

func TestAuditService_Coverage(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	svc := NewAuditService(repo, nil, time.Minute, 0)

	teacherID := uuid.New()
	rows := []domain.OutcomeCoverageRecord{
		coverageRow("FR.1", 0, false),
		coverageRow("FR.2", 2, true),
	}
	repo.On("ListCoverage", mock.Anything, teacherID, mock.Anything).Return(rows, nil)

	got, err := svc.Coverage(context.Background(), teacherID, domain.AuditFilters{})
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	repo.AssertExpectations(t)
}

func TestAuditService_Coverage_TogglesApplied(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	svc := NewAuditService(repo, nil, time.Minute, 0)

	teacherID := uuid.New()
	rows := []domain.OutcomeCoverageRecord{
		coverageRow("FR.1", 0, false),
		coverageRow("FR.2", 2, true),
		coverageRow("FR.3", 0, true),
	}
	repo.On("ListCoverage", mock.Anything, teacherID, mock.Anything).Return(rows, nil)

	got, err := svc.Coverage(context.Background(), teacherID, domain.AuditFilters{ShowOnlyUncovered: true, ShowOnlyUnassessed: true})
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "FR.1", got[0].OutcomeCode)
}

func TestAuditService_Coverage_RepoError(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	svc := NewAuditService(repo, nil, time.Minute, 0)

	teacherID := uuid.New()
	repo.On("ListCoverage", mock.Anything, teacherID, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Coverage(context.Background(), teacherID, domain.AuditFilters{})
	assert.Error(t, err)
}

func TestAuditService_Summary_CacheMiss(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	cache := new(testutil.MockSummaryCache)
	svc := NewAuditService(repo, cache, time.Minute, 0)

	teacherID := uuid.New()
	rows := []domain.OutcomeCoverageRecord{
		coverageRow("FR.1", 2, true),
		coverageRow("FR.2", 5, false),
		coverageRow("FR.3", 0, false),
	}
	cache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(nil, nil)
	cache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("*domain.CoverageSummary"), time.Minute).Return(nil)
	repo.On("ListCoverage", mock.Anything, teacherID, mock.Anything).Return(rows, nil)

	summary, err := svc.Summary(context.Background(), teacherID, domain.AuditFilters{})
	assert.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Covered)
	assert.Equal(t, 1, summary.Overused)
	assert.InDelta(t, 66.67, summary.CoveragePercentage, 0.01)
	cache.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestAuditService_Summary_CacheHitSkipsRepo(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	cache := new(testutil.MockSummaryCache)
	svc := NewAuditService(repo, cache, time.Minute, 0)

	teacherID := uuid.New()
	cached := &domain.CoverageSummary{Total: 10, Covered: 7}
	cache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(cached, nil)

	summary, err := svc.Summary(context.Background(), teacherID, domain.AuditFilters{})
	assert.NoError(t, err)
	assert.Equal(t, 10, summary.Total)
	repo.AssertNotCalled(t, "ListCoverage", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuditService_Summary_CacheFailureFallsThrough(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	cache := new(testutil.MockSummaryCache)
	svc := NewAuditService(repo, cache, time.Minute, 0)

	teacherID := uuid.New()
	rows := []domain.OutcomeCoverageRecord{coverageRow("FR.1", 1, false)}
	cache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(nil, errors.New("redis down"))
	cache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.Anything, time.Minute).Return(errors.New("redis down"))
	repo.On("ListCoverage", mock.Anything, teacherID, mock.Anything).Return(rows, nil)

	summary, err := svc.Summary(context.Background(), teacherID, domain.AuditFilters{})
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
}

func TestAuditService_Summary_NoCache(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	svc := NewAuditService(repo, nil, time.Minute, 0)

	teacherID := uuid.New()
	repo.On("ListCoverage", mock.Anything, teacherID, mock.Anything).Return([]domain.OutcomeCoverageRecord{}, nil)

	summary, err := svc.Summary(context.Background(), teacherID, domain.AuditFilters{})
	assert.NoError(t, err)
	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.CoveragePercentage)
}

func TestAuditService_Summary_KeyVariesByFilters(t *testing.T) {
	teacherID := uuid.New()
	subjectID := uuid.New()

	base := summaryCacheKey(teacherID, domain.AuditFilters{})
	byTerm := summaryCacheKey(teacherID, domain.AuditFilters{Term: "T1"})
	bySubject := summaryCacheKey(teacherID, domain.AuditFilters{SubjectID: &subjectID})

	assert.NotEqual(t, base, byTerm)
	assert.NotEqual(t, base, bySubject)
	assert.NotEqual(t, byTerm, bySubject)
}

func TestAuditService_Summary_KeyIgnoresToggles(t *testing.T) {
	teacherID := uuid.New()

	plain := summaryCacheKey(teacherID, domain.AuditFilters{Term: "T1"})
	toggled := summaryCacheKey(teacherID, domain.AuditFilters{Term: "T1", ShowOnlyUncovered: true, ShowOnlyUnassessed: true})

	assert.Equal(t, plain, toggled)
}

func TestAuditService_Metrics(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	svc := NewAuditService(repo, nil, time.Minute, 0)

	teacherID := uuid.New()
	subjectID := uuid.New()
	o1, o2 := uuid.New(), uuid.New()

	attachments := []domain.MilestoneOutcome{
		{SubjectID: subjectID, MilestoneID: uuid.New(), OutcomeID: o1},
		{SubjectID: subjectID, MilestoneID: uuid.New(), OutcomeID: o2},
	}
	repo.On("ListMilestoneAttachments", mock.Anything, teacherID, []uuid.UUID{subjectID}).Return(attachments, nil)
	repo.On("ListCoveredOutcomeIDs", mock.Anything, teacherID).Return([]uuid.UUID{o1}, nil)

	metrics, err := svc.Metrics(context.Background(), teacherID, []uuid.UUID{subjectID})
	assert.NoError(t, err)
	assert.Equal(t, 2, metrics.TotalOutcomes)
	assert.Equal(t, 1, metrics.CoveredOutcomes)
	assert.Equal(t, 1, metrics.UncoveredOutcomes)
	repo.AssertExpectations(t)
}

func TestAuditService_Metrics_AttachmentsError(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	svc := NewAuditService(repo, nil, time.Minute, 0)

	teacherID := uuid.New()
	repo.On("ListMilestoneAttachments", mock.Anything, teacherID, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Metrics(context.Background(), teacherID, nil)
	assert.Error(t, err)
}

func TestAuditService_ThresholdDefaulting(t *testing.T) {
	svc := NewAuditService(new(testutil.MockCoverageRepo), nil, time.Minute, 0)
	assert.Equal(t, domain.DefaultOverusedThreshold, svc.OverusedThreshold())

	svc = NewAuditService(new(testutil.MockCoverageRepo), nil, time.Minute, 5)
	assert.Equal(t, 5, svc.OverusedThreshold())
}

func TestAuditService_ClassifyUsesConfiguredThreshold(t *testing.T) {
	svc := NewAuditService(new(testutil.MockCoverageRepo), nil, time.Minute, 5)

	assert.Equal(t, domain.StatusNeutral, svc.Classify(coverageRow("FR.1", 5, false)))
	assert.Equal(t, domain.StatusOverusedUnassessed, svc.Classify(coverageRow("FR.2", 6, false)))
}
