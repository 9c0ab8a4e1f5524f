package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
)

// AuditService serves the curriculum-coverage audit: raw rows, the aggregate
// summary and the per-subject metrics. Summaries are cached per filter set
// when a cache is wired; cache failures degrade to a direct read.
type AuditService struct {
	coverageRepo      ports.CoverageRepository
	cache             ports.SummaryCache
	summaryTTL        time.Duration
	overusedThreshold int
}

func NewAuditService(coverageRepo ports.CoverageRepository, cache ports.SummaryCache, summaryTTL time.Duration, overusedThreshold int) *AuditService {
	if overusedThreshold <= 0 {
		overusedThreshold = domain.DefaultOverusedThreshold
	}
	return &AuditService{
		coverageRepo:      coverageRepo,
		cache:             cache,
		summaryTTL:        summaryTTL,
		overusedThreshold: overusedThreshold,
	}
}

func (s *AuditService) OverusedThreshold() int {
	return s.overusedThreshold
}

// Coverage returns the filtered audit rows. Facet selectors narrow the
// repository query; the uncovered/unassessed toggles are applied here.
func (s *AuditService) Coverage(ctx context.Context, teacherID uuid.UUID, filters domain.AuditFilters) ([]domain.OutcomeCoverageRecord, error) {
	records, err := s.coverageRepo.ListCoverage(ctx, teacherID, filters)
	if err != nil {
		return nil, err
	}
	return domain.ApplyFilters(records, filters), nil
}

// Summary returns the aggregate snapshot for the facet selectors. The boolean
// toggles do not affect the summary; it always describes the full facet set.
func (s *AuditService) Summary(ctx context.Context, teacherID uuid.UUID, filters domain.AuditFilters) (*domain.CoverageSummary, error) {
	key := summaryCacheKey(teacherID, filters)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			log.WithError(err).Warn("summary cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	records, err := s.coverageRepo.ListCoverage(ctx, teacherID, filters)
	if err != nil {
		return nil, err
	}
	summary := domain.ComputeSummary(records, s.overusedThreshold)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, &summary, s.summaryTTL); err != nil {
			log.WithError(err).Warn("summary cache write failed")
		}
	}
	return &summary, nil
}

// Metrics recomputes the per-subject dashboard numbers from the milestone
// attachment tree, matching the alternate dashboard's semantics.
func (s *AuditService) Metrics(ctx context.Context, teacherID uuid.UUID, subjectIDs []uuid.UUID) (*domain.AuditMetrics, error) {
	attachments, err := s.coverageRepo.ListMilestoneAttachments(ctx, teacherID, subjectIDs)
	if err != nil {
		return nil, err
	}
	covered, err := s.coverageRepo.ListCoveredOutcomeIDs(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	metrics := domain.ComputeMetrics(attachments, covered, subjectIDs)
	return &metrics, nil
}

// Classify applies the configured overuse threshold.
func (s *AuditService) Classify(record domain.OutcomeCoverageRecord) domain.CoverageStatus {
	return domain.Classify(record, s.overusedThreshold)
}

func summaryCacheKey(teacherID uuid.UUID, f domain.AuditFilters) string {
	subject := ""
	if f.SubjectID != nil {
		subject = f.SubjectID.String()
	}
	return fmt.Sprintf("audit:summary:%s:%s:%s:%s:%s", teacherID, f.Term, subject, f.Grade, f.Domain)
}
