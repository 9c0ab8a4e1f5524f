package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"classroom-planner-service/internal/core/domain"
)

// CoverageRepository computes the audit's raw inputs. The facet selectors in
// domain.AuditFilters (term, subject, grade, domain) narrow the SQL result;
// the boolean toggles are applied afterwards in the service layer.
type CoverageRepository interface {
	ListCoverage(ctx context.Context, teacherID uuid.UUID, filters domain.AuditFilters) ([]domain.OutcomeCoverageRecord, error)
	ListMilestoneAttachments(ctx context.Context, teacherID uuid.UUID, subjectIDs []uuid.UUID) ([]domain.MilestoneOutcome, error)
	ListCoveredOutcomeIDs(ctx context.Context, teacherID uuid.UUID) ([]uuid.UUID, error)
}

// SummaryCache is an optional read-through cache for coverage summaries.
// A miss is signalled by (nil, nil).
type SummaryCache interface {
	Get(ctx context.Context, key string) (*domain.CoverageSummary, error)
	Set(ctx context.Context, key string, summary *domain.CoverageSummary, ttl time.Duration) error
}
