package domain

import (
	"time"

	"github.com/google/uuid"
)

type CoverageStatus string

const (
	StatusUncovered          CoverageStatus = "UNCOVERED"
	StatusOverusedUnassessed CoverageStatus = "OVERUSED_UNASSESSED"
	StatusGood               CoverageStatus = "GOOD"
	StatusNeutral            CoverageStatus = "NEUTRAL"
)

// DefaultOverusedThreshold is the covered-count above which an unassessed
// outcome is flagged as overused. A UX heuristic, overridable via config.
const DefaultOverusedThreshold = 3

// OutcomeCoverageRecord is one audit row per curriculum outcome.
type OutcomeCoverageRecord struct {
	OutcomeID          uuid.UUID  `json:"outcome_id"`
	OutcomeCode        string     `json:"outcome_code"`
	OutcomeDescription string     `json:"outcome_description"`
	Domain             *string    `json:"domain"`
	CoveredCount       int        `json:"covered_count"`
	Assessed           bool       `json:"assessed"`
	LastUsed           *time.Time `json:"last_used"`
}

type CoverageSummary struct {
	Total                int     `json:"total"`
	Covered              int     `json:"covered"`
	Assessed             int     `json:"assessed"`
	Overused             int     `json:"overused"`
	Uncovered            int     `json:"uncovered"`
	CoveragePercentage   float64 `json:"coverage_percentage"`
	AssessmentPercentage float64 `json:"assessment_percentage"`
}

// AuditFilters is the full filter set for a coverage audit. Term, subject,
// grade and domain narrow the fetched set at the repository; the two boolean
// toggles are applied afterwards by ApplyFilters and never reach SQL.
type AuditFilters struct {
	Term               string     `json:"term,omitempty"`
	SubjectID          *uuid.UUID `json:"subject_id,omitempty"`
	Grade              string     `json:"grade,omitempty"`
	Domain             string     `json:"domain,omitempty"`
	ShowOnlyUncovered  bool       `json:"show_only_uncovered,omitempty"`
	ShowOnlyUnassessed bool       `json:"show_only_unassessed,omitempty"`
}

type AuditMetrics struct {
	TotalOutcomes      int     `json:"total_outcomes"`
	CoveredOutcomes    int     `json:"covered_outcomes"`
	UncoveredOutcomes  int     `json:"uncovered_outcomes"`
	CoveragePercentage float64 `json:"coverage_percentage"`
}

// MilestoneOutcome is one (milestone, outcome) attachment within a subject.
type MilestoneOutcome struct {
	SubjectID   uuid.UUID
	MilestoneID uuid.UUID
	OutcomeID   uuid.UUID
}

// ApplyFilters narrows records by the boolean toggles. Pure and idempotent;
// the facet selectors are handled upstream by the repository query.
func ApplyFilters(records []OutcomeCoverageRecord, filters AuditFilters) []OutcomeCoverageRecord {
	filtered := make([]OutcomeCoverageRecord, 0, len(records))
	for _, r := range records {
		if filters.ShowOnlyUncovered && r.CoveredCount != 0 {
			continue
		}
		if filters.ShowOnlyUnassessed && r.Assessed {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// Classify assigns a status category to a record. The uncovered rule takes
// precedence over everything else, including assessed.
func Classify(record OutcomeCoverageRecord, overusedThreshold int) CoverageStatus {
	switch {
	case record.CoveredCount == 0:
		return StatusUncovered
	case record.CoveredCount > overusedThreshold && !record.Assessed:
		return StatusOverusedUnassessed
	case record.Assessed:
		return StatusGood
	default:
		return StatusNeutral
	}
}

// ComputeSummary aggregates a coverage snapshot from raw records.
// Percentages are 0 when there are no records.
func ComputeSummary(records []OutcomeCoverageRecord, overusedThreshold int) CoverageSummary {
	s := CoverageSummary{Total: len(records)}
	for _, r := range records {
		if r.CoveredCount > 0 {
			s.Covered++
		} else {
			s.Uncovered++
		}
		if r.Assessed {
			s.Assessed++
		}
		if r.CoveredCount > overusedThreshold && !r.Assessed {
			s.Overused++
		}
	}
	if s.Total > 0 {
		s.CoveragePercentage = float64(s.Covered) / float64(s.Total) * 100
		s.AssessmentPercentage = float64(s.Assessed) / float64(s.Total) * 100
	}
	return s
}

// ComputeMetrics derives the per-subject dashboard metrics.
//
// TotalOutcomes counts (milestone, outcome) attachments without deduplicating
// an outcome shared by several milestones, while CoveredOutcomes is matched by
// deduplicated set membership. The asymmetry matches the shipped dashboard and
// is kept on purpose; UncoveredOutcomes can therefore exceed the number of
// distinct uncovered outcomes.
func ComputeMetrics(attachments []MilestoneOutcome, coveredOutcomeIDs []uuid.UUID, selectedSubjectIDs []uuid.UUID) AuditMetrics {
	selected := make(map[uuid.UUID]bool, len(selectedSubjectIDs))
	for _, id := range selectedSubjectIDs {
		selected[id] = true
	}

	outcomeSet := make(map[uuid.UUID]bool)
	total := 0
	for _, a := range attachments {
		if len(selected) > 0 && !selected[a.SubjectID] {
			continue
		}
		total++
		outcomeSet[a.OutcomeID] = true
	}

	coveredSet := make(map[uuid.UUID]bool)
	for _, id := range coveredOutcomeIDs {
		if outcomeSet[id] {
			coveredSet[id] = true
		}
	}

	m := AuditMetrics{
		TotalOutcomes:     total,
		CoveredOutcomes:   len(coveredSet),
		UncoveredOutcomes: total - len(coveredSet),
	}
	if total > 0 {
		m.CoveragePercentage = float64(m.CoveredOutcomes) / float64(total) * 100
	}
	return m
}
