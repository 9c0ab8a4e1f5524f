package dto

import (
	"github.com/google/uuid"

	"classroom-planner-service/internal/core/domain"
)

type CoverageRecordResponse struct {
	OutcomeID          uuid.UUID `json:"outcome_id"`
	OutcomeCode        string    `json:"outcome_code"`
	OutcomeDescription string    `json:"outcome_description"`
	Domain             *string   `json:"domain"`
	CoveredCount       int       `json:"covered_count"`
	Assessed           bool      `json:"assessed"`
	LastUsed           *string   `json:"last_used"`
	Status             string    `json:"status"`
}

func ToCoverageRecordResponse(r domain.OutcomeCoverageRecord, status domain.CoverageStatus) CoverageRecordResponse {
	resp := CoverageRecordResponse{
		OutcomeID:          r.OutcomeID,
		OutcomeCode:        r.OutcomeCode,
		OutcomeDescription: r.OutcomeDescription,
		Domain:             r.Domain,
		CoveredCount:       r.CoveredCount,
		Assessed:           r.Assessed,
		Status:             string(status),
	}
	if r.LastUsed != nil {
		s := r.LastUsed.Format("2006-01-02")
		resp.LastUsed = &s
	}
	return resp
}

type CoverageListResponse struct {
	Items []CoverageRecordResponse `json:"items"`
	Total int                      `json:"total"`
}

type CoverageSummaryResponse struct {
	Total                int     `json:"total"`
	Covered              int     `json:"covered"`
	Assessed             int     `json:"assessed"`
	Overused             int     `json:"overused"`
	Uncovered            int     `json:"uncovered"`
	CoveragePercentage   float64 `json:"coverage_percentage"`
	AssessmentPercentage float64 `json:"assessment_percentage"`
}

func ToCoverageSummaryResponse(s *domain.CoverageSummary) CoverageSummaryResponse {
	return CoverageSummaryResponse(*s)
}

type AuditMetricsResponse struct {
	TotalOutcomes      int     `json:"total_outcomes"`
	CoveredOutcomes    int     `json:"covered_outcomes"`
	UncoveredOutcomes  int     `json:"uncovered_outcomes"`
	CoveragePercentage float64 `json:"coverage_percentage"`
}

func ToAuditMetricsResponse(m *domain.AuditMetrics) AuditMetricsResponse {
	return AuditMetricsResponse(*m)
}
