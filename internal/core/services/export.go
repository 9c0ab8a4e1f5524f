package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"classroom-planner-service/internal/core/domain"
)

type ExportFormat string

const (
	FormatCSV      ExportFormat = "csv"
	FormatMarkdown ExportFormat = "markdown"
	FormatJSON     ExportFormat = "json"
)

func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(s)) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", domain.ErrInvalidExportFormat
	}
}

type ExportResult struct {
	Filename    string
	ContentType string
	Body        string
}

// ExportService renders the filtered audit view as a downloadable text blob.
// One renderer per format, selected at a single dispatch point.
type ExportService struct {
	audit *AuditService
}

func NewExportService(audit *AuditService) *ExportService {
	return &ExportService{audit: audit}
}

func (s *ExportService) Export(ctx context.Context, teacherID uuid.UUID, filters domain.AuditFilters, format ExportFormat) (*ExportResult, error) {
	records, err := s.audit.Coverage(ctx, teacherID, filters)
	if err != nil {
		return nil, err
	}
	summary, err := s.audit.Summary(ctx, teacherID, filters)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatCSV:
		body, err := s.renderCSV(records)
		if err != nil {
			return nil, err
		}
		return &ExportResult{Filename: "curriculum-audit.csv", ContentType: "text/csv", Body: body}, nil
	case FormatMarkdown:
		return &ExportResult{
			Filename:    "curriculum-audit.md",
			ContentType: "text/markdown",
			Body:        s.renderMarkdown(records, summary),
		}, nil
	case FormatJSON:
		body, err := s.renderJSON(records, summary, filters)
		if err != nil {
			return nil, err
		}
		return &ExportResult{Filename: "curriculum-audit.json", ContentType: "application/json", Body: body}, nil
	default:
		return nil, domain.ErrInvalidExportFormat
	}
}

// renderCSV writes one row per outcome. encoding/csv handles quoting, so
// descriptions containing commas or quotes survive a round trip.
func (s *ExportService) renderCSV(records []domain.OutcomeCoverageRecord) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{"Outcome Code", "Description", "Domain", "Covered Count", "Assessed", "Last Used", "Status"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.OutcomeCode,
			stripHTML(r.OutcomeDescription),
			derefOrEmpty(r.Domain),
			fmt.Sprintf("%d", r.CoveredCount),
			fmt.Sprintf("%t", r.Assessed),
			formatDate(r.LastUsed),
			string(s.audit.Classify(r)),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return sb.String(), nil
}

func (s *ExportService) renderMarkdown(records []domain.OutcomeCoverageRecord, summary *domain.CoverageSummary) string {
	var sb strings.Builder
	sb.WriteString("# Curriculum Coverage Audit\n\n")

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- Total outcomes: %d\n", summary.Total))
	sb.WriteString(fmt.Sprintf("- Covered: %d (%.0f%%)\n", summary.Covered, summary.CoveragePercentage))
	sb.WriteString(fmt.Sprintf("- Assessed: %d (%.0f%%)\n", summary.Assessed, summary.AssessmentPercentage))
	sb.WriteString(fmt.Sprintf("- Overused and unassessed: %d\n", summary.Overused))
	sb.WriteString(fmt.Sprintf("- Uncovered: %d\n", summary.Uncovered))

	sb.WriteString("\n## Outcomes\n\n")
	for _, r := range records {
		desc := strings.ReplaceAll(stripHTML(r.OutcomeDescription), "\n", " ")
		sb.WriteString(fmt.Sprintf("- **%s** %s — covered %d, assessed %t [%s]\n",
			r.OutcomeCode, desc, r.CoveredCount, r.Assessed, s.audit.Classify(r)))
	}
	return sb.String()
}

type exportPayload struct {
	GeneratedAt string                  `json:"generated_at"`
	Filters     domain.AuditFilters     `json:"filters"`
	Summary     *domain.CoverageSummary `json:"summary"`
	Records     []exportRecord          `json:"records"`
}

type exportRecord struct {
	domain.OutcomeCoverageRecord
	Status domain.CoverageStatus `json:"status"`
}

func (s *ExportService) renderJSON(records []domain.OutcomeCoverageRecord, summary *domain.CoverageSummary, filters domain.AuditFilters) (string, error) {
	payload := exportPayload{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Filters:     filters,
		Summary:     summary,
		Records:     make([]exportRecord, 0, len(records)),
	}
	for _, r := range records {
		payload.Records = append(payload.Records, exportRecord{OutcomeCoverageRecord: r, Status: s.audit.Classify(r)})
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export payload: %w", err)
	}
	return string(out), nil
}

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

// stripHTML applies the fixed <br>/<p> replacements and drops any other tag.
// Not a general HTML parser; outcome descriptions only carry simple markup.
func stripHTML(s string) string {
	replacer := strings.NewReplacer(
		"<br>", "\n", "<br/>", "\n", "<br />", "\n",
		"<p>", "", "</p>", "\n",
	)
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(replacer.Replace(s), ""))
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
