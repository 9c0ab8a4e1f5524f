package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
)

type coverageRepo struct {
	pool *pgxpool.Pool
}

func NewCoverageRepository(pool *pgxpool.Pool) ports.CoverageRepository {
	return &coverageRepo{pool: pool}
}

// ListCoverage builds one audit row per outcome. The term selector narrows
// which activities and assessments count; the remaining facets narrow the
// outcome set itself.
func (r *coverageRepo) ListCoverage(ctx context.Context, teacherID uuid.UUID, filters domain.AuditFilters) ([]domain.OutcomeCoverageRecord, error) {
	conditions := []string{"o.teacher_id = $1"}
	args := []interface{}{teacherID}
	argPos := 2

	activityJoin := "LEFT JOIN activity a ON a.id = ao.activity_id"
	assessmentJoin := "LEFT JOIN assessment_result ar ON ar.id = aso.assessment_id"
	if filters.Term != "" {
		activityJoin += fmt.Sprintf(" AND a.term = $%d", argPos)
		args = append(args, filters.Term)
		argPos++
		assessmentJoin += fmt.Sprintf(" AND ar.term = $%d", argPos)
		args = append(args, filters.Term)
		argPos++
	}

	if filters.SubjectID != nil {
		conditions = append(conditions, fmt.Sprintf("o.subject_id = $%d", argPos))
		args = append(args, *filters.SubjectID)
		argPos++
	}
	if filters.Grade != "" {
		conditions = append(conditions, fmt.Sprintf("o.grade = $%d", argPos))
		args = append(args, filters.Grade)
		argPos++
	}
	if filters.Domain != "" {
		conditions = append(conditions, fmt.Sprintf("o.domain = $%d", argPos))
		args = append(args, filters.Domain)
		argPos++
	}

	query := fmt.Sprintf(`
		SELECT o.id, o.code, o.description, o.domain,
			   COUNT(DISTINCT a.id) AS covered_count,
			   COUNT(DISTINCT ar.id) > 0 AS assessed,
			   MAX(a.completed_at) AS last_used
		FROM outcome o
		LEFT JOIN activity_outcome ao ON ao.outcome_id = o.id
		%s
		LEFT JOIN assessment_outcome aso ON aso.outcome_id = o.id
		%s
		WHERE %s
		GROUP BY o.id, o.code, o.description, o.domain
		ORDER BY o.code
	`, activityJoin, assessmentJoin, strings.Join(conditions, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list coverage: %w", err)
	}
	defer rows.Close()

	records := []domain.OutcomeCoverageRecord{}
	for rows.Next() {
		var rec domain.OutcomeCoverageRecord
		if err := rows.Scan(&rec.OutcomeID, &rec.OutcomeCode, &rec.OutcomeDescription,
			&rec.Domain, &rec.CoveredCount, &rec.Assessed, &rec.LastUsed); err != nil {
			return nil, fmt.Errorf("scan coverage row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coverage rows: %w", err)
	}
	return records, nil
}

func (r *coverageRepo) ListMilestoneAttachments(ctx context.Context, teacherID uuid.UUID, subjectIDs []uuid.UUID) ([]domain.MilestoneOutcome, error) {
	conditions := []string{"o.teacher_id = $1"}
	args := []interface{}{teacherID}
	if len(subjectIDs) > 0 {
		conditions = append(conditions, "o.subject_id = ANY($2)")
		args = append(args, subjectIDs)
	}

	query := fmt.Sprintf(`
		SELECT o.subject_id, mo.milestone_id, mo.outcome_id
		FROM milestone_outcome mo
		JOIN outcome o ON o.id = mo.outcome_id
		WHERE %s
	`, strings.Join(conditions, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list milestone attachments: %w", err)
	}
	defer rows.Close()

	attachments := []domain.MilestoneOutcome{}
	for rows.Next() {
		var a domain.MilestoneOutcome
		if err := rows.Scan(&a.SubjectID, &a.MilestoneID, &a.OutcomeID); err != nil {
			return nil, fmt.Errorf("scan milestone attachment: %w", err)
		}
		attachments = append(attachments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate milestone attachments: %w", err)
	}
	return attachments, nil
}

func (r *coverageRepo) ListCoveredOutcomeIDs(ctx context.Context, teacherID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT ao.outcome_id
		FROM activity_outcome ao
		JOIN activity a ON a.id = ao.activity_id
		WHERE a.teacher_id = $1
	`
	rows, err := r.pool.Query(ctx, query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list covered outcome ids: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan covered outcome id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate covered outcome ids: %w", err)
	}
	return ids, nil
}
