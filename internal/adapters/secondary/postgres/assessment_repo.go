package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
)

const assessmentSelect = `
	SELECT ar.id, ar.created_at, ar.teacher_id, ar.student_id,
		   ar.title, ar.term, ar.assessed_at, ar.notes,
		   COALESCE(array_agg(aso.outcome_id) FILTER (WHERE aso.outcome_id IS NOT NULL), '{}') AS outcome_ids
	FROM assessment_result ar
	LEFT JOIN assessment_outcome aso ON aso.assessment_id = ar.id
`

type assessmentRepo struct {
	pool *pgxpool.Pool
}

func NewAssessmentRepository(pool *pgxpool.Pool) ports.AssessmentRepository {
	return &assessmentRepo{pool: pool}
}

func (r *assessmentRepo) Create(ctx context.Context, result *domain.AssessmentResult) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create assessment: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO assessment_result
			(id, created_at, teacher_id, student_id, title, term, assessed_at, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err = tx.Exec(ctx, query,
		result.ID, result.CreatedAt, result.TeacherID, result.StudentID,
		result.Title, result.Term, result.AssessedAt, result.Notes,
	)
	if err != nil {
		return fmt.Errorf("create assessment: %w", err)
	}

	for _, outcomeID := range result.OutcomeIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO assessment_outcome (assessment_id, outcome_id) VALUES ($1, $2)`,
			result.ID, outcomeID,
		)
		if err != nil {
			return fmt.Errorf("attach assessment to outcome: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepo) GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.AssessmentResult, error) {
	query := assessmentSelect + `
		WHERE ar.id = $1 AND ar.teacher_id = $2
		GROUP BY ar.id
	`
	a, err := scanAssessment(r.pool.QueryRow(ctx, query, id, teacherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("get assessment by id: %w", err)
	}
	return a, nil
}

func (r *assessmentRepo) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM assessment_result WHERE id=$1 AND teacher_id=$2`, id, teacherID)
	if err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAssessmentNotFound
	}
	return nil
}

func (r *assessmentRepo) List(ctx context.Context, filter ports.AssessmentListFilter) ([]*domain.AssessmentResult, int, error) {
	conditions := []string{"ar.teacher_id = $1"}
	args := []interface{}{filter.TeacherID}
	argPos := 2

	if filter.StudentID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("ar.student_id = $%d", argPos))
		args = append(args, filter.StudentID)
		argPos++
	}
	if filter.Term != "" {
		conditions = append(conditions, fmt.Sprintf("ar.term = $%d", argPos))
		args = append(args, filter.Term)
		argPos++
	}
	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM assessment_result ar WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count assessments: %w", err)
	}

	query := fmt.Sprintf(`%s
		WHERE %s
		GROUP BY ar.id
		ORDER BY ar.assessed_at DESC
		LIMIT $%d OFFSET $%d
	`, assessmentSelect, whereClause, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var results []*domain.AssessmentResult
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan assessment row: %w", err)
		}
		results = append(results, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate assessment rows: %w", err)
	}
	return results, total, nil
}

func scanAssessment(row pgx.Row) (*domain.AssessmentResult, error) {
	a := &domain.AssessmentResult{}
	err := row.Scan(
		&a.ID, &a.CreatedAt, &a.TeacherID, &a.StudentID,
		&a.Title, &a.Term, &a.AssessedAt, &a.Notes, &a.OutcomeIDs,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
