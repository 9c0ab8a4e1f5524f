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

const activitySelect = `
	SELECT a.id, a.created_at, a.updated_at, a.teacher_id, a.subject_id,
		   a.title, a.description, a.term, a.completed_at,
		   COALESCE(array_agg(ao.outcome_id) FILTER (WHERE ao.outcome_id IS NOT NULL), '{}') AS outcome_ids
	FROM activity a
	LEFT JOIN activity_outcome ao ON ao.activity_id = a.id
`

type activityRepo struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) ports.ActivityRepository {
	return &activityRepo{pool: pool}
}

func (r *activityRepo) Create(ctx context.Context, activity *domain.Activity) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create activity: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO activity
			(id, created_at, updated_at, teacher_id, subject_id, title, description, term, completed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	_, err = tx.Exec(ctx, query,
		activity.ID, activity.CreatedAt, activity.UpdatedAt, activity.TeacherID,
		activity.SubjectID, activity.Title, activity.Description, activity.Term, activity.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("create activity: %w", err)
	}

	for _, outcomeID := range activity.OutcomeIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO activity_outcome (activity_id, outcome_id) VALUES ($1, $2)`,
			activity.ID, outcomeID,
		)
		if err != nil {
			return fmt.Errorf("attach activity to outcome: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create activity: %w", err)
	}
	return nil
}

func (r *activityRepo) GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Activity, error) {
	query := activitySelect + `
		WHERE a.id = $1 AND a.teacher_id = $2
		GROUP BY a.id
	`
	a, err := scanActivity(r.pool.QueryRow(ctx, query, id, teacherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("get activity by id: %w", err)
	}
	return a, nil
}

func (r *activityRepo) Update(ctx context.Context, teacherID uuid.UUID, activity *domain.Activity) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update activity: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE activity
		SET title=$1, description=$2, term=$3, completed_at=$4, updated_at=NOW()
		WHERE id=$5 AND teacher_id=$6
	`
	result, err := tx.Exec(ctx, query,
		activity.Title, activity.Description, activity.Term, activity.CompletedAt,
		activity.ID, teacherID,
	)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrActivityNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM activity_outcome WHERE activity_id = $1`, activity.ID); err != nil {
		return fmt.Errorf("clear activity outcomes: %w", err)
	}
	for _, outcomeID := range activity.OutcomeIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO activity_outcome (activity_id, outcome_id) VALUES ($1, $2)`,
			activity.ID, outcomeID,
		)
		if err != nil {
			return fmt.Errorf("attach activity to outcome: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update activity: %w", err)
	}
	return nil
}

func (r *activityRepo) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM activity WHERE id=$1 AND teacher_id=$2`, id, teacherID)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *activityRepo) List(ctx context.Context, filter ports.ActivityListFilter) ([]*domain.Activity, int, error) {
	conditions := []string{"a.teacher_id = $1"}
	args := []interface{}{filter.TeacherID}
	argPos := 2

	if filter.SubjectID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("a.subject_id = $%d", argPos))
		args = append(args, filter.SubjectID)
		argPos++
	}
	if filter.Term != "" {
		conditions = append(conditions, fmt.Sprintf("a.term = $%d", argPos))
		args = append(args, filter.Term)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(a.title ILIKE $%d OR a.description ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM activity a WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count activities: %w", err)
	}

	query := fmt.Sprintf(`%s
		WHERE %s
		GROUP BY a.id
		ORDER BY a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, activitySelect, whereClause, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan activity row: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate activity rows: %w", err)
	}
	return activities, total, nil
}

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	a := &domain.Activity{}
	err := row.Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.TeacherID, &a.SubjectID,
		&a.Title, &a.Description, &a.Term, &a.CompletedAt, &a.OutcomeIDs,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
