package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
)

const outcomeSelect = `
	SELECT o.id, o.created_at, o.updated_at, o.teacher_id, o.subject_id,
		   o.code, o.description, o.domain, o.grade,
		   COALESCE(array_agg(mo.milestone_id) FILTER (WHERE mo.milestone_id IS NOT NULL), '{}') AS milestone_ids
	FROM outcome o
	LEFT JOIN milestone_outcome mo ON mo.outcome_id = o.id
`

// Sortable columns are whitelisted; sort_by comes from a query param and
// must never be interpolated into the query text unchecked.
var outcomeSortColumns = map[string]string{
	"code":       "o.code",
	"grade":      "o.grade",
	"domain":     "o.domain",
	"created_at": "o.created_at",
	"updated_at": "o.updated_at",
}

func outcomeOrderBy(sortBy, order string) string {
	col, ok := outcomeSortColumns[sortBy]
	if !ok {
		return "o.code ASC"
	}
	dir := "ASC"
	if order == "desc" {
		dir = "DESC"
	}
	return col + " " + dir
}

type outcomeRepo struct {
	pool *pgxpool.Pool
}

func NewOutcomeRepository(pool *pgxpool.Pool) ports.OutcomeRepository {
	return &outcomeRepo{pool: pool}
}

func (r *outcomeRepo) Create(ctx context.Context, outcome *domain.Outcome) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create outcome: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO outcome
			(id, created_at, updated_at, teacher_id, subject_id, code, description, domain, grade)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	_, err = tx.Exec(ctx, query,
		outcome.ID, outcome.CreatedAt, outcome.UpdatedAt, outcome.TeacherID,
		outcome.SubjectID, outcome.Code, outcome.Description, outcome.Domain, outcome.Grade,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrOutcomeCodeConflict
		}
		return fmt.Errorf("create outcome: %w", err)
	}

	for _, milestoneID := range outcome.MilestoneIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO milestone_outcome (milestone_id, outcome_id) VALUES ($1, $2)`,
			milestoneID, outcome.ID,
		)
		if err != nil {
			return fmt.Errorf("attach outcome to milestone: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create outcome: %w", err)
	}
	return nil
}

func (r *outcomeRepo) GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Outcome, error) {
	query := outcomeSelect + `
		WHERE o.id = $1 AND o.teacher_id = $2
		GROUP BY o.id
	`
	o, err := scanOutcome(r.pool.QueryRow(ctx, query, id, teacherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOutcomeNotFound
		}
		return nil, fmt.Errorf("get outcome by id: %w", err)
	}
	return o, nil
}

func (r *outcomeRepo) GetByCode(ctx context.Context, teacherID uuid.UUID, code string) (*domain.Outcome, error) {
	query := outcomeSelect + `
		WHERE o.code = $1 AND o.teacher_id = $2
		GROUP BY o.id
	`
	o, err := scanOutcome(r.pool.QueryRow(ctx, query, code, teacherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOutcomeNotFound
		}
		return nil, fmt.Errorf("get outcome by code: %w", err)
	}
	return o, nil
}

func (r *outcomeRepo) Update(ctx context.Context, teacherID uuid.UUID, outcome *domain.Outcome) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update outcome: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE outcome
		SET code=$1, description=$2, domain=$3, grade=$4, updated_at=NOW()
		WHERE id=$5 AND teacher_id=$6
	`
	result, err := tx.Exec(ctx, query,
		outcome.Code, outcome.Description, outcome.Domain, outcome.Grade,
		outcome.ID, teacherID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrOutcomeCodeConflict
		}
		return fmt.Errorf("update outcome: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrOutcomeNotFound
	}

	// Milestone attachments are replaced wholesale.
	if _, err := tx.Exec(ctx, `DELETE FROM milestone_outcome WHERE outcome_id = $1`, outcome.ID); err != nil {
		return fmt.Errorf("clear outcome milestones: %w", err)
	}
	for _, milestoneID := range outcome.MilestoneIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO milestone_outcome (milestone_id, outcome_id) VALUES ($1, $2)`,
			milestoneID, outcome.ID,
		)
		if err != nil {
			return fmt.Errorf("attach outcome to milestone: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update outcome: %w", err)
	}
	return nil
}

func (r *outcomeRepo) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM outcome WHERE id=$1 AND teacher_id=$2`, id, teacherID)
	if err != nil {
		return fmt.Errorf("delete outcome: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrOutcomeNotFound
	}
	return nil
}

func (r *outcomeRepo) List(ctx context.Context, filter ports.OutcomeListFilter) ([]*domain.Outcome, int, error) {
	conditions := []string{"o.teacher_id = $1"}
	args := []interface{}{filter.TeacherID}
	argPos := 2

	if filter.SubjectID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("o.subject_id = $%d", argPos))
		args = append(args, filter.SubjectID)
		argPos++
	}
	if filter.Grade != "" {
		conditions = append(conditions, fmt.Sprintf("o.grade = $%d", argPos))
		args = append(args, filter.Grade)
		argPos++
	}
	if filter.Domain != "" {
		conditions = append(conditions, fmt.Sprintf("o.domain = $%d", argPos))
		args = append(args, filter.Domain)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(o.code ILIKE $%d OR o.description ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM outcome o WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count outcomes: %w", err)
	}

	orderBy := outcomeOrderBy(filter.SortBy, filter.Order)

	query := fmt.Sprintf(`%s
		WHERE %s
		GROUP BY o.id
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, outcomeSelect, whereClause, orderBy, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []*domain.Outcome
	for rows.Next() {
		o, err := scanOutcome(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan outcome row: %w", err)
		}
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate outcome rows: %w", err)
	}
	return outcomes, total, nil
}

func scanOutcome(row pgx.Row) (*domain.Outcome, error) {
	o := &domain.Outcome{}
	err := row.Scan(
		&o.ID, &o.CreatedAt, &o.UpdatedAt, &o.TeacherID, &o.SubjectID,
		&o.Code, &o.Description, &o.Domain, &o.Grade, &o.MilestoneIDs,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}
