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

type subjectRepo struct {
	pool *pgxpool.Pool
}

func NewSubjectRepository(pool *pgxpool.Pool) ports.SubjectRepository {
	return &subjectRepo{pool: pool}
}

func (r *subjectRepo) Create(ctx context.Context, subject *domain.Subject) error {
	query := `
		INSERT INTO subject (id, created_at, updated_at, teacher_id, name, grade)
		VALUES ($1,$2,$3,$4,$5,$6)
	`
	_, err := r.pool.Exec(ctx, query,
		subject.ID, subject.CreatedAt, subject.UpdatedAt,
		subject.TeacherID, subject.Name, subject.Grade,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSubjectNameConflict
		}
		return fmt.Errorf("create subject: %w", err)
	}
	return nil
}

func (r *subjectRepo) GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Subject, error) {
	query := `
		SELECT s.id, s.created_at, s.updated_at, s.teacher_id, s.name, s.grade,
			   (SELECT COUNT(*) FROM outcome o WHERE o.subject_id = s.id) AS outcome_count
		FROM subject s
		WHERE s.id = $1 AND s.teacher_id = $2
	`
	s := &domain.Subject{}
	err := r.pool.QueryRow(ctx, query, id, teacherID).Scan(
		&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.TeacherID, &s.Name, &s.Grade, &s.OutcomeCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("get subject by id: %w", err)
	}
	return s, nil
}

func (r *subjectRepo) Update(ctx context.Context, teacherID uuid.UUID, subject *domain.Subject) error {
	query := `
		UPDATE subject SET name=$1, grade=$2, updated_at=NOW()
		WHERE id=$3 AND teacher_id=$4
	`
	result, err := r.pool.Exec(ctx, query, subject.Name, subject.Grade, subject.ID, teacherID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSubjectNameConflict
		}
		return fmt.Errorf("update subject: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrSubjectNotFound
	}
	return nil
}

func (r *subjectRepo) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM subject WHERE id=$1 AND teacher_id=$2`, id, teacherID)
	if err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrSubjectNotFound
	}
	return nil
}

func (r *subjectRepo) List(ctx context.Context, filter ports.SubjectListFilter) ([]*domain.Subject, int, error) {
	conditions := []string{"s.teacher_id = $1"}
	args := []interface{}{filter.TeacherID}
	argPos := 2

	if filter.Grade != "" {
		conditions = append(conditions, fmt.Sprintf("s.grade = $%d", argPos))
		args = append(args, filter.Grade)
		argPos++
	}
	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM subject s WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count subjects: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT s.id, s.created_at, s.updated_at, s.teacher_id, s.name, s.grade,
			   (SELECT COUNT(*) FROM outcome o WHERE o.subject_id = s.id) AS outcome_count
		FROM subject s
		WHERE %s
		ORDER BY s.name ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*domain.Subject
	for rows.Next() {
		s := &domain.Subject{}
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.TeacherID, &s.Name, &s.Grade, &s.OutcomeCount); err != nil {
			return nil, 0, fmt.Errorf("scan subject row: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate subject rows: %w", err)
	}
	return subjects, total, nil
}

func (r *subjectRepo) CreateMilestone(ctx context.Context, milestone *domain.Milestone) error {
	query := `
		INSERT INTO milestone (id, created_at, subject_id, title, term)
		VALUES ($1,$2,$3,$4,$5)
	`
	_, err := r.pool.Exec(ctx, query,
		milestone.ID, milestone.CreatedAt, milestone.SubjectID, milestone.Title, milestone.Term,
	)
	if err != nil {
		return fmt.Errorf("create milestone: %w", err)
	}
	return nil
}

func (r *subjectRepo) ListMilestones(ctx context.Context, teacherID uuid.UUID, subjectID uuid.UUID) ([]*domain.Milestone, error) {
	query := `
		SELECT m.id, m.created_at, m.subject_id, m.title, m.term
		FROM milestone m
		JOIN subject s ON s.id = m.subject_id
		WHERE m.subject_id = $1 AND s.teacher_id = $2
		ORDER BY m.created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, subjectID, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	defer rows.Close()

	var milestones []*domain.Milestone
	for rows.Next() {
		m := &domain.Milestone{}
		if err := rows.Scan(&m.ID, &m.CreatedAt, &m.SubjectID, &m.Title, &m.Term); err != nil {
			return nil, fmt.Errorf("scan milestone row: %w", err)
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate milestone rows: %w", err)
	}
	return milestones, nil
}
