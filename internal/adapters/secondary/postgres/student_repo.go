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

type studentRepo struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) ports.StudentRepository {
	return &studentRepo{pool: pool}
}

func (r *studentRepo) Create(ctx context.Context, student *domain.Student) error {
	query := `
		INSERT INTO student (id, created_at, updated_at, teacher_id, first_name, last_name, grade, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err := r.pool.Exec(ctx, query,
		student.ID, student.CreatedAt, student.UpdatedAt, student.TeacherID,
		student.FirstName, student.LastName, student.Grade, student.Notes,
	)
	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

func (r *studentRepo) GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Student, error) {
	query := `
		SELECT id, created_at, updated_at, teacher_id, first_name, last_name, grade, notes
		FROM student
		WHERE id = $1 AND teacher_id = $2
	`
	s := &domain.Student{}
	err := r.pool.QueryRow(ctx, query, id, teacherID).Scan(
		&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.TeacherID,
		&s.FirstName, &s.LastName, &s.Grade, &s.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("get student by id: %w", err)
	}
	return s, nil
}

func (r *studentRepo) Update(ctx context.Context, teacherID uuid.UUID, student *domain.Student) error {
	query := `
		UPDATE student SET first_name=$1, last_name=$2, grade=$3, notes=$4, updated_at=NOW()
		WHERE id=$5 AND teacher_id=$6
	`
	result, err := r.pool.Exec(ctx, query,
		student.FirstName, student.LastName, student.Grade, student.Notes,
		student.ID, teacherID,
	)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func (r *studentRepo) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM student WHERE id=$1 AND teacher_id=$2`, id, teacherID)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func (r *studentRepo) List(ctx context.Context, filter ports.StudentListFilter) ([]*domain.Student, int, error) {
	conditions := []string{"teacher_id = $1"}
	args := []interface{}{filter.TeacherID}
	argPos := 2

	if filter.Grade != "" {
		conditions = append(conditions, fmt.Sprintf("grade = $%d", argPos))
		args = append(args, filter.Grade)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM student WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, updated_at, teacher_id, first_name, last_name, grade, notes
		FROM student
		WHERE %s
		ORDER BY last_name ASC, first_name ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var students []*domain.Student
	for rows.Next() {
		s := &domain.Student{}
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.TeacherID,
			&s.FirstName, &s.LastName, &s.Grade, &s.Notes); err != nil {
			return nil, 0, fmt.Errorf("scan student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate student rows: %w", err)
	}
	return students, total, nil
}
