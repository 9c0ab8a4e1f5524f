package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
)

type reflectionRepo struct {
	pool *pgxpool.Pool
}

func NewReflectionRepository(pool *pgxpool.Pool) ports.ReflectionRepository {
	return &reflectionRepo{pool: pool}
}

func (r *reflectionRepo) Create(ctx context.Context, entry *domain.ReflectionEntry) error {
	query := `
		INSERT INTO reflection_entry (id, created_at, updated_at, teacher_id, entry_date, content)
		VALUES ($1,$2,$3,$4,$5,$6)
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.CreatedAt, entry.UpdatedAt, entry.TeacherID, entry.EntryDate, entry.Content,
	)
	if err != nil {
		return fmt.Errorf("create reflection: %w", err)
	}
	return nil
}

func (r *reflectionRepo) GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.ReflectionEntry, error) {
	query := `
		SELECT id, created_at, updated_at, teacher_id, entry_date, content
		FROM reflection_entry
		WHERE id = $1 AND teacher_id = $2
	`
	e := &domain.ReflectionEntry{}
	err := r.pool.QueryRow(ctx, query, id, teacherID).Scan(
		&e.ID, &e.CreatedAt, &e.UpdatedAt, &e.TeacherID, &e.EntryDate, &e.Content,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReflectionNotFound
		}
		return nil, fmt.Errorf("get reflection by id: %w", err)
	}
	return e, nil
}

func (r *reflectionRepo) Update(ctx context.Context, teacherID uuid.UUID, entry *domain.ReflectionEntry) error {
	query := `
		UPDATE reflection_entry SET content=$1, updated_at=NOW()
		WHERE id=$2 AND teacher_id=$3
	`
	result, err := r.pool.Exec(ctx, query, entry.Content, entry.ID, teacherID)
	if err != nil {
		return fmt.Errorf("update reflection: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrReflectionNotFound
	}
	return nil
}

func (r *reflectionRepo) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM reflection_entry WHERE id=$1 AND teacher_id=$2`, id, teacherID)
	if err != nil {
		return fmt.Errorf("delete reflection: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrReflectionNotFound
	}
	return nil
}

func (r *reflectionRepo) List(ctx context.Context, filter ports.ReflectionListFilter) ([]*domain.ReflectionEntry, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM reflection_entry WHERE teacher_id = $1`, filter.TeacherID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reflections: %w", err)
	}

	query := `
		SELECT id, created_at, updated_at, teacher_id, entry_date, content
		FROM reflection_entry
		WHERE teacher_id = $1
		ORDER BY entry_date DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, filter.TeacherID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list reflections: %w", err)
	}
	defer rows.Close()

	var entries []*domain.ReflectionEntry
	for rows.Next() {
		e := &domain.ReflectionEntry{}
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt, &e.TeacherID, &e.EntryDate, &e.Content); err != nil {
			return nil, 0, fmt.Errorf("scan reflection row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate reflection rows: %w", err)
	}
	return entries, total, nil
}
