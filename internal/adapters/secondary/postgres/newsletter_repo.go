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

type newsletterRepo struct {
	pool *pgxpool.Pool
}

func NewNewsletterRepository(pool *pgxpool.Pool) ports.NewsletterRepository {
	return &newsletterRepo{pool: pool}
}

func (r *newsletterRepo) Create(ctx context.Context, newsletter *domain.Newsletter) error {
	query := `
		INSERT INTO newsletter (id, created_at, updated_at, teacher_id, title, term, content, status, generated)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	_, err := r.pool.Exec(ctx, query,
		newsletter.ID, newsletter.CreatedAt, newsletter.UpdatedAt, newsletter.TeacherID,
		newsletter.Title, newsletter.Term, newsletter.Content, string(newsletter.Status), newsletter.Generated,
	)
	if err != nil {
		return fmt.Errorf("create newsletter: %w", err)
	}
	return nil
}

func (r *newsletterRepo) GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Newsletter, error) {
	query := `
		SELECT id, created_at, updated_at, teacher_id, title, term, content, status, generated
		FROM newsletter
		WHERE id = $1 AND teacher_id = $2
	`
	n := &domain.Newsletter{}
	err := r.pool.QueryRow(ctx, query, id, teacherID).Scan(
		&n.ID, &n.CreatedAt, &n.UpdatedAt, &n.TeacherID,
		&n.Title, &n.Term, &n.Content, &n.Status, &n.Generated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNewsletterNotFound
		}
		return nil, fmt.Errorf("get newsletter by id: %w", err)
	}
	return n, nil
}

func (r *newsletterRepo) Update(ctx context.Context, teacherID uuid.UUID, newsletter *domain.Newsletter) error {
	query := `
		UPDATE newsletter SET title=$1, term=$2, content=$3, status=$4, updated_at=NOW()
		WHERE id=$5 AND teacher_id=$6
	`
	result, err := r.pool.Exec(ctx, query,
		newsletter.Title, newsletter.Term, newsletter.Content, string(newsletter.Status),
		newsletter.ID, teacherID,
	)
	if err != nil {
		return fmt.Errorf("update newsletter: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNewsletterNotFound
	}
	return nil
}

func (r *newsletterRepo) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM newsletter WHERE id=$1 AND teacher_id=$2`, id, teacherID)
	if err != nil {
		return fmt.Errorf("delete newsletter: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNewsletterNotFound
	}
	return nil
}

func (r *newsletterRepo) List(ctx context.Context, filter ports.NewsletterListFilter) ([]*domain.Newsletter, int, error) {
	conditions := []string{"teacher_id = $1"}
	args := []interface{}{filter.TeacherID}
	argPos := 2

	if filter.Term != "" {
		conditions = append(conditions, fmt.Sprintf("term = $%d", argPos))
		args = append(args, filter.Term)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM newsletter WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count newsletters: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, updated_at, teacher_id, title, term, content, status, generated
		FROM newsletter
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list newsletters: %w", err)
	}
	defer rows.Close()

	var newsletters []*domain.Newsletter
	for rows.Next() {
		n := &domain.Newsletter{}
		if err := rows.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt, &n.TeacherID,
			&n.Title, &n.Term, &n.Content, &n.Status, &n.Generated); err != nil {
			return nil, 0, fmt.Errorf("scan newsletter row: %w", err)
		}
		newsletters = append(newsletters, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate newsletter rows: %w", err)
	}
	return newsletters, total, nil
}
