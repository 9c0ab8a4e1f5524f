package ports

import (
	"context"

	"github.com/google/uuid"

	"classroom-planner-service/internal/core/domain"
)

type OutcomeListFilter struct {
	TeacherID uuid.UUID
	SubjectID uuid.UUID
	Grade     string
	Domain    string
	Search    string
	SortBy    string
	Order     string
	Limit     int
	Offset    int
}

type SubjectListFilter struct {
	TeacherID uuid.UUID
	Grade     string
	Limit     int
	Offset    int
}

type OutcomeRepository interface {
	Create(ctx context.Context, outcome *domain.Outcome) error
	GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Outcome, error)
	GetByCode(ctx context.Context, teacherID uuid.UUID, code string) (*domain.Outcome, error)
	Update(ctx context.Context, teacherID uuid.UUID, outcome *domain.Outcome) error
	Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, filter OutcomeListFilter) ([]*domain.Outcome, int, error)
}

type SubjectRepository interface {
	Create(ctx context.Context, subject *domain.Subject) error
	GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Subject, error)
	Update(ctx context.Context, teacherID uuid.UUID, subject *domain.Subject) error
	Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, filter SubjectListFilter) ([]*domain.Subject, int, error)
	CreateMilestone(ctx context.Context, milestone *domain.Milestone) error
	ListMilestones(ctx context.Context, teacherID uuid.UUID, subjectID uuid.UUID) ([]*domain.Milestone, error)
}
