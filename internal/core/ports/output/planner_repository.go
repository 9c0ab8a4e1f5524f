package ports

import (
	"context"

	"github.com/google/uuid"

	"classroom-planner-service/internal/core/domain"
)

type ActivityListFilter struct {
	TeacherID uuid.UUID
	SubjectID uuid.UUID
	Term      string
	Search    string
	Limit     int
	Offset    int
}

type AssessmentListFilter struct {
	TeacherID uuid.UUID
	StudentID uuid.UUID
	Term      string
	Limit     int
	Offset    int
}

type StudentListFilter struct {
	TeacherID uuid.UUID
	Grade     string
	Search    string
	Limit     int
	Offset    int
}

type ReflectionListFilter struct {
	TeacherID uuid.UUID
	Limit     int
	Offset    int
}

type NewsletterListFilter struct {
	TeacherID uuid.UUID
	Term      string
	Status    string
	Limit     int
	Offset    int
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Activity, error)
	Update(ctx context.Context, teacherID uuid.UUID, activity *domain.Activity) error
	Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, filter ActivityListFilter) ([]*domain.Activity, int, error)
}

type AssessmentRepository interface {
	Create(ctx context.Context, result *domain.AssessmentResult) error
	GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.AssessmentResult, error)
	Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, filter AssessmentListFilter) ([]*domain.AssessmentResult, int, error)
}

type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Student, error)
	Update(ctx context.Context, teacherID uuid.UUID, student *domain.Student) error
	Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, filter StudentListFilter) ([]*domain.Student, int, error)
}

type ReflectionRepository interface {
	Create(ctx context.Context, entry *domain.ReflectionEntry) error
	GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.ReflectionEntry, error)
	Update(ctx context.Context, teacherID uuid.UUID, entry *domain.ReflectionEntry) error
	Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, filter ReflectionListFilter) ([]*domain.ReflectionEntry, int, error)
}

type NewsletterRepository interface {
	Create(ctx context.Context, newsletter *domain.Newsletter) error
	GetByID(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Newsletter, error)
	Update(ctx context.Context, teacherID uuid.UUID, newsletter *domain.Newsletter) error
	Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, filter NewsletterListFilter) ([]*domain.Newsletter, int, error)
}
