package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
)

type AssessmentService struct {
	repo        ports.AssessmentRepository
	studentRepo ports.StudentRepository
}

func NewAssessmentService(repo ports.AssessmentRepository, studentRepo ports.StudentRepository) *AssessmentService {
	return &AssessmentService{repo: repo, studentRepo: studentRepo}
}

func (s *AssessmentService) Create(ctx context.Context, teacherID uuid.UUID, studentID *uuid.UUID, title, term, notes string, assessedAt time.Time, outcomeIDs []uuid.UUID) (*domain.AssessmentResult, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrInvalidAssessmentTitle
	}
	if studentID != nil {
		if _, err := s.studentRepo.GetByID(ctx, teacherID, *studentID); err != nil {
			return nil, err
		}
	}
	if assessedAt.IsZero() {
		assessedAt = time.Now()
	}

	result := &domain.AssessmentResult{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		TeacherID:  teacherID,
		StudentID:  studentID,
		Title:      title,
		Term:       term,
		AssessedAt: assessedAt,
		Notes:      notes,
		OutcomeIDs: outcomeIDs,
	}
	if result.OutcomeIDs == nil {
		result.OutcomeIDs = []uuid.UUID{}
	}

	if err := s.repo.Create(ctx, result); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, teacherID, result.ID)
}

func (s *AssessmentService) Get(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.AssessmentResult, error) {
	return s.repo.GetByID(ctx, teacherID, id)
}

func (s *AssessmentService) List(ctx context.Context, filter ports.AssessmentListFilter) ([]*domain.AssessmentResult, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

func (s *AssessmentService) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, teacherID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, teacherID, id)
}
