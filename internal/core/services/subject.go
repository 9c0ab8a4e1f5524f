package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
)

type SubjectService struct {
	repo        ports.SubjectRepository
	outcomeRepo ports.OutcomeRepository
}

func NewSubjectService(repo ports.SubjectRepository, outcomeRepo ports.OutcomeRepository) *SubjectService {
	return &SubjectService{repo: repo, outcomeRepo: outcomeRepo}
}

func (s *SubjectService) Create(ctx context.Context, teacherID uuid.UUID, name, grade string) (*domain.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidSubjectName
	}

	now := time.Now()
	subject := &domain.Subject{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		TeacherID: teacherID,
		Name:      name,
		Grade:     grade,
	}
	if err := s.repo.Create(ctx, subject); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, teacherID, subject.ID)
}

func (s *SubjectService) Get(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Subject, error) {
	return s.repo.GetByID(ctx, teacherID, id)
}

func (s *SubjectService) List(ctx context.Context, filter ports.SubjectListFilter) ([]*domain.Subject, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.repo.List(ctx, filter)
}

func (s *SubjectService) Update(ctx context.Context, teacherID uuid.UUID, id uuid.UUID, updates map[string]interface{}) (*domain.Subject, error) {
	subject, err := s.repo.GetByID(ctx, teacherID, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["name"]; ok && v != nil {
		name := strings.TrimSpace(v.(string))
		if name == "" {
			return nil, domain.ErrInvalidSubjectName
		}
		subject.Name = name
	}
	if v, ok := updates["grade"]; ok && v != nil {
		subject.Grade = v.(string)
	}

	if err := s.repo.Update(ctx, teacherID, subject); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, teacherID, id)
}

// Delete refuses to remove a subject that still has outcomes attached;
// the audit would silently lose rows otherwise.
func (s *SubjectService) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, teacherID, id); err != nil {
		return err
	}
	_, total, err := s.outcomeRepo.List(ctx, ports.OutcomeListFilter{TeacherID: teacherID, SubjectID: id, Limit: 1})
	if err != nil {
		return err
	}
	if total > 0 {
		return domain.ErrSubjectHasOutcomes
	}
	return s.repo.Delete(ctx, teacherID, id)
}

func (s *SubjectService) AddMilestone(ctx context.Context, teacherID, subjectID uuid.UUID, title, term string) (*domain.Milestone, error) {
	if _, err := s.repo.GetByID(ctx, teacherID, subjectID); err != nil {
		return nil, err
	}
	milestone := &domain.Milestone{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		SubjectID: subjectID,
		Title:     strings.TrimSpace(title),
		Term:      term,
	}
	if err := s.repo.CreateMilestone(ctx, milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *SubjectService) ListMilestones(ctx context.Context, teacherID, subjectID uuid.UUID) ([]*domain.Milestone, error) {
	if _, err := s.repo.GetByID(ctx, teacherID, subjectID); err != nil {
		return nil, err
	}
	return s.repo.ListMilestones(ctx, teacherID, subjectID)
}
