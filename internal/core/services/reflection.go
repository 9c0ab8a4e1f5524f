package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
)

type ReflectionService struct {
	repo ports.ReflectionRepository
}

func NewReflectionService(repo ports.ReflectionRepository) *ReflectionService {
	return &ReflectionService{repo: repo}
}

func (s *ReflectionService) Create(ctx context.Context, teacherID uuid.UUID, entryDate time.Time, content string) (*domain.ReflectionEntry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrInvalidReflectionBody
	}
	if entryDate.IsZero() {
		entryDate = time.Now()
	}

	now := time.Now()
	entry := &domain.ReflectionEntry{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		TeacherID: teacherID,
		EntryDate: entryDate,
		Content:   content,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ReflectionService) Get(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.ReflectionEntry, error) {
	return s.repo.GetByID(ctx, teacherID, id)
}

func (s *ReflectionService) List(ctx context.Context, filter ports.ReflectionListFilter) ([]*domain.ReflectionEntry, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return s.repo.List(ctx, filter)
}

func (s *ReflectionService) Update(ctx context.Context, teacherID uuid.UUID, id uuid.UUID, content string) (*domain.ReflectionEntry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrInvalidReflectionBody
	}
	entry, err := s.repo.GetByID(ctx, teacherID, id)
	if err != nil {
		return nil, err
	}
	entry.Content = content
	if err := s.repo.Update(ctx, teacherID, entry); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, teacherID, id)
}

func (s *ReflectionService) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, teacherID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, teacherID, id)
}
