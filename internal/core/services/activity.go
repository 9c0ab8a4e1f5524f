package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
)

type ActivityService struct {
	repo        ports.ActivityRepository
	subjectRepo ports.SubjectRepository
}

func NewActivityService(repo ports.ActivityRepository, subjectRepo ports.SubjectRepository) *ActivityService {
	return &ActivityService{repo: repo, subjectRepo: subjectRepo}
}

func (s *ActivityService) Create(ctx context.Context, teacherID, subjectID uuid.UUID, title, description, term string, outcomeIDs []uuid.UUID) (*domain.Activity, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrInvalidActivityTitle
	}
	if subjectID == uuid.Nil {
		return nil, domain.ErrInvalidSubjectID
	}
	if _, err := s.subjectRepo.GetByID(ctx, teacherID, subjectID); err != nil {
		return nil, err
	}

	now := time.Now()
	activity := &domain.Activity{
		ID:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		TeacherID:   teacherID,
		SubjectID:   subjectID,
		Title:       title,
		Description: description,
		Term:        term,
		OutcomeIDs:  outcomeIDs,
	}
	if activity.OutcomeIDs == nil {
		activity.OutcomeIDs = []uuid.UUID{}
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, teacherID, activity.ID)
}

func (s *ActivityService) Get(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Activity, error) {
	return s.repo.GetByID(ctx, teacherID, id)
}

func (s *ActivityService) List(ctx context.Context, filter ports.ActivityListFilter) ([]*domain.Activity, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

func (s *ActivityService) Update(ctx context.Context, teacherID uuid.UUID, id uuid.UUID, updates map[string]interface{}) (*domain.Activity, error) {
	activity, err := s.repo.GetByID(ctx, teacherID, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["title"]; ok && v != nil {
		title := strings.TrimSpace(v.(string))
		if title == "" {
			return nil, domain.ErrInvalidActivityTitle
		}
		activity.Title = title
	}
	if v, ok := updates["description"]; ok && v != nil {
		activity.Description = v.(string)
	}
	if v, ok := updates["term"]; ok && v != nil {
		activity.Term = v.(string)
	}
	if v, ok := updates["completed_at"]; ok {
		if v == nil {
			activity.CompletedAt = nil
		} else {
			t := v.(time.Time)
			activity.CompletedAt = &t
		}
	}
	if v, ok := updates["outcome_ids"]; ok && v != nil {
		activity.OutcomeIDs = v.([]uuid.UUID)
	}

	if err := s.repo.Update(ctx, teacherID, activity); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, teacherID, id)
}

func (s *ActivityService) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, teacherID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, teacherID, id)
}
