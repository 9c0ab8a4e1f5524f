package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
)

type OutcomeService struct {
	repo        ports.OutcomeRepository
	subjectRepo ports.SubjectRepository
}

func NewOutcomeService(repo ports.OutcomeRepository, subjectRepo ports.SubjectRepository) *OutcomeService {
	return &OutcomeService{repo: repo, subjectRepo: subjectRepo}
}

func (s *OutcomeService) Create(ctx context.Context, teacherID, subjectID uuid.UUID, code, description, grade string, outcomeDomain *string, milestoneIDs []uuid.UUID) (*domain.Outcome, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if code == "" {
		return nil, domain.ErrInvalidOutcomeCode
	}
	if subjectID == uuid.Nil {
		return nil, domain.ErrInvalidSubjectID
	}

	// Subject must exist and belong to the teacher.
	if _, err := s.subjectRepo.GetByID(ctx, teacherID, subjectID); err != nil {
		return nil, err
	}

	now := time.Now()
	outcome := &domain.Outcome{
		ID:           uuid.New(),
		CreatedAt:    now,
		UpdatedAt:    now,
		TeacherID:    teacherID,
		SubjectID:    subjectID,
		Code:         code,
		Description:  description,
		Domain:       outcomeDomain,
		Grade:        grade,
		MilestoneIDs: milestoneIDs,
	}
	if outcome.MilestoneIDs == nil {
		outcome.MilestoneIDs = []uuid.UUID{}
	}

	if err := s.repo.Create(ctx, outcome); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, teacherID, outcome.ID)
}

func (s *OutcomeService) Get(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Outcome, error) {
	return s.repo.GetByID(ctx, teacherID, id)
}

func (s *OutcomeService) GetByCode(ctx context.Context, teacherID uuid.UUID, code string) (*domain.Outcome, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domain.ErrInvalidOutcomeCode
	}
	return s.repo.GetByCode(ctx, teacherID, strings.ToUpper(strings.TrimSpace(code)))
}

func (s *OutcomeService) List(ctx context.Context, filter ports.OutcomeListFilter) ([]*domain.Outcome, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 200 {
		filter.Limit = 200
	}
	return s.repo.List(ctx, filter)
}

func (s *OutcomeService) Update(ctx context.Context, teacherID uuid.UUID, id uuid.UUID, updates map[string]interface{}) (*domain.Outcome, error) {
	outcome, err := s.repo.GetByID(ctx, teacherID, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["code"]; ok && v != nil {
		code := strings.TrimSpace(strings.ToUpper(v.(string)))
		if code == "" {
			return nil, domain.ErrInvalidOutcomeCode
		}
		outcome.Code = code
	}
	if v, ok := updates["description"]; ok && v != nil {
		outcome.Description = v.(string)
	}
	if v, ok := updates["domain"]; ok {
		if v == nil {
			outcome.Domain = nil
		} else {
			d := v.(string)
			outcome.Domain = &d
		}
	}
	if v, ok := updates["grade"]; ok && v != nil {
		outcome.Grade = v.(string)
	}
	if v, ok := updates["milestone_ids"]; ok && v != nil {
		outcome.MilestoneIDs = v.([]uuid.UUID)
	}

	if err := s.repo.Update(ctx, teacherID, outcome); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, teacherID, id)
}

func (s *OutcomeService) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, teacherID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, teacherID, id)
}
