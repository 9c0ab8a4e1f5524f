package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
)

type StudentService struct {
	repo ports.StudentRepository
}

func NewStudentService(repo ports.StudentRepository) *StudentService {
	return &StudentService{repo: repo}
}

func (s *StudentService) Create(ctx context.Context, teacherID uuid.UUID, firstName, lastName, grade, notes string) (*domain.Student, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, domain.ErrInvalidStudentName
	}

	now := time.Now()
	student := &domain.Student{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		TeacherID: teacherID,
		FirstName: firstName,
		LastName:  lastName,
		Grade:     grade,
		Notes:     notes,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, teacherID, student.ID)
}

func (s *StudentService) Get(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Student, error) {
	return s.repo.GetByID(ctx, teacherID, id)
}

func (s *StudentService) List(ctx context.Context, filter ports.StudentListFilter) ([]*domain.Student, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.repo.List(ctx, filter)
}

func (s *StudentService) Update(ctx context.Context, teacherID uuid.UUID, id uuid.UUID, updates map[string]interface{}) (*domain.Student, error) {
	student, err := s.repo.GetByID(ctx, teacherID, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["first_name"]; ok && v != nil {
		student.FirstName = strings.TrimSpace(v.(string))
	}
	if v, ok := updates["last_name"]; ok && v != nil {
		student.LastName = strings.TrimSpace(v.(string))
	}
	if student.FirstName == "" || student.LastName == "" {
		return nil, domain.ErrInvalidStudentName
	}
	if v, ok := updates["grade"]; ok && v != nil {
		student.Grade = v.(string)
	}
	if v, ok := updates["notes"]; ok && v != nil {
		student.Notes = v.(string)
	}

	if err := s.repo.Update(ctx, teacherID, student); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, teacherID, id)
}

func (s *StudentService) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, teacherID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, teacherID, id)
}
