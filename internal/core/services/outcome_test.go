package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
	"classroom-planner-service/internal/testutil"
)

func TestOutcomeService_Create(t *testing.T) {
	repo := new(testutil.MockOutcomeRepo)
	subjectRepo := new(testutil.MockSubjectRepo)
	svc := NewOutcomeService(repo, subjectRepo)

	teacherID := uuid.New()
	subjectID := uuid.New()
	outcomeID := uuid.New()

	returned := &domain.Outcome{
		ID:           outcomeID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		TeacherID:    teacherID,
		SubjectID:    subjectID,
		Code:         "FR.1.2",
		Description:  "Reads aloud with fluency",
		Grade:        "1",
		MilestoneIDs: []uuid.UUID{},
	}

	subjectRepo.On("GetByID", mock.Anything, teacherID, subjectID).Return(&domain.Subject{ID: subjectID}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Outcome")).Return(nil)
	repo.On("GetByID", mock.Anything, teacherID, mock.AnythingOfType("uuid.UUID")).Return(returned, nil)

	outcome, err := svc.Create(context.Background(), teacherID, subjectID, "fr.1.2", "Reads aloud with fluency", "1", nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "FR.1.2", outcome.Code)
	repo.AssertExpectations(t)
	subjectRepo.AssertExpectations(t)
}

func TestOutcomeService_Create_EmptyCode(t *testing.T) {
	svc := NewOutcomeService(new(testutil.MockOutcomeRepo), new(testutil.MockSubjectRepo))

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), "   ", "desc", "1", nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidOutcomeCode)
}

func TestOutcomeService_Create_NilSubject(t *testing.T) {
	svc := NewOutcomeService(new(testutil.MockOutcomeRepo), new(testutil.MockSubjectRepo))

	_, err := svc.Create(context.Background(), uuid.New(), uuid.Nil, "FR.1", "desc", "1", nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidSubjectID)
}

func TestOutcomeService_Create_SubjectNotFound(t *testing.T) {
	repo := new(testutil.MockOutcomeRepo)
	subjectRepo := new(testutil.MockSubjectRepo)
	svc := NewOutcomeService(repo, subjectRepo)

	teacherID := uuid.New()
	subjectID := uuid.New()
	subjectRepo.On("GetByID", mock.Anything, teacherID, subjectID).Return(nil, domain.ErrSubjectNotFound)

	_, err := svc.Create(context.Background(), teacherID, subjectID, "FR.1", "desc", "1", nil, nil)
	assert.ErrorIs(t, err, domain.ErrSubjectNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOutcomeService_Create_CodeConflict(t *testing.T) {
	repo := new(testutil.MockOutcomeRepo)
	subjectRepo := new(testutil.MockSubjectRepo)
	svc := NewOutcomeService(repo, subjectRepo)

	teacherID := uuid.New()
	subjectID := uuid.New()
	subjectRepo.On("GetByID", mock.Anything, teacherID, subjectID).Return(&domain.Subject{ID: subjectID}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Outcome")).Return(domain.ErrOutcomeCodeConflict)

	_, err := svc.Create(context.Background(), teacherID, subjectID, "FR.1", "desc", "1", nil, nil)
	assert.ErrorIs(t, err, domain.ErrOutcomeCodeConflict)
}

func TestOutcomeService_GetByCode(t *testing.T) {
	repo := new(testutil.MockOutcomeRepo)
	svc := NewOutcomeService(repo, new(testutil.MockSubjectRepo))

	teacherID := uuid.New()
	expected := &domain.Outcome{ID: uuid.New(), Code: "FR.1"}
	repo.On("GetByCode", mock.Anything, teacherID, "FR.1").Return(expected, nil)

	outcome, err := svc.GetByCode(context.Background(), teacherID, " fr.1 ")
	assert.NoError(t, err)
	assert.Equal(t, "FR.1", outcome.Code)
}

func TestOutcomeService_GetByCode_Empty(t *testing.T) {
	svc := NewOutcomeService(new(testutil.MockOutcomeRepo), new(testutil.MockSubjectRepo))

	_, err := svc.GetByCode(context.Background(), uuid.New(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidOutcomeCode)
}

func TestOutcomeService_List_ClampsLimit(t *testing.T) {
	repo := new(testutil.MockOutcomeRepo)
	svc := NewOutcomeService(repo, new(testutil.MockSubjectRepo))

	teacherID := uuid.New()
	repo.On("List", mock.Anything, ports.OutcomeListFilter{TeacherID: teacherID, Limit: 200}).
		Return([]*domain.Outcome{}, 0, nil)

	_, _, err := svc.List(context.Background(), ports.OutcomeListFilter{TeacherID: teacherID, Limit: 1000})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestOutcomeService_Update(t *testing.T) {
	repo := new(testutil.MockOutcomeRepo)
	svc := NewOutcomeService(repo, new(testutil.MockSubjectRepo))

	teacherID := uuid.New()
	id := uuid.New()
	existing := &domain.Outcome{ID: id, Code: "FR.1", Description: "old"}

	repo.On("GetByID", mock.Anything, teacherID, id).Return(existing, nil)
	repo.On("Update", mock.Anything, teacherID, mock.AnythingOfType("*domain.Outcome")).Return(nil)

	outcome, err := svc.Update(context.Background(), teacherID, id, map[string]interface{}{
		"description": "new",
		"code":        "fr.2",
	})
	assert.NoError(t, err)
	assert.Equal(t, "FR.2", outcome.Code)
	assert.Equal(t, "new", outcome.Description)
}

func TestOutcomeService_Update_NotFound(t *testing.T) {
	repo := new(testutil.MockOutcomeRepo)
	svc := NewOutcomeService(repo, new(testutil.MockSubjectRepo))

	teacherID := uuid.New()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, teacherID, id).Return(nil, domain.ErrOutcomeNotFound)

	_, err := svc.Update(context.Background(), teacherID, id, map[string]interface{}{"description": "x"})
	assert.ErrorIs(t, err, domain.ErrOutcomeNotFound)
}

func TestOutcomeService_Delete(t *testing.T) {
	repo := new(testutil.MockOutcomeRepo)
	svc := NewOutcomeService(repo, new(testutil.MockSubjectRepo))

	teacherID := uuid.New()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, teacherID, id).Return(&domain.Outcome{ID: id}, nil)
	repo.On("Delete", mock.Anything, teacherID, id).Return(nil)

	err := svc.Delete(context.Background(), teacherID, id)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestOutcomeService_Delete_NotFound(t *testing.T) {
	repo := new(testutil.MockOutcomeRepo)
	svc := NewOutcomeService(repo, new(testutil.MockSubjectRepo))

	teacherID := uuid.New()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, teacherID, id).Return(nil, domain.ErrOutcomeNotFound)

	err := svc.Delete(context.Background(), teacherID, id)
	assert.ErrorIs(t, err, domain.ErrOutcomeNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
