package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"classroom-planner-service/internal/core/domain"
	"classroom-planner-service/internal/core/services"
	"classroom-planner-service/internal/testutil"
)

func setupActivityRouter(t *testing.T, repo *testutil.MockActivityRepo, teacherID uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	activitySvc := services.NewActivityService(repo, nil)
	h := New(nil, nil, nil, nil, activitySvc, nil, nil, nil, nil)

	r := gin.New()
	api := r.Group("/api/v1/planner")
	api.Use(func(c *gin.Context) {
		c.Set("teacher_id", teacherID)
		c.Next()
	})
	h.RegisterRoutes(api)
	return r
}

func patchActivity(r *gin.Engine, id uuid.UUID, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/planner/activities/"+id.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func storedActivity(teacherID uuid.UUID, completedAt *time.Time) *domain.Activity {
	return &domain.Activity{
		ID:          uuid.New(),
		TeacherID:   teacherID,
		SubjectID:   uuid.New(),
		Title:       "Lecture partagée",
		Term:        "T1",
		CompletedAt: completedAt,
	}
}

func TestUpdateActivity_NullClearsCompletedAt(t *testing.T) {
	repo := new(testutil.MockActivityRepo)
	teacherID := uuid.New()
	done := time.Now().UTC()
	activity := storedActivity(teacherID, &done)

	repo.On("GetByID", mock.Anything, teacherID, activity.ID).Return(activity, nil)
	repo.On("Update", mock.Anything, teacherID, mock.MatchedBy(func(a *domain.Activity) bool {
		return a.CompletedAt == nil
	})).Return(nil)

	r := setupActivityRouter(t, repo, teacherID)
	w := patchActivity(r, activity.ID, `{"completed_at": null}`)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestUpdateActivity_AbsentCompletedAtLeftUntouched(t *testing.T) {
	repo := new(testutil.MockActivityRepo)
	teacherID := uuid.New()
	done := time.Now().UTC()
	activity := storedActivity(teacherID, &done)

	repo.On("GetByID", mock.Anything, teacherID, activity.ID).Return(activity, nil)
	repo.On("Update", mock.Anything, teacherID, mock.MatchedBy(func(a *domain.Activity) bool {
		return a.CompletedAt != nil && a.CompletedAt.Equal(done) && a.Title == "Nouvelle lecture"
	})).Return(nil)

	r := setupActivityRouter(t, repo, teacherID)
	w := patchActivity(r, activity.ID, `{"title": "Nouvelle lecture"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestUpdateActivity_SetsCompletedAt(t *testing.T) {
	repo := new(testutil.MockActivityRepo)
	teacherID := uuid.New()
	activity := storedActivity(teacherID, nil)
	done := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	repo.On("GetByID", mock.Anything, teacherID, activity.ID).Return(activity, nil)
	repo.On("Update", mock.Anything, teacherID, mock.MatchedBy(func(a *domain.Activity) bool {
		return a.CompletedAt != nil && a.CompletedAt.Equal(done)
	})).Return(nil)

	r := setupActivityRouter(t, repo, teacherID)
	w := patchActivity(r, activity.ID, `{"completed_at": "2026-03-15T10:00:00Z"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestUpdateActivity_RejectsMalformedCompletedAt(t *testing.T) {
	repo := new(testutil.MockActivityRepo)
	teacherID := uuid.New()
	activity := storedActivity(teacherID, nil)

	repo.On("GetByID", mock.Anything, teacherID, activity.ID).Return(activity, nil)

	r := setupActivityRouter(t, repo, teacherID)
	w := patchActivity(r, activity.ID, `{"completed_at": "tomorrow"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
