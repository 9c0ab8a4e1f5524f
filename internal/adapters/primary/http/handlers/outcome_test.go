package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"classroom-planner-service/internal/core/domain"
	"classroom-planner-service/internal/core/services"
	"classroom-planner-service/internal/testutil"
)

func setupOutcomeRouter(t *testing.T, repo *testutil.MockOutcomeRepo, subjectRepo *testutil.MockSubjectRepo, teacherID uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	outcomeSvc := services.NewOutcomeService(repo, subjectRepo)
	h := New(nil, nil, outcomeSvc, nil, nil, nil, nil, nil, nil)

	r := gin.New()
	api := r.Group("/api/v1/planner")
	api.Use(func(c *gin.Context) {
		c.Set("teacher_id", teacherID)
		c.Next()
	})
	h.RegisterRoutes(api)
	return r
}

func TestCreateOutcome(t *testing.T) {
	repo := new(testutil.MockOutcomeRepo)
	subjectRepo := new(testutil.MockSubjectRepo)
	teacherID := uuid.New()
	subjectID := uuid.New()

	returned := &domain.Outcome{
		ID:           uuid.New(),
		TeacherID:    teacherID,
		SubjectID:    subjectID,
		Code:         "FR.1.2",
		Description:  "Reads aloud",
		Grade:        "1",
		MilestoneIDs: []uuid.UUID{},
	}
	subjectRepo.On("GetByID", mock.Anything, teacherID, subjectID).Return(&domain.Subject{ID: subjectID}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Outcome")).Return(nil)
	repo.On("GetByID", mock.Anything, teacherID, mock.AnythingOfType("uuid.UUID")).Return(returned, nil)

	r := setupOutcomeRouter(t, repo, subjectRepo, teacherID)

	body := `{"subject_id":"` + subjectID.String() + `","code":"fr.1.2","description":"Reads aloud","grade":"1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/planner/outcomes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "FR.1.2", resp["code"])
}

func TestCreateOutcome_MissingCode(t *testing.T) {
	teacherID := uuid.New()
	r := setupOutcomeRouter(t, new(testutil.MockOutcomeRepo), new(testutil.MockSubjectRepo), teacherID)

	body := `{"subject_id":"` + uuid.New().String() + `","description":"no code"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/planner/outcomes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOutcome_NotFound(t *testing.T) {
	repo := new(testutil.MockOutcomeRepo)
	teacherID := uuid.New()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, teacherID, id).Return(nil, domain.ErrOutcomeNotFound)

	r := setupOutcomeRouter(t, repo, new(testutil.MockSubjectRepo), teacherID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/outcomes/"+id.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOutcome_InvalidID(t *testing.T) {
	teacherID := uuid.New()
	r := setupOutcomeRouter(t, new(testutil.MockOutcomeRepo), new(testutil.MockSubjectRepo), teacherID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/outcomes/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOutcome_CodeConflict(t *testing.T) {
	repo := new(testutil.MockOutcomeRepo)
	subjectRepo := new(testutil.MockSubjectRepo)
	teacherID := uuid.New()
	subjectID := uuid.New()

	subjectRepo.On("GetByID", mock.Anything, teacherID, subjectID).Return(&domain.Subject{ID: subjectID}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Outcome")).Return(domain.ErrOutcomeCodeConflict)

	r := setupOutcomeRouter(t, repo, subjectRepo, teacherID)

	body := `{"subject_id":"` + subjectID.String() + `","code":"FR.1","description":"dup"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/planner/outcomes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListOutcomes(t *testing.T) {
	repo := new(testutil.MockOutcomeRepo)
	teacherID := uuid.New()
	outcomes := []*domain.Outcome{
		{ID: uuid.New(), Code: "FR.1", MilestoneIDs: []uuid.UUID{}},
		{ID: uuid.New(), Code: "FR.2", MilestoneIDs: []uuid.UUID{}},
	}
	repo.On("List", mock.Anything, mock.Anything).Return(outcomes, 2, nil)

	r := setupOutcomeRouter(t, repo, new(testutil.MockSubjectRepo), teacherID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/outcomes", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []map[string]interface{} `json:"items"`
		Total int                      `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Items, 2)
}

func TestDeleteOutcome(t *testing.T) {
	repo := new(testutil.MockOutcomeRepo)
	teacherID := uuid.New()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, teacherID, id).Return(&domain.Outcome{ID: id}, nil)
	repo.On("Delete", mock.Anything, teacherID, id).Return(nil)

	r := setupOutcomeRouter(t, repo, new(testutil.MockSubjectRepo), teacherID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/planner/outcomes/"+id.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}
