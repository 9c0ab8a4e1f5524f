package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func setupAuditRouter(t *testing.T, repo *testutil.MockCoverageRepo, teacherID uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auditSvc := services.NewAuditService(repo, nil, time.Minute, 0)
	exportSvc := services.NewExportService(auditSvc)
	h := New(auditSvc, exportSvc, nil, nil, nil, nil, nil, nil, nil)

	r := gin.New()
	api := r.Group("/api/v1/planner")
	api.Use(func(c *gin.Context) {
		c.Set("teacher_id", teacherID)
		c.Next()
	})
	h.RegisterRoutes(api)
	return r
}

func TestGetCoverage(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	teacherID := uuid.New()
	rows := []domain.OutcomeCoverageRecord{
		{OutcomeID: uuid.New(), OutcomeCode: "FR.1", CoveredCount: 0},
		{OutcomeID: uuid.New(), OutcomeCode: "FR.2", CoveredCount: 4, Assessed: false},
	}
	repo.On("ListCoverage", mock.Anything, teacherID, mock.Anything).Return(rows, nil)
	r := setupAuditRouter(t, repo, teacherID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/audit/curriculum-coverage", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []map[string]interface{} `json:"items"`
		Total int                      `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "UNCOVERED", resp.Items[0]["status"])
	assert.Equal(t, "OVERUSED_UNASSESSED", resp.Items[1]["status"])
}

func TestGetCoverage_UncoveredToggle(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	teacherID := uuid.New()
	rows := []domain.OutcomeCoverageRecord{
		{OutcomeID: uuid.New(), OutcomeCode: "FR.1", CoveredCount: 0},
		{OutcomeID: uuid.New(), OutcomeCode: "FR.2", CoveredCount: 3},
	}
	repo.On("ListCoverage", mock.Anything, teacherID, mock.Anything).Return(rows, nil)
	r := setupAuditRouter(t, repo, teacherID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/audit/curriculum-coverage?uncovered=true", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total int `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
}

func TestGetCoverage_InvalidSubjectFilter(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	teacherID := uuid.New()
	r := setupAuditRouter(t, repo, teacherID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/audit/curriculum-coverage?subject=not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "ListCoverage", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetCoverageSummary(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	teacherID := uuid.New()
	rows := []domain.OutcomeCoverageRecord{
		{OutcomeID: uuid.New(), OutcomeCode: "FR.1", CoveredCount: 2, Assessed: true},
		{OutcomeID: uuid.New(), OutcomeCode: "FR.2", CoveredCount: 0},
	}
	repo.On("ListCoverage", mock.Anything, teacherID, mock.Anything).Return(rows, nil)
	r := setupAuditRouter(t, repo, teacherID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/audit/curriculum-coverage/summary", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 2, resp["total"])
	assert.EqualValues(t, 1, resp["covered"])
	assert.EqualValues(t, 50, resp["coverage_percentage"])
}

func TestExportCoverage_CSV(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	teacherID := uuid.New()
	rows := []domain.OutcomeCoverageRecord{
		{OutcomeID: uuid.New(), OutcomeCode: "FR.1", OutcomeDescription: "Reads aloud", CoveredCount: 1},
	}
	repo.On("ListCoverage", mock.Anything, teacherID, mock.Anything).Return(rows, nil)
	r := setupAuditRouter(t, repo, teacherID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/audit/curriculum-coverage/export?format=csv", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "curriculum-audit.csv")
	assert.Contains(t, w.Body.String(), "Outcome Code")
	assert.Contains(t, w.Body.String(), "FR.1")
}

func TestExportCoverage_UnknownFormat(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	teacherID := uuid.New()
	r := setupAuditRouter(t, repo, teacherID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/audit/curriculum-coverage/export?format=xlsx", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAuditMetrics(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	teacherID := uuid.New()
	subjectID := uuid.New()
	o1, o2 := uuid.New(), uuid.New()

	attachments := []domain.MilestoneOutcome{
		{SubjectID: subjectID, MilestoneID: uuid.New(), OutcomeID: o1},
		{SubjectID: subjectID, MilestoneID: uuid.New(), OutcomeID: o2},
	}
	repo.On("ListMilestoneAttachments", mock.Anything, teacherID, []uuid.UUID{subjectID}).Return(attachments, nil)
	repo.On("ListCoveredOutcomeIDs", mock.Anything, teacherID).Return([]uuid.UUID{o1}, nil)
	r := setupAuditRouter(t, repo, teacherID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/audit/metrics?subjects="+subjectID.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 2, resp["total_outcomes"])
	assert.EqualValues(t, 1, resp["covered_outcomes"])
	assert.EqualValues(t, 1, resp["uncovered_outcomes"])
}

func TestGetAuditMetrics_InvalidSubjectList(t *testing.T) {
	repo := new(testutil.MockCoverageRepo)
	teacherID := uuid.New()
	r := setupAuditRouter(t, repo, teacherID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/audit/metrics?subjects=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
