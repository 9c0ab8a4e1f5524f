package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"classroom-planner-service/internal/adapters/primary/http/dto"
	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
)

func (h *Handler) ListAssessments(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.AssessmentListFilter{
		TeacherID: teacherID,
		Term:      c.Query("term"),
		Limit:     limit,
		Offset:    offset,
	}
	if raw := c.Query("student"); raw != "" {
		studentID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student id"})
			return
		}
		filter.StudentID = studentID
	}

	assessments, total, err := h.assessmentSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list assessments failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.AssessmentResponse, 0, len(assessments))
	for _, a := range assessments {
		items = append(items, dto.ToAssessmentResponse(a))
	}
	c.JSON(http.StatusOK, dto.ListAssessmentsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetAssessment(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assessment id"})
		return
	}

	assessment, err := h.assessmentSvc.Get(c.Request.Context(), teacherID, id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAssessmentResponse(assessment))
}

func (h *Handler) CreateAssessment(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	var req dto.CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assessedAt := time.Now().UTC()
	if req.AssessedAt != nil {
		assessedAt = *req.AssessedAt
	}

	assessment, err := h.assessmentSvc.Create(c.Request.Context(), teacherID, req.StudentID, req.Title, req.Term, req.Notes, assessedAt, req.OutcomeIDs)
	if err != nil {
		log.WithError(err).Error("create assessment failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAssessmentResponse(assessment))
}

func (h *Handler) DeleteAssessment(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assessment id"})
		return
	}

	if err := h.assessmentSvc.Delete(c.Request.Context(), teacherID, id); err != nil {
		log.WithError(err).Error("delete assessment failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
