package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"classroom-planner-service/internal/adapters/primary/http/dto"
	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
)

func (h *Handler) ListSubjects(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	subjects, total, err := h.subjectSvc.List(c.Request.Context(), ports.SubjectListFilter{
		TeacherID: teacherID,
		Grade:     c.Query("grade"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		log.WithError(err).Error("list subjects failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.SubjectResponse, 0, len(subjects))
	for _, s := range subjects {
		items = append(items, dto.ToSubjectResponse(s))
	}
	c.JSON(http.StatusOK, dto.ListSubjectsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetSubject(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject id"})
		return
	}

	subject, err := h.subjectSvc.Get(c.Request.Context(), teacherID, id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSubjectResponse(subject))
}

func (h *Handler) CreateSubject(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject, err := h.subjectSvc.Create(c.Request.Context(), teacherID, req.Name, req.Grade)
	if err != nil {
		log.WithError(err).Error("create subject failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToSubjectResponse(subject))
}

func (h *Handler) UpdateSubject(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject id"})
		return
	}

	var req dto.UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Grade != nil {
		updates["grade"] = *req.Grade
	}

	subject, err := h.subjectSvc.Update(c.Request.Context(), teacherID, id, updates)
	if err != nil {
		log.WithError(err).Error("update subject failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSubjectResponse(subject))
}

func (h *Handler) DeleteSubject(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject id"})
		return
	}

	if err := h.subjectSvc.Delete(c.Request.Context(), teacherID, id); err != nil {
		log.WithError(err).Error("delete subject failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) ListMilestones(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject id"})
		return
	}

	milestones, err := h.subjectSvc.ListMilestones(c.Request.Context(), teacherID, subjectID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	items := make([]dto.MilestoneResponse, 0, len(milestones))
	for _, m := range milestones {
		items = append(items, dto.ToMilestoneResponse(m))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *Handler) AddMilestone(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject id"})
		return
	}

	var req dto.CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	milestone, err := h.subjectSvc.AddMilestone(c.Request.Context(), teacherID, subjectID, req.Title, req.Term)
	if err != nil {
		log.WithError(err).Error("add milestone failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToMilestoneResponse(milestone))
}
