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

func (h *Handler) ListActivities(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.ActivityListFilter{
		TeacherID: teacherID,
		Term:      c.Query("term"),
		Search:    c.Query("search"),
		Limit:     limit,
		Offset:    offset,
	}
	if raw := c.Query("subject"); raw != "" {
		subjectID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidSubjectID.Error()})
			return
		}
		filter.SubjectID = subjectID
	}

	activities, total, err := h.activitySvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list activities failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		items = append(items, dto.ToActivityResponse(a))
	}
	c.JSON(http.StatusOK, dto.ListActivitiesResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetActivity(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	activity, err := h.activitySvc.Get(c.Request.Context(), teacherID, id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

func (h *Handler) CreateActivity(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.activitySvc.Create(c.Request.Context(), teacherID, req.SubjectID, req.Title, req.Description, req.Term, req.OutcomeIDs)
	if err != nil {
		log.WithError(err).Error("create activity failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToActivityResponse(activity))
}

func (h *Handler) UpdateActivity(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Term != nil {
		updates["term"] = *req.Term
	}
	if completedAt, present, err := req.CompletedAtUpdate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid completed_at"})
		return
	} else if present {
		if completedAt == nil {
			updates["completed_at"] = nil
		} else {
			updates["completed_at"] = *completedAt
		}
	}
	if req.OutcomeIDs != nil {
		updates["outcome_ids"] = *req.OutcomeIDs
	}

	activity, err := h.activitySvc.Update(c.Request.Context(), teacherID, id, updates)
	if err != nil {
		log.WithError(err).Error("update activity failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

func (h *Handler) DeleteActivity(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	if err := h.activitySvc.Delete(c.Request.Context(), teacherID, id); err != nil {
		log.WithError(err).Error("delete activity failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
