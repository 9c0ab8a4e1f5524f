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

func (h *Handler) ListOutcomes(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.OutcomeListFilter{
		TeacherID: teacherID,
		Grade:     c.Query("grade"),
		Domain:    c.Query("domain"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		Order:     c.Query("order"),
		Limit:     limit,
		Offset:    offset,
	}
	if raw := c.Query("subject"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject id"})
			return
		}
		filter.SubjectID = id
	}

	outcomes, total, err := h.outcomeSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list outcomes failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.OutcomeResponse, 0, len(outcomes))
	for _, o := range outcomes {
		items = append(items, dto.ToOutcomeResponse(o))
	}
	c.JSON(http.StatusOK, dto.ListOutcomesResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetOutcome(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid outcome id"})
		return
	}

	outcome, err := h.outcomeSvc.Get(c.Request.Context(), teacherID, id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}

func (h *Handler) GetOutcomeByCode(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	outcome, err := h.outcomeSvc.GetByCode(c.Request.Context(), teacherID, c.Query("code"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}

func (h *Handler) CreateOutcome(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	var req dto.CreateOutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.outcomeSvc.Create(
		c.Request.Context(), teacherID, req.SubjectID,
		req.Code, req.Description, req.Grade, req.Domain, req.MilestoneIDs,
	)
	if err != nil {
		log.WithError(err).Error("create outcome failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToOutcomeResponse(outcome))
}

func (h *Handler) UpdateOutcome(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid outcome id"})
		return
	}

	var req dto.UpdateOutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Code != nil {
		updates["code"] = *req.Code
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Domain != nil {
		updates["domain"] = *req.Domain
	}
	if req.Grade != nil {
		updates["grade"] = *req.Grade
	}
	if req.MilestoneIDs != nil {
		updates["milestone_ids"] = *req.MilestoneIDs
	}

	outcome, err := h.outcomeSvc.Update(c.Request.Context(), teacherID, id, updates)
	if err != nil {
		log.WithError(err).Error("update outcome failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}

func (h *Handler) DeleteOutcome(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid outcome id"})
		return
	}

	if err := h.outcomeSvc.Delete(c.Request.Context(), teacherID, id); err != nil {
		log.WithError(err).Error("delete outcome failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
