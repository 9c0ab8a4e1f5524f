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

func (h *Handler) ListReflections(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, total, err := h.reflectionSvc.List(c.Request.Context(), ports.ReflectionListFilter{
		TeacherID: teacherID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		log.WithError(err).Error("list reflections failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ReflectionResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ToReflectionResponse(e))
	}
	c.JSON(http.StatusOK, dto.ListReflectionsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetReflection(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reflection id"})
		return
	}

	entry, err := h.reflectionSvc.Get(c.Request.Context(), teacherID, id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReflectionResponse(entry))
}

func (h *Handler) CreateReflection(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	var req dto.CreateReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entryDate := time.Now().UTC()
	if req.EntryDate != nil {
		entryDate = *req.EntryDate
	}

	entry, err := h.reflectionSvc.Create(c.Request.Context(), teacherID, entryDate, req.Content)
	if err != nil {
		log.WithError(err).Error("create reflection failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToReflectionResponse(entry))
}

func (h *Handler) UpdateReflection(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reflection id"})
		return
	}

	var req dto.UpdateReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.reflectionSvc.Update(c.Request.Context(), teacherID, id, req.Content)
	if err != nil {
		log.WithError(err).Error("update reflection failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReflectionResponse(entry))
}

func (h *Handler) DeleteReflection(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reflection id"})
		return
	}

	if err := h.reflectionSvc.Delete(c.Request.Context(), teacherID, id); err != nil {
		log.WithError(err).Error("delete reflection failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
