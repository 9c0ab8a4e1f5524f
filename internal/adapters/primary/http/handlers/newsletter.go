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

func (h *Handler) ListNewsletters(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	newsletters, total, err := h.newsletterSvc.List(c.Request.Context(), ports.NewsletterListFilter{
		TeacherID: teacherID,
		Term:      c.Query("term"),
		Status:    c.Query("status"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		log.WithError(err).Error("list newsletters failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.NewsletterResponse, 0, len(newsletters))
	for _, n := range newsletters {
		items = append(items, dto.ToNewsletterResponse(n))
	}
	c.JSON(http.StatusOK, dto.ListNewslettersResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetNewsletter(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid newsletter id"})
		return
	}

	newsletter, err := h.newsletterSvc.Get(c.Request.Context(), teacherID, id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNewsletterResponse(newsletter))
}

func (h *Handler) CreateNewsletter(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	var req dto.CreateNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newsletter, err := h.newsletterSvc.Create(c.Request.Context(), teacherID, req.Title, req.Term, req.Content)
	if err != nil {
		log.WithError(err).Error("create newsletter failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToNewsletterResponse(newsletter))
}

func (h *Handler) GenerateNewsletter(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	var req dto.GenerateNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newsletter, err := h.newsletterSvc.Generate(c.Request.Context(), teacherID, ports.GenerationRequest{
		Title:      req.Title,
		Term:       req.Term,
		Grade:      req.Grade,
		Highlights: req.Highlights,
		Tone:       req.Tone,
		Language:   req.Language,
	})
	if err != nil {
		log.WithError(err).Error("generate newsletter failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToNewsletterResponse(newsletter))
}

func (h *Handler) UpdateNewsletter(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid newsletter id"})
		return
	}

	var req dto.UpdateNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Term != nil {
		updates["term"] = *req.Term
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	newsletter, err := h.newsletterSvc.Update(c.Request.Context(), teacherID, id, updates)
	if err != nil {
		log.WithError(err).Error("update newsletter failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNewsletterResponse(newsletter))
}

func (h *Handler) DeleteNewsletter(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid newsletter id"})
		return
	}

	if err := h.newsletterSvc.Delete(c.Request.Context(), teacherID, id); err != nil {
		log.WithError(err).Error("delete newsletter failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
