package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"classroom-planner-service/internal/adapters/primary/http/dto"
	"classroom-planner-service/internal/core/domain"
	"classroom-planner-service/internal/core/services"
)

func (h *Handler) GetCoverage(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	filters, err := parseAuditFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := h.auditSvc.Coverage(c.Request.Context(), teacherID, filters)
	if err != nil {
		log.WithError(err).Error("get coverage failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.CoverageRecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, dto.ToCoverageRecordResponse(r, h.auditSvc.Classify(r)))
	}
	c.JSON(http.StatusOK, dto.CoverageListResponse{Items: items, Total: len(items)})
}

func (h *Handler) GetCoverageSummary(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	filters, err := parseAuditFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.auditSvc.Summary(c.Request.Context(), teacherID, filters)
	if err != nil {
		log.WithError(err).Error("get coverage summary failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCoverageSummaryResponse(summary))
}

func (h *Handler) ExportCoverage(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	format, err := services.ParseExportFormat(c.DefaultQuery("format", "csv"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	filters, err := parseAuditFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.exportSvc.Export(c.Request.Context(), teacherID, filters, format)
	if err != nil {
		log.WithError(err).Error("export coverage failed")
		mapDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	c.Data(http.StatusOK, result.ContentType, []byte(result.Body))
}

func (h *Handler) GetAuditMetrics(c *gin.Context) {
	teacherID, err := getTeacherID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingTeacherID.Error()})
		return
	}

	var subjectIDs []uuid.UUID
	if raw := c.Query("subjects"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject id"})
				return
			}
			subjectIDs = append(subjectIDs, id)
		}
	}

	metrics, err := h.auditSvc.Metrics(c.Request.Context(), teacherID, subjectIDs)
	if err != nil {
		log.WithError(err).Error("get audit metrics failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditMetricsResponse(metrics))
}

func parseAuditFilters(c *gin.Context) (domain.AuditFilters, error) {
	filters := domain.AuditFilters{
		Term:               c.Query("term"),
		Grade:              c.Query("grade"),
		Domain:             c.Query("domain"),
		ShowOnlyUncovered:  c.Query("uncovered") == "true",
		ShowOnlyUnassessed: c.Query("unassessed") == "true",
	}
	if raw := c.Query("subject"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domain.AuditFilters{}, fmt.Errorf("invalid subject id")
		}
		filters.SubjectID = &id
	}
	return filters, nil
}
