package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"classroom-planner-service/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrOutcomeNotFound),
		errors.Is(err, domain.ErrSubjectNotFound),
		errors.Is(err, domain.ErrMilestoneNotFound),
		errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrAssessmentNotFound),
		errors.Is(err, domain.ErrStudentNotFound),
		errors.Is(err, domain.ErrReflectionNotFound),
		errors.Is(err, domain.ErrNewsletterNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrOutcomeCodeConflict),
		errors.Is(err, domain.ErrSubjectNameConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidOutcomeCode),
		errors.Is(err, domain.ErrInvalidSubjectName),
		errors.Is(err, domain.ErrInvalidSubjectID),
		errors.Is(err, domain.ErrMissingTeacherID),
		errors.Is(err, domain.ErrSubjectHasOutcomes),
		errors.Is(err, domain.ErrInvalidActivityTitle),
		errors.Is(err, domain.ErrInvalidAssessmentTitle),
		errors.Is(err, domain.ErrInvalidStudentName),
		errors.Is(err, domain.ErrInvalidReflectionBody),
		errors.Is(err, domain.ErrInvalidExportFormat),
		errors.Is(err, domain.ErrInvalidNewsletterTitle):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Service unavailable errors
	case errors.Is(err, domain.ErrAIGatewayNotAvailable),
		errors.Is(err, domain.ErrGenerationFailed):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
