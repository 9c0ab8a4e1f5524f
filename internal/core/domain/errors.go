package domain

import "errors"

// ============================================================================
// Curriculum Errors
// ============================================================================

var (
	ErrOutcomeNotFound     = errors.New("curriculum outcome not found")
	ErrOutcomeCodeConflict = errors.New("outcome with this code already exists for this teacher")
	ErrSubjectNotFound     = errors.New("subject not found")
	ErrSubjectNameConflict = errors.New("subject with this name already exists for this teacher")
	ErrMilestoneNotFound   = errors.New("milestone not found")
	ErrInvalidOutcomeCode  = errors.New("outcome code is required")
	ErrInvalidSubjectName  = errors.New("subject name is required")
	ErrMissingTeacherID    = errors.New("teacher ID is required (bearer token subject)")
	ErrSubjectHasOutcomes  = errors.New("cannot delete subject: outcomes are still attached")
)

// ============================================================================
// Planning Errors
// ============================================================================

// Not found errors
var (
	ErrActivityNotFound   = errors.New("activity not found")
	ErrAssessmentNotFound = errors.New("assessment result not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrReflectionNotFound = errors.New("reflection entry not found")
)

// Validation errors
var (
	ErrInvalidActivityTitle   = errors.New("activity title is required")
	ErrInvalidAssessmentTitle = errors.New("assessment title is required")
	ErrInvalidStudentName     = errors.New("student first and last name are required")
	ErrInvalidReflectionBody  = errors.New("reflection content is required")
)

// ============================================================================
// Audit Errors
// ============================================================================

var (
	ErrInvalidExportFormat = errors.New("export format must be csv, markdown or json")
	ErrInvalidSubjectID    = errors.New("subject ID is required")
)

// ============================================================================
// Newsletter Errors
// ============================================================================

var (
	ErrNewsletterNotFound     = errors.New("newsletter not found")
	ErrInvalidNewsletterTitle = errors.New("newsletter title is required")
	ErrAIGatewayNotAvailable  = errors.New("AI gateway is not available")
	ErrGenerationFailed       = errors.New("newsletter generation failed after retries")
)

// ============================================================================
// Auth Errors
// ============================================================================

var (
	ErrInvalidToken = errors.New("missing or invalid bearer token")
)
