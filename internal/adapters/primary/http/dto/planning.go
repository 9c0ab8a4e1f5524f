package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"classroom-planner-service/internal/core/domain"
)

type CreateActivityRequest struct {
	SubjectID   uuid.UUID   `json:"subject_id" binding:"required"`
	Title       string      `json:"title" binding:"required,max=200"`
	Description string      `json:"description"`
	Term        string      `json:"term"`
	OutcomeIDs  []uuid.UUID `json:"outcome_ids"`
}

type UpdateActivityRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Term        *string `json:"term"`
	// Raw so that "completed_at": null (clear the date) is distinguishable
	// from the field being absent (leave it alone).
	CompletedAt json.RawMessage `json:"completed_at"`
	OutcomeIDs  *[]uuid.UUID    `json:"outcome_ids"`
}

// CompletedAtUpdate reports whether the field was present, and returns the
// parsed timestamp or nil when the client sent an explicit null.
func (r UpdateActivityRequest) CompletedAtUpdate() (*time.Time, bool, error) {
	if len(r.CompletedAt) == 0 {
		return nil, false, nil
	}
	if string(r.CompletedAt) == "null" {
		return nil, true, nil
	}
	var ts time.Time
	if err := json.Unmarshal(r.CompletedAt, &ts); err != nil {
		return nil, false, err
	}
	return &ts, true, nil
}

type ActivityResponse struct {
	ID          uuid.UUID   `json:"id"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
	SubjectID   uuid.UUID   `json:"subject_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Term        string      `json:"term"`
	CompletedAt *string     `json:"completed_at"`
	OutcomeIDs  []uuid.UUID `json:"outcome_ids"`
}

func ToActivityResponse(a *domain.Activity) ActivityResponse {
	resp := ActivityResponse{
		ID:          a.ID,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
		SubjectID:   a.SubjectID,
		Title:       a.Title,
		Description: a.Description,
		Term:        a.Term,
		OutcomeIDs:  a.OutcomeIDs,
	}
	if a.CompletedAt != nil {
		s := a.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	return resp
}

type ListActivitiesResponse struct {
	Items      []ActivityResponse `json:"items"`
	Total      int                `json:"total"`
	PageSize   int                `json:"page_size"`
	NextOffset int                `json:"next_offset"`
}

type CreateAssessmentRequest struct {
	StudentID  *uuid.UUID  `json:"student_id"`
	Title      string      `json:"title" binding:"required,max=200"`
	Term       string      `json:"term"`
	AssessedAt *time.Time  `json:"assessed_at"`
	Notes      string      `json:"notes"`
	OutcomeIDs []uuid.UUID `json:"outcome_ids"`
}

type AssessmentResponse struct {
	ID         uuid.UUID   `json:"id"`
	CreatedAt  string      `json:"created_at"`
	StudentID  *uuid.UUID  `json:"student_id"`
	Title      string      `json:"title"`
	Term       string      `json:"term"`
	AssessedAt string      `json:"assessed_at"`
	Notes      string      `json:"notes"`
	OutcomeIDs []uuid.UUID `json:"outcome_ids"`
}

func ToAssessmentResponse(a *domain.AssessmentResult) AssessmentResponse {
	return AssessmentResponse{
		ID:         a.ID,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		StudentID:  a.StudentID,
		Title:      a.Title,
		Term:       a.Term,
		AssessedAt: a.AssessedAt.Format(time.RFC3339),
		Notes:      a.Notes,
		OutcomeIDs: a.OutcomeIDs,
	}
}

type ListAssessmentsResponse struct {
	Items      []AssessmentResponse `json:"items"`
	Total      int                  `json:"total"`
	PageSize   int                  `json:"page_size"`
	NextOffset int                  `json:"next_offset"`
}

type CreateStudentRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Grade     string `json:"grade"`
	Notes     string `json:"notes"`
}

type UpdateStudentRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Grade     *string `json:"grade"`
	Notes     *string `json:"notes"`
}

type StudentResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Grade     string    `json:"grade"`
	Notes     string    `json:"notes"`
}

func ToStudentResponse(s *domain.Student) StudentResponse {
	return StudentResponse{
		ID:        s.ID,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Grade:     s.Grade,
		Notes:     s.Notes,
	}
}

type ListStudentsResponse struct {
	Items      []StudentResponse `json:"items"`
	Total      int               `json:"total"`
	PageSize   int               `json:"page_size"`
	NextOffset int               `json:"next_offset"`
}

type CreateReflectionRequest struct {
	EntryDate *time.Time `json:"entry_date"`
	Content   string     `json:"content" binding:"required"`
}

type UpdateReflectionRequest struct {
	Content string `json:"content" binding:"required"`
}

type ReflectionResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
	EntryDate string    `json:"entry_date"`
	Content   string    `json:"content"`
}

func ToReflectionResponse(e *domain.ReflectionEntry) ReflectionResponse {
	return ReflectionResponse{
		ID:        e.ID,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
		EntryDate: e.EntryDate.Format("2006-01-02"),
		Content:   e.Content,
	}
}

type ListReflectionsResponse struct {
	Items      []ReflectionResponse `json:"items"`
	Total      int                  `json:"total"`
	PageSize   int                  `json:"page_size"`
	NextOffset int                  `json:"next_offset"`
}
