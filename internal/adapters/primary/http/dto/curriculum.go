package dto

import (
	"time"

	"github.com/google/uuid"

	"classroom-planner-service/internal/core/domain"
)

type CreateOutcomeRequest struct {
	SubjectID    uuid.UUID   `json:"subject_id" binding:"required"`
	Code         string      `json:"code" binding:"required,max=40"`
	Description  string      `json:"description"`
	Domain       *string     `json:"domain"`
	Grade        string      `json:"grade"`
	MilestoneIDs []uuid.UUID `json:"milestone_ids"`
}

type UpdateOutcomeRequest struct {
	Code         *string      `json:"code"`
	Description  *string      `json:"description"`
	Domain       *string      `json:"domain"`
	Grade        *string      `json:"grade"`
	MilestoneIDs *[]uuid.UUID `json:"milestone_ids"`
}

type OutcomeResponse struct {
	ID           uuid.UUID   `json:"id"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
	SubjectID    uuid.UUID   `json:"subject_id"`
	Code         string      `json:"code"`
	Description  string      `json:"description"`
	Domain       *string     `json:"domain"`
	Grade        string      `json:"grade"`
	MilestoneIDs []uuid.UUID `json:"milestone_ids"`
}

func ToOutcomeResponse(o *domain.Outcome) OutcomeResponse {
	return OutcomeResponse{
		ID:           o.ID,
		CreatedAt:    o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    o.UpdatedAt.Format(time.RFC3339),
		SubjectID:    o.SubjectID,
		Code:         o.Code,
		Description:  o.Description,
		Domain:       o.Domain,
		Grade:        o.Grade,
		MilestoneIDs: o.MilestoneIDs,
	}
}

type ListOutcomesResponse struct {
	Items      []OutcomeResponse `json:"items"`
	Total      int               `json:"total"`
	PageSize   int               `json:"page_size"`
	NextOffset int               `json:"next_offset"`
}

type CreateSubjectRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Grade string `json:"grade"`
}

type UpdateSubjectRequest struct {
	Name  *string `json:"name"`
	Grade *string `json:"grade"`
}

type SubjectResponse struct {
	ID           uuid.UUID `json:"id"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
	Name         string    `json:"name"`
	Grade        string    `json:"grade"`
	OutcomeCount int       `json:"outcome_count"`
}

func ToSubjectResponse(s *domain.Subject) SubjectResponse {
	return SubjectResponse{
		ID:           s.ID,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
		Name:         s.Name,
		Grade:        s.Grade,
		OutcomeCount: s.OutcomeCount,
	}
}

type ListSubjectsResponse struct {
	Items      []SubjectResponse `json:"items"`
	Total      int               `json:"total"`
	PageSize   int               `json:"page_size"`
	NextOffset int               `json:"next_offset"`
}

type CreateMilestoneRequest struct {
	Title string `json:"title" binding:"required,max=200"`
	Term  string `json:"term"`
}

type MilestoneResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt string    `json:"created_at"`
	SubjectID uuid.UUID `json:"subject_id"`
	Title     string    `json:"title"`
	Term      string    `json:"term"`
}

func ToMilestoneResponse(m *domain.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:        m.ID,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
		SubjectID: m.SubjectID,
		Title:     m.Title,
		Term:      m.Term,
	}
}
