package dto

import (
	"time"

	"github.com/google/uuid"

	"classroom-planner-service/internal/core/domain"
)

type GenerateNewsletterRequest struct {
	Title      string   `json:"title" binding:"required,max=200"`
	Term       string   `json:"term"`
	Grade      string   `json:"grade"`
	Highlights []string `json:"highlights"`
	Tone       string   `json:"tone"`
	Language   string   `json:"language"`
}

type CreateNewsletterRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Term    string `json:"term"`
	Content string `json:"content"`
}

type UpdateNewsletterRequest struct {
	Title   *string `json:"title"`
	Term    *string `json:"term"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

type NewsletterResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
	Title     string    `json:"title"`
	Term      string    `json:"term"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	Generated bool      `json:"generated"`
}

func ToNewsletterResponse(n *domain.Newsletter) NewsletterResponse {
	return NewsletterResponse{
		ID:        n.ID,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		UpdatedAt: n.UpdatedAt.Format(time.RFC3339),
		Title:     n.Title,
		Term:      n.Term,
		Content:   n.Content,
		Status:    string(n.Status),
		Generated: n.Generated,
	}
}

type ListNewslettersResponse struct {
	Items      []NewsletterResponse `json:"items"`
	Total      int                  `json:"total"`
	PageSize   int                  `json:"page_size"`
	NextOffset int                  `json:"next_offset"`
}
