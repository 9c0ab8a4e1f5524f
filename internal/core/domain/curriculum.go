package domain

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is a single curriculum learning objective, identified by a code
// such as FRA-1-001. An outcome may be attached to several milestones.
type Outcome struct {
	ID           uuid.UUID   `json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	TeacherID    uuid.UUID   `json:"teacher_id"`
	SubjectID    uuid.UUID   `json:"subject_id"`
	Code         string      `json:"code"`
	Description  string      `json:"description"`
	Domain       *string     `json:"domain"`
	Grade        string      `json:"grade"`
	MilestoneIDs []uuid.UUID `json:"milestone_ids"`
}

type Subject struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	TeacherID uuid.UUID `json:"teacher_id"`
	Name      string    `json:"name"`
	Grade     string    `json:"grade"`

	// Computed fields
	OutcomeCount int `json:"outcome_count,omitempty"`
}

type Milestone struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	SubjectID uuid.UUID `json:"subject_id"`
	Title     string    `json:"title"`
	Term      string    `json:"term"`
}
