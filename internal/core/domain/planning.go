package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a planned classroom activity. Each referenced outcome counts
// toward that outcome's coverage once the activity exists; CompletedAt feeds
// the audit's last-used column.
type Activity struct {
	ID          uuid.UUID   `json:"id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	TeacherID   uuid.UUID   `json:"teacher_id"`
	SubjectID   uuid.UUID   `json:"subject_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Term        string      `json:"term"`
	CompletedAt *time.Time  `json:"completed_at"`
	OutcomeIDs  []uuid.UUID `json:"outcome_ids"`
}

// AssessmentResult is an assessment artifact. Any outcome it references is
// considered assessed by the audit.
type AssessmentResult struct {
	ID         uuid.UUID   `json:"id"`
	CreatedAt  time.Time   `json:"created_at"`
	TeacherID  uuid.UUID   `json:"teacher_id"`
	StudentID  *uuid.UUID  `json:"student_id"`
	Title      string      `json:"title"`
	Term       string      `json:"term"`
	AssessedAt time.Time   `json:"assessed_at"`
	Notes      string      `json:"notes"`
	OutcomeIDs []uuid.UUID `json:"outcome_ids"`
}

type Student struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	TeacherID uuid.UUID `json:"teacher_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Grade     string    `json:"grade"`
	Notes     string    `json:"notes"`
}

type ReflectionEntry struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	TeacherID uuid.UUID `json:"teacher_id"`
	EntryDate time.Time `json:"entry_date"`
	Content   string    `json:"content"`
}

type NewsletterStatus string

const (
	NewsletterStatusDraft     NewsletterStatus = "DRAFT"
	NewsletterStatusPublished NewsletterStatus = "PUBLISHED"
)

// Newsletter is a parent-facing artifact. Content is either hand-written or
// produced by the AI gateway and saved as a draft for the teacher to edit.
type Newsletter struct {
	ID        uuid.UUID        `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	TeacherID uuid.UUID        `json:"teacher_id"`
	Title     string           `json:"title"`
	Term      string           `json:"term"`
	Content   string           `json:"content"`
	Status    NewsletterStatus `json:"status"`
	Generated bool             `json:"generated"`
}
