package model

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingID         = errors.New("model: task id is required")
	ErrMissingTitle      = errors.New("model: task title is required")
	ErrMissingCreatedAt  = errors.New("model: task created_at is required")
	ErrInvalidCompletion = errors.New("model: completed_at must be set if and only if the task is completed")
)

// Task is one quest entry. ID and CreatedAt are assigned once at creation
// and never change; updates replace only the mutable fields.
type Task struct {
	ID          string
	Title       string
	IsCompleted bool
	CreatedAt   time.Time
	Deadline    time.Time
	CompletedAt *time.Time
	IsUrgent    bool
	IsImportant bool
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrMissingTitle
	}
	if t.CreatedAt.IsZero() {
		return ErrMissingCreatedAt
	}
	if t.IsCompleted != (t.CompletedAt != nil) {
		return ErrInvalidCompletion
	}
	return nil
}

func (t Task) Quadrant() Quadrant {
	return QuadrantOf(t.IsUrgent, t.IsImportant)
}

// DeadlineDay truncates the deadline to its calendar day. Deadlines carry
// date-only semantics; time-of-day never participates in comparisons.
func (t Task) DeadlineDay() time.Time {
	y, m, d := t.Deadline.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Deadline.Location())
}
