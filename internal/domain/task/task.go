// Package task defines the Task entity and the field snapshot the remote API
// requires on every update.
package task

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/todosync/internal/domain"
)

// MaxTitleLength is the longest title the remote API accepts, in runes.
const MaxTitleLength = 100

// Task is a single to-do item owned by exactly one task list.
// ListID is assigned at creation and never changes.
type Task struct {
	ID          string
	ListID      string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	StartDate   *time.Time
	Deadline    *time.Time
	Order       int
	AddedDate   time.Time
}

// Model returns the complete set of user-editable fields of the task.
func (t Task) Model() Model {
	return Model{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		StartDate:   t.StartDate,
		Deadline:    t.Deadline,
	}
}

// WithModel returns a copy of the task with its editable fields replaced by m.
// Identity, ownership, order and creation date are preserved.
func (t Task) WithModel(m Model) Task {
	t.Title = m.Title
	t.Description = m.Description
	t.Status = m.Status
	t.Priority = m.Priority
	t.StartDate = m.StartDate
	t.Deadline = m.Deadline
	return t
}

// ValidateTitle checks a task title against the rules the remote API enforces.
// Returns a *domain.ValidationError or nil.
func ValidateTitle(title string) error {
	switch {
	case strings.TrimSpace(title) == "":
		return &domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}}
	case utf8.RuneCountInString(title) > MaxTitleLength:
		return &domain.ValidationError{Fields: map[string]string{"title": "must be at most 100 characters"}}
	}
	return nil
}
