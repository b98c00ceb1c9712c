package task

import (
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/todosync/internal/domain"
)

// Model is the full field snapshot the remote API expects on every update.
// Sending a partial model is a contract violation.
type Model struct {
	Title       string
	Description string
	Status      Status
	Priority    Priority
	StartDate   *time.Time
	Deadline    *time.Time
}

// Patch is a caller-supplied subset of Model. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	StartDate   *time.Time
	Deadline    *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.StartDate == nil && p.Deadline == nil
}

// ApplyTo overlays the set fields of p onto m and returns the result.
func (p Patch) ApplyTo(m Model) Model {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Priority != nil {
		m.Priority = *p.Priority
	}
	if p.StartDate != nil {
		m.StartDate = p.StartDate
	}
	if p.Deadline != nil {
		m.Deadline = p.Deadline
	}
	return m
}

const msgDeadlineBeforeStart = "must not be before start date"

// Merge validates p, overlays it onto m and checks the merged dates. The date
// order is checked only when p sets a date, against the stored counterpart.
// Returns a *domain.ValidationError on failure.
func (p Patch) Merge(m Model) (Model, error) {
	if err := p.Validate(); err != nil {
		return Model{}, err
	}

	merged := p.ApplyTo(m)
	touchesDates := p.StartDate != nil || p.Deadline != nil
	if touchesDates && merged.StartDate != nil && merged.Deadline != nil &&
		merged.Deadline.Before(*merged.StartDate) {
		return Model{}, &domain.ValidationError{Fields: map[string]string{"deadline": msgDeadlineBeforeStart}}
	}
	return merged, nil
}

// Validate checks the set fields of the patch.
// Returns a *domain.ValidationError or nil.
func (p Patch) Validate() error {
	fields := make(map[string]string)

	if p.Title != nil {
		if err := ValidateTitle(*p.Title); err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				fields["title"] = verr.Fields["title"]
			}
		}
	}
	if p.Status != nil && !p.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %d", int(*p.Status))
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %d", int(*p.Priority))
	}
	if p.StartDate != nil && p.Deadline != nil && p.Deadline.Before(*p.StartDate) {
		fields["deadline"] = msgDeadlineBeforeStart
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
