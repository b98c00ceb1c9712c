// Package tasklist defines the TaskList entity and its client-side view hints.
package tasklist

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/todosync/internal/domain"
)

// MaxTitleLength is the longest list title the remote API accepts, in runes.
const MaxTitleLength = 100

// TaskList is a named collection of tasks. ID is assigned by the server.
//
// Filter and EntityStatus are client-only: Filter is the UI's current view
// of the list, EntityStatus tracks an in-flight removal so the UI can disable
// the list while the server confirms.
type TaskList struct {
	ID           string
	Title        string
	AddedDate    time.Time
	Order        int
	Filter       Filter
	EntityStatus domain.RequestStatus
}

// ValidateTitle checks a list title against the rules the remote API enforces.
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
