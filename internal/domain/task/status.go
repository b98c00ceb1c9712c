package task

import "fmt"

// Status is the progress state of a task. The ordinals match the remote API.
type Status int

const (
	StatusNew        Status = 0
	StatusInProgress Status = 1
	StatusCompleted  Status = 2
	StatusDraft      Status = 3
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted, StatusDraft:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	case StatusDraft:
		return "draft"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}
