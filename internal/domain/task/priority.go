package task

import "fmt"

// Priority orders tasks from least to most pressing, with Later as a
// deliberate deferral. The ordinals match the remote API.
type Priority int

const (
	PriorityLow      Priority = 0
	PriorityMiddle   Priority = 1
	PriorityHi       Priority = 2
	PriorityUrgently Priority = 3
	PriorityLater    Priority = 4
)

// IsValid returns true if the priority is one of the defined constants.
func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityLater
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMiddle:
		return "middle"
	case PriorityHi:
		return "hi"
	case PriorityUrgently:
		return "urgently"
	case PriorityLater:
		return "later"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}
