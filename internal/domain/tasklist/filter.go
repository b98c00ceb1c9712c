package tasklist

import "github.com/jsamuelsen11/todosync/internal/domain/task"

// Filter selects which tasks of a list the UI shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// IsValid returns true if the filter is one of the defined constants.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (f Filter) String() string {
	return string(f)
}

// Apply returns the tasks visible under f, preserving order.
// An unknown filter behaves like FilterAll.
func (f Filter) Apply(tasks []task.Task) []task.Task {
	if f != FilterActive && f != FilterCompleted {
		return tasks
	}
	out := make([]task.Task, 0, len(tasks))
	for i := range tasks {
		done := tasks[i].Status == task.StatusCompleted
		if (f == FilterCompleted) == done {
			out = append(out, tasks[i])
		}
	}
	return out
}
