package action

import (
	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/task"
	"github.com/jsamuelsen11/todosync/internal/domain/tasklist"
)

// Domain deltas carried by fulfilled actions.

// ListsFetched replaces the list store on initial load.
type ListsFetched struct {
	Lists []tasklist.TaskList
}

// ListAdded carries a list the server just created.
type ListAdded struct {
	List tasklist.TaskList
}

// ListRemoved names a list the server deleted.
type ListRemoved struct {
	ListID string
}

// ListRenamed carries a confirmed title change.
type ListRenamed struct {
	ListID string
	Title  string
}

// TasksFetched replaces one list's task collection.
type TasksFetched struct {
	ListID string
	Tasks  []task.Task
}

// TaskAdded carries a task the server just created.
type TaskAdded struct {
	Task task.Task
}

// TaskUpdated carries the confirmed field subset; reducers shallow-merge it
// over the stored record.
type TaskUpdated struct {
	ListID string
	TaskID string
	Patch  task.Patch
}

// TaskRemoved names a task the server deleted.
type TaskRemoved struct {
	ListID string
	TaskID string
}

// AppInitialized carries the session identity on a successful bootstrap.
type AppInitialized struct {
	Identity domain.Identity
}

// Plain action bodies.

// FilterChanged sets a list's view filter.
type FilterChanged struct {
	ListID string
	Filter tasklist.Filter
}

// ErrorSet replaces the global error message; nil clears it.
type ErrorSet struct {
	Error *string
}

// Reset drops both domain stores. It has no fields.
type Reset struct{}

// Arguments of orchestrated operations, carried on every phase so reducers
// can react to pending and rejected actions of a specific entity.

// ListArg is the input of list operations.
type ListArg struct {
	ListID string
	Title  string
}

// TaskArg is the input of task operations.
type TaskArg struct {
	ListID string
	TaskID string
	Title  string
	Patch  task.Patch
}
