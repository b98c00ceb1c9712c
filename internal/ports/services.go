package ports

import (
	"context"

	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/app/store"
	"github.com/jsamuelsen11/todosync/internal/domain/task"
	"github.com/jsamuelsen11/todosync/internal/domain/tasklist"
)

// StateReader gives read access to the mirrored state.
type StateReader interface {
	// Snapshot returns the current state. It must be treated as read-only.
	Snapshot() store.State

	// Subscribe registers a listener notified after every applied action
	// and returns a function that removes it.
	Subscribe(l store.Listener) (unsubscribe func())
}

// TodoService is the service port for the enumerated sync operations.
// Implemented by the application layer; called by inbound adapters.
//
// Orchestrated operations never return an error: the outcome either holds
// the confirmed delta or the classified rejection. The global app status is
// updated as a side effect of every call.
type TodoService interface {
	StateReader

	// InitializeApp checks the session. Either outcome marks the app
	// initialized.
	InitializeApp(ctx context.Context) action.Outcome[action.AppInitialized]

	FetchLists(ctx context.Context) action.Outcome[action.ListsFetched]
	AddList(ctx context.Context, title string) action.Outcome[action.ListAdded]
	RemoveList(ctx context.Context, listID string) action.Outcome[action.ListRemoved]
	RenameList(ctx context.Context, listID, title string) action.Outcome[action.ListRenamed]

	FetchTasks(ctx context.Context, listID string) action.Outcome[action.TasksFetched]
	AddTask(ctx context.Context, listID, title string) action.Outcome[action.TaskAdded]

	// UpdateTask sends the stored task with patch applied. A task absent
	// from the store is rejected as NotFoundLocal without a remote call.
	UpdateTask(ctx context.Context, listID, taskID string, patch task.Patch) action.Outcome[action.TaskUpdated]

	RemoveTask(ctx context.Context, listID, taskID string) action.Outcome[action.TaskRemoved]

	// Sync fetches the lists and then, when enabled, the tasks of every
	// list with bounded concurrency.
	Sync(ctx context.Context) SyncResult

	// ChangeListFilter sets a list's view filter. Local only.
	ChangeListFilter(ctx context.Context, listID string, filter tasklist.Filter)

	// DismissError clears the global error message. Local only.
	DismissError(ctx context.Context)

	// Reset drops all lists and tasks, e.g. on sign-out. Local only.
	Reset(ctx context.Context)
}

// SyncResult holds the outcomes of a full sync. Tasks has one entry per list
// in the fetched order and is empty when the list fetch was rejected or task
// loading is disabled.
type SyncResult struct {
	Lists action.Outcome[action.ListsFetched]
	Tasks []action.Outcome[action.TasksFetched]
}

// Rejected returns the number of rejected operations in the sync.
func (r SyncResult) Rejected() int {
	n := 0
	if !r.Lists.Fulfilled() {
		n++
	}
	for i := range r.Tasks {
		if !r.Tasks[i].Fulfilled() {
			n++
		}
	}
	return n
}
