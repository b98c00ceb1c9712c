package ports

import (
	"context"

	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/task"
	"github.com/jsamuelsen11/todosync/internal/domain/tasklist"
)

// Gateway is the client port for the remote to-do API.
// Implemented by the ACL adapter; called by the application layer.
//
// Write operations return the server's envelope as-is: a non-zero result
// code is not an error at this boundary, the application layer decides what
// it means. An error return always means no envelope was received
// (transport failure, timeout, unexpected status or undecodable body).
type Gateway interface {
	// FetchLists returns every list of the session, in server order.
	FetchLists(ctx context.Context) ([]tasklist.TaskList, error)

	// CreateList creates a list. On success Data holds the created list.
	CreateList(ctx context.Context, title string) (domain.Envelope[tasklist.TaskList], error)

	// DeleteList deletes a list and, on the server, its tasks.
	DeleteList(ctx context.Context, listID string) (domain.Envelope[struct{}], error)

	// RenameList changes a list's title.
	RenameList(ctx context.Context, listID, title string) (domain.Envelope[struct{}], error)

	// FetchTasks returns the tasks of one list.
	FetchTasks(ctx context.Context, listID string) ([]task.Task, error)

	// CreateTask creates a task. On success Data holds the created task.
	CreateTask(ctx context.Context, listID, title string) (domain.Envelope[task.Task], error)

	// UpdateTask replaces every mutable field of a task with model. The
	// remote API rejects partial models.
	UpdateTask(ctx context.Context, listID, taskID string, model task.Model) (domain.Envelope[task.Task], error)

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, listID, taskID string) (domain.Envelope[struct{}], error)
}

// Authenticator is the client port for the session endpoint. Only the
// bootstrap check is consumed; sign-in flows live elsewhere.
type Authenticator interface {
	// Me returns the identity of the current session. A non-zero result
	// code means there is no authenticated session.
	Me(ctx context.Context) (domain.Envelope[domain.Identity], error)
}
