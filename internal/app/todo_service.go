// Package app provides the application services that turn UI intents into
// orchestrated operations against the remote to-do API.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/app/classify"
	"github.com/jsamuelsen11/todosync/internal/app/fanout"
	"github.com/jsamuelsen11/todosync/internal/app/orchestrator"
	"github.com/jsamuelsen11/todosync/internal/app/store"
	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/task"
	"github.com/jsamuelsen11/todosync/internal/domain/tasklist"
	"github.com/jsamuelsen11/todosync/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// SyncOptions controls TodoService.Sync.
type SyncOptions struct {
	// MaxWorkers bounds concurrent per-list task fetches. Values below 1
	// are treated as 1.
	MaxWorkers int

	// LoadTasks fetches the tasks of every list after the lists.
	LoadTasks bool
}

// TodoService implements ports.TodoService. Each method is one orchestrated
// operation: the procedure talks to the gateway and returns the domain delta,
// everything else (status, error message, store commit) is the
// orchestrator's and the store's business.
type TodoService struct {
	orch    *orchestrator.Orchestrator
	gateway ports.Gateway
	auth    ports.Authenticator
	sync    SyncOptions
	logger  *slog.Logger
}

// NewTodoService creates a TodoService.
func NewTodoService(
	orch *orchestrator.Orchestrator,
	gateway ports.Gateway,
	auth ports.Authenticator,
	sync SyncOptions,
	logger *slog.Logger,
) *TodoService {
	if sync.MaxWorkers < 1 {
		sync.MaxWorkers = 1
	}
	return &TodoService{
		orch:    orch,
		gateway: gateway,
		auth:    auth,
		sync:    sync,
		logger:  logger,
	}
}

// Snapshot returns the current state.
func (s *TodoService) Snapshot() store.State {
	return s.orch.Store().Snapshot()
}

// Subscribe registers a listener on the store.
func (s *TodoService) Subscribe(l store.Listener) func() {
	return s.orch.Store().Subscribe(l)
}

// InitializeApp checks the session. A rejected session check is expected
// (signed-out user) and is classified without a user-facing message.
func (s *TodoService) InitializeApp(ctx context.Context) action.Outcome[action.AppInitialized] {
	return orchestrator.Run(ctx, s.orch, action.InitializeApp, struct{}{},
		func(ctx context.Context, _ struct{}, _ store.State) (action.AppInitialized, error) {
			env, err := s.auth.Me(ctx)
			if err != nil {
				return action.AppInitialized{}, err
			}
			if !env.OK() {
				return action.AppInitialized{}, domain.NewApplicationError(env)
			}

			s.logger.InfoContext(ctx, "session initialized",
				slog.Int64("user_id", env.Data.ID),
				slog.String("login", env.Data.Login),
			)
			return action.AppInitialized{Identity: env.Data}, nil
		}, orchestrator.Quiet())
}

// FetchLists replaces the mirrored lists with the server's.
func (s *TodoService) FetchLists(ctx context.Context) action.Outcome[action.ListsFetched] {
	return orchestrator.Run(ctx, s.orch, action.FetchLists, struct{}{},
		func(ctx context.Context, _ struct{}, _ store.State) (action.ListsFetched, error) {
			lists, err := s.gateway.FetchLists(ctx)
			if err != nil {
				return action.ListsFetched{}, err
			}
			return action.ListsFetched{Lists: lists}, nil
		})
}

// AddList creates a list; it is prepended once the server confirms.
func (s *TodoService) AddList(ctx context.Context, title string) action.Outcome[action.ListAdded] {
	s.logger.InfoContext(ctx, "adding list")

	return orchestrator.Run(ctx, s.orch, action.AddList, action.ListArg{Title: title},
		func(ctx context.Context, in action.ListArg, _ store.State) (action.ListAdded, error) {
			if err := tasklist.ValidateTitle(in.Title); err != nil {
				return action.ListAdded{}, err
			}

			env, err := s.gateway.CreateList(ctx, in.Title)
			if err != nil {
				return action.ListAdded{}, err
			}
			if !env.OK() {
				return action.ListAdded{}, domain.NewApplicationError(env)
			}
			return action.ListAdded{List: env.Data}, nil
		})
}

// RemoveList deletes a list. While the call is in flight the list's entity
// status is loading; its tasks are discarded together with it.
func (s *TodoService) RemoveList(ctx context.Context, listID string) action.Outcome[action.ListRemoved] {
	s.logger.InfoContext(ctx, "removing list", slog.String("list_id", listID))

	return orchestrator.Run(ctx, s.orch, action.RemoveList, action.ListArg{ListID: listID},
		func(ctx context.Context, in action.ListArg, _ store.State) (action.ListRemoved, error) {
			env, err := s.gateway.DeleteList(ctx, in.ListID)
			if err != nil {
				return action.ListRemoved{}, err
			}
			if !env.OK() {
				return action.ListRemoved{}, domain.NewApplicationError(env)
			}
			return action.ListRemoved{ListID: in.ListID}, nil
		})
}

// RenameList changes a list's title.
func (s *TodoService) RenameList(ctx context.Context, listID, title string) action.Outcome[action.ListRenamed] {
	s.logger.InfoContext(ctx, "renaming list", slog.String("list_id", listID))

	return orchestrator.Run(ctx, s.orch, action.RenameList, action.ListArg{ListID: listID, Title: title},
		func(ctx context.Context, in action.ListArg, _ store.State) (action.ListRenamed, error) {
			if err := tasklist.ValidateTitle(in.Title); err != nil {
				return action.ListRenamed{}, err
			}

			env, err := s.gateway.RenameList(ctx, in.ListID, in.Title)
			if err != nil {
				return action.ListRenamed{}, err
			}
			if !env.OK() {
				return action.ListRenamed{}, domain.NewApplicationError(env)
			}
			return action.ListRenamed{ListID: in.ListID, Title: in.Title}, nil
		})
}

// FetchTasks replaces one list's task collection with the server's.
func (s *TodoService) FetchTasks(ctx context.Context, listID string) action.Outcome[action.TasksFetched] {
	return orchestrator.Run(ctx, s.orch, action.FetchTasks, action.TaskArg{ListID: listID},
		func(ctx context.Context, in action.TaskArg, _ store.State) (action.TasksFetched, error) {
			tasks, err := s.gateway.FetchTasks(ctx, in.ListID)
			if err != nil {
				return action.TasksFetched{}, err
			}
			return action.TasksFetched{ListID: in.ListID, Tasks: tasks}, nil
		})
}

// AddTask creates a task; it is prepended to its list once the server
// confirms.
func (s *TodoService) AddTask(ctx context.Context, listID, title string) action.Outcome[action.TaskAdded] {
	s.logger.InfoContext(ctx, "adding task", slog.String("list_id", listID))

	return orchestrator.Run(ctx, s.orch, action.AddTask, action.TaskArg{ListID: listID, Title: title},
		func(ctx context.Context, in action.TaskArg, _ store.State) (action.TaskAdded, error) {
			if err := task.ValidateTitle(in.Title); err != nil {
				return action.TaskAdded{}, err
			}

			env, err := s.gateway.CreateTask(ctx, in.ListID, in.Title)
			if err != nil {
				return action.TaskAdded{}, err
			}
			if !env.OK() {
				return action.TaskAdded{}, domain.NewApplicationError(env)
			}
			return action.TaskAdded{Task: env.Data}, nil
		})
}

// UpdateTask sends the stored task with patch overlaid. The remote API
// requires every field on update, so the full model is rebuilt from the
// store; a task the store does not hold fails locally.
func (s *TodoService) UpdateTask(ctx context.Context, listID, taskID string, patch task.Patch) action.Outcome[action.TaskUpdated] {
	s.logger.InfoContext(ctx, "updating task",
		slog.String("list_id", listID),
		slog.String("task_id", taskID),
	)

	arg := action.TaskArg{ListID: listID, TaskID: taskID, Patch: patch}
	return orchestrator.Run(ctx, s.orch, action.UpdateTask, arg,
		func(ctx context.Context, in action.TaskArg, state store.State) (action.TaskUpdated, error) {
			current, ok := state.FindTask(in.ListID, in.TaskID)
			if !ok {
				return action.TaskUpdated{}, domain.ErrTaskNotFound
			}
			model, err := in.Patch.Merge(current.Model())
			if err != nil {
				return action.TaskUpdated{}, err
			}

			env, err := s.gateway.UpdateTask(ctx, in.ListID, in.TaskID, model)
			if err != nil {
				return action.TaskUpdated{}, err
			}
			if !env.OK() {
				return action.TaskUpdated{}, domain.NewApplicationError(env)
			}
			return action.TaskUpdated{ListID: in.ListID, TaskID: in.TaskID, Patch: in.Patch}, nil
		})
}

// RemoveTask deletes a task.
func (s *TodoService) RemoveTask(ctx context.Context, listID, taskID string) action.Outcome[action.TaskRemoved] {
	s.logger.InfoContext(ctx, "removing task",
		slog.String("list_id", listID),
		slog.String("task_id", taskID),
	)

	return orchestrator.Run(ctx, s.orch, action.RemoveTask, action.TaskArg{ListID: listID, TaskID: taskID},
		func(ctx context.Context, in action.TaskArg, _ store.State) (action.TaskRemoved, error) {
			env, err := s.gateway.DeleteTask(ctx, in.ListID, in.TaskID)
			if err != nil {
				return action.TaskRemoved{}, err
			}
			if !env.OK() {
				return action.TaskRemoved{}, domain.NewApplicationError(env)
			}
			return action.TaskRemoved{ListID: in.ListID, TaskID: in.TaskID}, nil
		})
}

// Sync fetches the lists and then the tasks of every list, at most
// MaxWorkers at a time. Each fetch is its own operation with its own
// outcome; one rejected list does not stop the others.
func (s *TodoService) Sync(ctx context.Context) ports.SyncResult {
	result := ports.SyncResult{Lists: s.FetchLists(ctx)}
	if !result.Lists.Fulfilled() || !s.sync.LoadTasks {
		return result
	}

	lists := result.Lists.Value.Lists
	results := fanout.Run(ctx, s.sync.MaxWorkers, lists,
		func(ctx context.Context, l tasklist.TaskList) (action.Outcome[action.TasksFetched], error) {
			return s.FetchTasks(ctx, l.ID), nil
		})

	result.Tasks = make([]action.Outcome[action.TasksFetched], len(results))
	for i, r := range results {
		if r.Err != nil {
			// Not started: the context ended while waiting for a worker.
			rej := classify.Classify(r.Err, true).Rejection
			result.Tasks[i] = action.Outcome[action.TasksFetched]{Rejection: &rej}
			continue
		}
		result.Tasks[i] = r.Value
	}

	if n := result.Rejected(); n > 0 {
		s.logger.WarnContext(ctx, "sync finished with rejections",
			slog.Int("lists", len(lists)),
			slog.Int("rejected", n),
		)
	}
	return result
}

// ChangeListFilter sets a list's view filter. Unknown filters are ignored.
func (s *TodoService) ChangeListFilter(ctx context.Context, listID string, filter tasklist.Filter) {
	if !filter.IsValid() {
		s.logger.WarnContext(ctx, "ignoring unknown list filter",
			slog.String("list_id", listID),
			slog.String("filter", string(filter)),
		)
		return
	}
	s.orch.Store().Dispatch(ctx, action.Plain(action.ChangeListFilter, action.FilterChanged{ListID: listID, Filter: filter}))
}

// DismissError clears the global error message.
func (s *TodoService) DismissError(ctx context.Context) {
	s.orch.Store().Dispatch(ctx, action.Plain(action.SetAppError, action.ErrorSet{}))
}

// Reset drops all lists and tasks.
func (s *TodoService) Reset(ctx context.Context) {
	s.logger.InfoContext(ctx, "clearing lists and tasks")
	s.orch.Store().Dispatch(ctx, action.Plain(action.ClearAll, action.Reset{}))
}
