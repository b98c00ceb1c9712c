// Package store holds the in-memory mirror of server-held entities and the
// process-wide request status, and applies the outcome stream to them.
//
// State is immutable once published: reducers copy the slices and maps they
// change, so a snapshot returned by Store.Snapshot stays valid and
// consistent for as long as the caller holds it. Callers must treat
// snapshots as read-only.
package store

import (
	"fmt"

	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/task"
	"github.com/jsamuelsen11/todosync/internal/domain/tasklist"
)

// AppState is the global request lifecycle shared by every UI surface.
type AppState struct {
	Status domain.RequestStatus

	// Error is the last surfaced failure message, or nil.
	Error *string

	// IsInitialized flips to true once the session bootstrap settles and
	// never reverts.
	IsInitialized bool
}

// State is the root of everything the client mirrors.
type State struct {
	// Lists is in display order, newest first.
	Lists []tasklist.TaskList

	// Tasks is keyed by list ID. Its key set always equals the set of IDs
	// in Lists; each collection is newest first.
	Tasks map[string][]task.Task

	App AppState
}

// Initial returns the empty state the store starts from.
func Initial() State {
	return State{
		Lists: []tasklist.TaskList{},
		Tasks: map[string][]task.Task{},
		App:   AppState{Status: domain.StatusIdle},
	}
}

// List returns the list with the given ID.
func (s State) List(id string) (tasklist.TaskList, bool) {
	if i := indexOfList(s.Lists, id); i >= 0 {
		return s.Lists[i], true
	}
	return tasklist.TaskList{}, false
}

// TasksOf returns the task collection of a list. The second result is false
// when the store holds no collection for listID.
func (s State) TasksOf(listID string) ([]task.Task, bool) {
	tasks, ok := s.Tasks[listID]
	return tasks, ok
}

// FindTask returns a task by its owning list and ID.
func (s State) FindTask(listID, taskID string) (task.Task, bool) {
	tasks := s.Tasks[listID]
	if i := indexOfTask(tasks, taskID); i >= 0 {
		return tasks[i], true
	}
	return task.Task{}, false
}

// CheckInvariants verifies that lists and task collections exist together
// and that every task belongs to the collection it is stored under.
func (s State) CheckInvariants() error {
	ids := make(map[string]struct{}, len(s.Lists))
	for i := range s.Lists {
		ids[s.Lists[i].ID] = struct{}{}
		if _, ok := s.Tasks[s.Lists[i].ID]; !ok {
			return fmt.Errorf("list %q has no task collection", s.Lists[i].ID)
		}
	}
	for listID, tasks := range s.Tasks {
		if _, ok := ids[listID]; !ok {
			return fmt.Errorf("task collection %q has no list", listID)
		}
		for i := range tasks {
			if tasks[i].ListID != listID {
				return fmt.Errorf("task %q stored under %q but owned by %q", tasks[i].ID, listID, tasks[i].ListID)
			}
		}
	}
	return nil
}

func indexOfList(lists []tasklist.TaskList, id string) int {
	for i := range lists {
		if lists[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfTask(tasks []task.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
