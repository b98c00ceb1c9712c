package store

import (
	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/domain/task"
	"github.com/jsamuelsen11/todosync/internal/domain/tasklist"
)

// reduceTasks reacts to task operations and to list lifecycle events. lists
// is the list slice after the same action has been applied; collections are
// only ever written for lists that exist in it.
func reduceTasks(tasks map[string][]task.Task, lists []tasklist.TaskList, a action.Action) map[string][]task.Task {
	switch a.Op {
	case action.FetchTasks:
		if p, ok := fulfilled[action.TasksFetched](a); ok {
			if _, exists := tasks[p.ListID]; !exists {
				return tasks
			}
			fetched := make([]task.Task, len(p.Tasks))
			copy(fetched, p.Tasks)
			return with(tasks, p.ListID, fetched)
		}

	case action.AddTask:
		if p, ok := fulfilled[action.TaskAdded](a); ok {
			current, exists := tasks[p.Task.ListID]
			if !exists {
				return tasks
			}
			next := make([]task.Task, 0, len(current)+1)
			next = append(next, p.Task)
			return with(tasks, p.Task.ListID, append(next, current...))
		}

	case action.UpdateTask:
		if p, ok := fulfilled[action.TaskUpdated](a); ok {
			current := tasks[p.ListID]
			i := indexOfTask(current, p.TaskID)
			if i < 0 {
				return tasks
			}
			next := make([]task.Task, len(current))
			copy(next, current)
			next[i] = next[i].WithModel(p.Patch.ApplyTo(next[i].Model()))
			return with(tasks, p.ListID, next)
		}

	case action.RemoveTask:
		if p, ok := fulfilled[action.TaskRemoved](a); ok {
			current := tasks[p.ListID]
			i := indexOfTask(current, p.TaskID)
			if i < 0 {
				return tasks
			}
			next := make([]task.Task, 0, len(current)-1)
			next = append(next, current[:i]...)
			return with(tasks, p.ListID, append(next, current[i+1:]...))
		}

	case action.AddList:
		if p, ok := fulfilled[action.ListAdded](a); ok {
			return with(tasks, p.List.ID, []task.Task{})
		}

	case action.RemoveList:
		if p, ok := fulfilled[action.ListRemoved](a); ok {
			return without(tasks, p.ListID)
		}

	case action.FetchLists:
		if _, ok := fulfilled[action.ListsFetched](a); ok {
			return alignWithLists(tasks, lists)
		}

	case action.ClearAll:
		return map[string][]task.Task{}
	}

	return tasks
}

// alignWithLists keeps existing collections of lists that are still present,
// creates empty ones for new lists and drops the rest.
func alignWithLists(tasks map[string][]task.Task, lists []tasklist.TaskList) map[string][]task.Task {
	next := make(map[string][]task.Task, len(lists))
	for i := range lists {
		id := lists[i].ID
		if current, ok := tasks[id]; ok {
			next[id] = current
		} else {
			next[id] = []task.Task{}
		}
	}
	return next
}

// with returns a copy of tasks with key set to v.
func with(tasks map[string][]task.Task, key string, v []task.Task) map[string][]task.Task {
	next := make(map[string][]task.Task, len(tasks)+1)
	for k, t := range tasks {
		next[k] = t
	}
	next[key] = v
	return next
}

// without returns a copy of tasks without key, or tasks itself when the key
// is absent.
func without(tasks map[string][]task.Task, key string) map[string][]task.Task {
	if _, ok := tasks[key]; !ok {
		return tasks
	}
	next := make(map[string][]task.Task, len(tasks))
	for k, t := range tasks {
		if k != key {
			next[k] = t
		}
	}
	return next
}
